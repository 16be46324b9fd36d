package execve

import (
	"fmt"
	"strings"
)

// MergeEnv merges base environment with overrides.
// Both are KEY=value slices; overrides take precedence.
func MergeEnv(base, override []string) []string {
	envMap := make(map[string]string, len(base)+len(override))

	for _, e := range base {
		if idx := strings.IndexByte(e, '='); idx > 0 {
			envMap[e[:idx]] = e[idx+1:]
		}
	}

	for _, e := range override {
		if idx := strings.IndexByte(e, '='); idx > 0 {
			envMap[e[:idx]] = e[idx+1:]
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
