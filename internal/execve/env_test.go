package execve

import (
	"strings"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "LANG=en_US.UTF-8", "HOME=/home/user"}
	override := []string{"LANG=C.UTF-8", "USER=nobody"}

	merged := MergeEnv(base, override)

	got := make(map[string]string, len(merged))
	for _, e := range merged {
		parts := strings.SplitN(e, "=", 2)
		got[parts[0]] = parts[1]
	}

	if got["PATH"] != "/usr/bin" {
		t.Errorf("PATH = %q, want preserved from base", got["PATH"])
	}
	if got["LANG"] != "C.UTF-8" {
		t.Errorf("LANG = %q, want override to win", got["LANG"])
	}
	if got["USER"] != "nobody" {
		t.Errorf("USER = %q, want added from override", got["USER"])
	}
	if len(got) != 4 {
		t.Errorf("got %d entries, want 4", len(got))
	}
}

func TestMergeEnvSkipsMalformedEntries(t *testing.T) {
	merged := MergeEnv([]string{"VALID=1", "malformed", "=empty-key"}, nil)

	if len(merged) != 1 || merged[0] != "VALID=1" {
		t.Errorf("MergeEnv() = %v, want only the valid entry", merged)
	}
}
