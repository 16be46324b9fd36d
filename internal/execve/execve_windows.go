//go:build windows

package execve

// Exec is unavailable on Windows, which has no process-replacement primitive.
func (s *System) Exec(path string, argv, envp []string) error {
	return ErrUnsupportedPlatform
}
