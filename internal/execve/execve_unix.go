//go:build unix

package execve

import (
	"os"
	"syscall"
)

// Exec replaces the current process image via execve(2).
//
// The kernel's error is returned as-is so callers observe the exact failure
// reason (ENOENT, EACCES, ENOEXEC, ...) a direct call would have produced.
func (s *System) Exec(path string, argv, envp []string) error {
	if envp == nil {
		envp = os.Environ()
	}
	if err := syscall.Exec(path, argv, envp); err != nil {
		return err
	}
	// exec does not return on success
	return ErrUnexpectedReturn
}
