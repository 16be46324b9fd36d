// Package execve provides the internal seam over the process-replacement
// primitive. This is the ONLY package in the module that invokes the real
// primitive. All process replacement MUST go through the Execer interface.
package execve

import "errors"

// Execer invokes the process-replacement primitive.
//
// path is the program to execute. argv is the full argument vector including
// argv[0] (by convention the program name as the caller supplied it). envp is
// the environment in KEY=value form; nil means "inherit the caller's
// environment".
//
// On success the call does not return: the calling process image, and every
// goroutine in it, is replaced by the target program. On failure the
// primitive's error is returned unmodified.
type Execer interface {
	Exec(path string, argv, envp []string) error
}

var (
	// ErrUnsupportedPlatform indicates the primitive is unavailable on this OS.
	ErrUnsupportedPlatform = errors.New("process replacement not supported on this platform")

	// ErrUnexpectedReturn indicates the primitive returned without an error.
	// A successful replacement cannot return, so this is an error state.
	ErrUnexpectedReturn = errors.New("unexpected return from process replacement")
)

// System is the real process-replacement primitive.
type System struct{}

// NewSystem creates the real primitive.
func NewSystem() *System {
	return &System{}
}
