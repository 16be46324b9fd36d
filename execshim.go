package execshim

import (
	"context"

	"github.com/victoralfred/execshim/intercept"
)

// =============================================================================
// Core Types
// =============================================================================

// Trampoline is the active implementation of the process-replacement
// primitive. All interception goes through it.
type Trampoline = intercept.Trampoline

// Builder creates configured Trampoline instances.
type Builder = intercept.Builder

// Decision records a single substitution decision.
type Decision = intercept.Decision

// Outcome is the result of a redirect decision.
type Outcome = intercept.Outcome

// Lookup resolves the redirect configuration value.
type Lookup = intercept.Lookup

// Hook defines extension points around the substitution decision.
type Hook = intercept.Hook

// Telemetry provides observability.
type Telemetry = intercept.Telemetry

// Outcome constants.
const (
	OutcomePassThrough = intercept.OutcomePassThrough
	OutcomeRedirect    = intercept.OutcomeRedirect
)

// RedirectEnvVar names the environment variable that supplies the substitute
// executable path. This is the sole configuration surface of the redirect
// decision.
const RedirectEnvVar = intercept.RedirectEnvVar

// =============================================================================
// Factory Functions
// =============================================================================

// New creates a new Trampoline with default settings: the real primitive,
// the environment lookup, and diagnostics on standard output.
func New() (*Trampoline, error) {
	return intercept.NewBuilder().Build()
}

// NewBuilder creates a new trampoline builder.
//
// Example:
//
//	tr, err := execshim.NewBuilder().
//	    WithTelemetry(telemetry).
//	    Build()
func NewBuilder() *Builder {
	return intercept.NewBuilder()
}

// =============================================================================
// Convenience Functions
// =============================================================================

// Exec routes a single process-replacement request through a default
// trampoline. On success it never returns; on failure it returns the
// primitive's error exactly as a direct call would have.
func Exec(path string, argv, envp []string) error {
	tr, err := New()
	if err != nil {
		return err
	}
	return tr.Exec(context.Background(), path, argv, envp)
}

// Decide makes a fresh redirect decision for path from the current process
// environment without invoking the primitive.
func Decide(path string) *Decision {
	return intercept.Decide(path, nil)
}

// =============================================================================
// Version Information
// =============================================================================

// Version returns the library version.
func Version() string {
	return "1.0.0"
}
