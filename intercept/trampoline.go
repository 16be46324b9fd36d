// Package intercept implements the interception trampoline: the single
// substitution point between a caller's process-replacement request and the
// real primitive.
//
// The trampoline is stateless per call. Each invocation re-reads the redirect
// configuration value from process-wide environment state, emits one
// diagnostic line, and forwards the call - original or substituted - to the
// underlying primitive. On success the primitive never returns; on failure
// its error is surfaced verbatim.
package intercept

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/victoralfred/execshim/internal/execve"
)

// Metric names recorded through the Telemetry interface.
const (
	// MetricIntercepts counts every intercepted call, labeled by outcome.
	MetricIntercepts = "execshim_intercepts_total"

	// MetricRedirects counts redirected calls.
	MetricRedirects = "execshim_redirects_total"

	// MetricExecErrors counts primitive failures.
	MetricExecErrors = "execshim_exec_errors_total"
)

// Hook defines extension points around the substitution decision.
type Hook interface {
	// PreExec is called after the diagnostic line is written and before the
	// primitive is invoked. A non-nil error aborts the call.
	PreExec(ctx context.Context, d *Decision) error

	// OnError is called when the primitive returns a failure.
	OnError(ctx context.Context, d *Decision, err error)
}

// Telemetry provides observability.
type Telemetry interface {
	// StartSpan starts a new trace span.
	StartSpan(ctx context.Context, name string) (context.Context, func())

	// RecordCounter increments a counter.
	RecordCounter(name string, labels map[string]string)
}

// Trampoline is the active implementation of the process-replacement
// primitive within the host process. Every call routed through it makes its
// own redirect decision from current environment state; there are no other
// states and nothing is cached between calls.
//
// A successful Exec supplants the entire process, so concurrent callers need
// no coordination beyond what the primitive itself provides. Whether the
// configured substitute is itself subject to interception when it execs is
// undefined behavior inherited from the primitive.
type Trampoline struct {
	execer      execve.Execer
	lookup      Lookup
	diagnostics io.Writer
	hooks       []Hook
	telemetry   Telemetry
}

// Builder creates configured Trampoline instances.
type Builder struct {
	execer      execve.Execer
	lookup      Lookup
	diagnostics io.Writer
	hooks       []Hook
	telemetry   Telemetry
}

// NewBuilder creates a new trampoline builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithExecer sets the underlying primitive. Defaults to the real one.
func (b *Builder) WithExecer(execer execve.Execer) *Builder {
	b.execer = execer
	return b
}

// WithLookup sets the redirect configuration lookup. Defaults to EnvLookup.
func (b *Builder) WithLookup(lookup Lookup) *Builder {
	b.lookup = lookup
	return b
}

// WithDiagnostics sets the diagnostic stream. Defaults to standard output.
func (b *Builder) WithDiagnostics(w io.Writer) *Builder {
	b.diagnostics = w
	return b
}

// WithHooks adds interception hooks.
func (b *Builder) WithHooks(hooks ...Hook) *Builder {
	b.hooks = append(b.hooks, hooks...)
	return b
}

// WithTelemetry sets the telemetry provider.
func (b *Builder) WithTelemetry(telemetry Telemetry) *Builder {
	b.telemetry = telemetry
	return b
}

// Build creates the trampoline.
func (b *Builder) Build() (*Trampoline, error) {
	t := &Trampoline{
		execer:      b.execer,
		lookup:      b.lookup,
		diagnostics: b.diagnostics,
		hooks:       b.hooks,
		telemetry:   b.telemetry,
	}

	if t.execer == nil {
		t.execer = execve.NewSystem()
	}
	if t.lookup == nil {
		t.lookup = EnvLookup
	}
	if t.diagnostics == nil {
		t.diagnostics = os.Stdout
	}

	return t, nil
}

// Exec intercepts a single process-replacement request.
//
// The redirect configuration value is looked up fresh, one diagnostic line is
// written to the diagnostic stream, and the call is forwarded to the
// primitive - with the substitute path when the value is present (including
// present but empty), unchanged otherwise. argv and envp pass through
// untouched in both cases; argv[0] is never rewritten to match the
// substitute, so the target program sees whatever name the caller supplied.
//
// On success Exec never returns. On failure it returns the primitive's error
// exactly as a direct call would have, with no wrapping and no recovery.
func (t *Trampoline) Exec(ctx context.Context, path string, argv, envp []string) error {
	if t.telemetry != nil {
		var end func()
		ctx, end = t.telemetry.StartSpan(ctx, "intercept.Exec")
		defer end()
	}

	d := Decide(path, t.lookup)
	d.Argv = argv
	d.Envp = envp

	// One diagnostic line per call, before the primitive runs, in both the
	// redirected and pass-through cases.
	if d.Redirected() {
		fmt.Fprintf(t.diagnostics, "Wrapping call to %s with %s\n", d.Original, d.Target)
	} else {
		fmt.Fprintf(t.diagnostics, "Unable to wrapping call to %s\n", d.Original)
	}

	if t.telemetry != nil {
		t.telemetry.RecordCounter(MetricIntercepts, map[string]string{
			"outcome": d.Outcome.String(),
		})
		if d.Redirected() {
			t.telemetry.RecordCounter(MetricRedirects, nil)
		}
	}

	for _, hook := range t.hooks {
		if err := hook.PreExec(ctx, d); err != nil {
			return err
		}
	}

	execErr := t.execer.Exec(d.Target, argv, envp)

	// Only reachable on failure: a successful replacement does not return.
	if t.telemetry != nil {
		t.telemetry.RecordCounter(MetricExecErrors, map[string]string{
			"outcome": d.Outcome.String(),
		})
	}

	for _, hook := range t.hooks {
		hook.OnError(ctx, d, execErr)
	}

	// Surfaced verbatim so the caller observes the primitive's own failure.
	return execErr
}
