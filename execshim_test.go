package execshim_test

import (
	"bytes"
	"context"
	"strings"
	"syscall"
	"testing"

	"github.com/victoralfred/execshim"
	"github.com/victoralfred/execshim/hooks"
	"github.com/victoralfred/execshim/observability"
)

// recordingExecer stands in for the real primitive.
type recordingExecer struct {
	path string
	argv []string
	envp []string
}

func (r *recordingExecer) Exec(path string, argv, envp []string) error {
	r.path, r.argv, r.envp = path, argv, envp
	return syscall.ENOENT
}

func TestFacadeRedirectFlow(t *testing.T) {
	t.Setenv(execshim.RedirectEnvVar, "/sandbox/bin/true")

	execer := &recordingExecer{}
	var diag bytes.Buffer

	registry := hooks.NewRegistry()
	if err := registry.Register(hooks.NewLoggingHook(func(string, ...interface{}) {})); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := registry.Register(observability.NewAuditHook(observability.NoopAuditLogger())); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	tr, err := execshim.NewBuilder().
		WithExecer(execer).
		WithDiagnostics(&diag).
		WithHooks(registry).
		WithTelemetry(observability.NoopTelemetry()).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	execErr := tr.Exec(context.Background(), "/usr/bin/true", []string{"/usr/bin/true"}, nil)
	if execErr != syscall.ENOENT {
		t.Errorf("Exec() error = %v, want ENOENT surfaced verbatim", execErr)
	}

	if execer.path != "/sandbox/bin/true" {
		t.Errorf("primitive invoked with %q, want the substitute", execer.path)
	}
	if !strings.Contains(diag.String(), "Wrapping call to /usr/bin/true with /sandbox/bin/true") {
		t.Errorf("diagnostic = %q", diag.String())
	}
}

func TestDecide(t *testing.T) {
	t.Setenv(execshim.RedirectEnvVar, "/sandbox/bin/sh")

	d := execshim.Decide("/bin/sh")
	if !d.Redirected() || d.Target != "/sandbox/bin/sh" {
		t.Errorf("Decide() = %v, want redirect to /sandbox/bin/sh", d)
	}
}

func TestVersion(t *testing.T) {
	if execshim.Version() == "" {
		t.Error("Version() should not be empty")
	}
}
