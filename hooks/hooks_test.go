package hooks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/victoralfred/execshim/intercept"
)

// orderedHook records its invocation order in a shared slice.
type orderedHook struct {
	name     string
	priority int
	order    *[]string
	err      error
}

func (h *orderedHook) Name() string  { return h.name }
func (h *orderedHook) Priority() int { return h.priority }

func (h *orderedHook) PreExec(ctx context.Context, d *intercept.Decision) error {
	*h.order = append(*h.order, h.name)
	return h.err
}

func (h *orderedHook) OnError(ctx context.Context, d *intercept.Decision, err error) {
	*h.order = append(*h.order, h.name)
}

// bareHook implements no extension point.
type bareHook struct{}

func (bareHook) Name() string  { return "bare" }
func (bareHook) Priority() int { return 0 }

func decision() *intercept.Decision {
	return &intercept.Decision{
		Original: "/usr/bin/true",
		Target:   "/sandbox/bin/true",
		Outcome:  intercept.OutcomeRedirect,
	}
}

func TestRegistryRunsPreExecInPriorityOrder(t *testing.T) {
	var order []string
	r := NewRegistry()

	for _, h := range []*orderedHook{
		{name: "late", priority: 100, order: &order},
		{name: "early", priority: 1, order: &order},
		{name: "middle", priority: 50, order: &order},
	} {
		if err := r.Register(h); err != nil {
			t.Fatalf("Register(%s) error: %v", h.name, err)
		}
	}

	if err := r.PreExec(context.Background(), decision()); err != nil {
		t.Fatalf("PreExec() error: %v", err)
	}

	want := []string{"early", "middle", "late"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("execution order = %v, want %v", order, want)
	}
}

func TestRegistryPreExecErrorNamesHook(t *testing.T) {
	var order []string
	hookErr := errors.New("boom")
	r := NewRegistry()

	if err := r.Register(&orderedHook{name: "failing", priority: 1, order: &order, err: hookErr}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := r.Register(&orderedHook{name: "never", priority: 2, order: &order}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	err := r.PreExec(context.Background(), decision())
	if !errors.Is(err, hookErr) {
		t.Errorf("PreExec() error = %v, want wrapped %v", err, hookErr)
	}
	if !strings.Contains(err.Error(), "failing") {
		t.Errorf("error %q should name the failing hook", err)
	}
	if len(order) != 1 {
		t.Errorf("later hooks ran after failure: %v", order)
	}
}

func TestRegistryUnregister(t *testing.T) {
	var order []string
	r := NewRegistry()

	if err := r.Register(&orderedHook{name: "gone", priority: 1, order: &order}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	r.Unregister("gone")

	if err := r.PreExec(context.Background(), decision()); err != nil {
		t.Fatalf("PreExec() error: %v", err)
	}
	r.OnError(context.Background(), decision(), errors.New("x"))

	if len(order) != 0 {
		t.Errorf("unregistered hook still ran: %v", order)
	}
}

func TestRegistryRejectsBareHook(t *testing.T) {
	if err := NewRegistry().Register(bareHook{}); err == nil {
		t.Error("Register() should fail for a hook with no extension point")
	}
}

func TestRegistryImplementsInterceptHook(t *testing.T) {
	var _ intercept.Hook = NewRegistry()
}

func TestLoggingHook(t *testing.T) {
	var lines []string
	h := NewLoggingHook(func(format string, args ...interface{}) {
		lines = append(lines, format)
	})

	r := NewRegistry()
	if err := r.Register(h); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if err := r.PreExec(context.Background(), decision()); err != nil {
		t.Fatalf("PreExec() error: %v", err)
	}
	r.OnError(context.Background(), decision(), errors.New("x"))

	if len(lines) != 2 {
		t.Errorf("got %d log lines, want 2", len(lines))
	}
}
