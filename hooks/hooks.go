// Package hooks provides extension points around the substitution decision.
package hooks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/victoralfred/execshim/intercept"
)

// Hook identifies an extension point implementation.
type Hook interface {
	// Name returns a unique identifier for the hook.
	Name() string

	// Priority determines execution order (lower = earlier).
	Priority() int
}

// PreExecHook is called after the diagnostic line is written and before the
// primitive is invoked. A non-nil error aborts the call.
type PreExecHook interface {
	Hook
	PreExec(ctx context.Context, d *intercept.Decision) error
}

// ErrorHook is called when the primitive returns a failure.
type ErrorHook interface {
	Hook
	OnError(ctx context.Context, d *intercept.Decision, err error)
}

// Registry manages hook registration and dispatch. It implements
// intercept.Hook, so a populated registry installs on a trampoline as a
// single unit via Builder.WithHooks.
type Registry struct {
	preExec    []PreExecHook
	errorHooks []ErrorHook
	mu         sync.RWMutex
}

// NewRegistry creates a new hook registry.
func NewRegistry() *Registry {
	return &Registry{
		preExec:    make([]PreExecHook, 0),
		errorHooks: make([]ErrorHook, 0),
	}
}

// Register adds a hook to the registry.
func (r *Registry) Register(hook Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Register based on hook type (can implement multiple)
	registered := false

	if h, ok := hook.(PreExecHook); ok {
		r.preExec = append(r.preExec, h)
		sort.Slice(r.preExec, func(i, j int) bool {
			return r.preExec[i].Priority() < r.preExec[j].Priority()
		})
		registered = true
	}

	if h, ok := hook.(ErrorHook); ok {
		r.errorHooks = append(r.errorHooks, h)
		sort.Slice(r.errorHooks, func(i, j int) bool {
			return r.errorHooks[i].Priority() < r.errorHooks[j].Priority()
		})
		registered = true
	}

	if !registered {
		return fmt.Errorf("hook %s implements no extension point", hook.Name())
	}

	return nil
}

// Unregister removes a hook by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.preExec = removeByNamePre(r.preExec, name)
	r.errorHooks = removeByNameError(r.errorHooks, name)
}

// PreExec runs all pre-exec hooks in priority order.
func (r *Registry) PreExec(ctx context.Context, d *intercept.Decision) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, hook := range r.preExec {
		if err := hook.PreExec(ctx, d); err != nil {
			return fmt.Errorf("hook %s: %w", hook.Name(), err)
		}
	}
	return nil
}

// OnError runs all error hooks in priority order.
func (r *Registry) OnError(ctx context.Context, d *intercept.Decision, execErr error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, hook := range r.errorHooks {
		hook.OnError(ctx, d, execErr)
	}
}

// Helper functions for removing hooks by name
func removeByNamePre(hooks []PreExecHook, name string) []PreExecHook {
	result := make([]PreExecHook, 0, len(hooks))
	for _, h := range hooks {
		if h.Name() != name {
			result = append(result, h)
		}
	}
	return result
}

func removeByNameError(hooks []ErrorHook, name string) []ErrorHook {
	result := make([]ErrorHook, 0, len(hooks))
	for _, h := range hooks {
		if h.Name() != name {
			result = append(result, h)
		}
	}
	return result
}

// LoggingHook is a built-in hook that logs interceptions.
type LoggingHook struct {
	logger func(format string, args ...interface{})
}

// NewLoggingHook creates a new logging hook.
func NewLoggingHook(logger func(format string, args ...interface{})) *LoggingHook {
	return &LoggingHook{logger: logger}
}

func (h *LoggingHook) Name() string  { return "logging" }
func (h *LoggingHook) Priority() int { return 1000 }

func (h *LoggingHook) PreExec(ctx context.Context, d *intercept.Decision) error {
	h.logger("Intercepted: %s", d)
	return nil
}

func (h *LoggingHook) OnError(ctx context.Context, d *intercept.Decision, err error) {
	h.logger("Replacement failed: %s - %v", d, err)
}
