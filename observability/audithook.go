package observability

import (
	"context"

	"github.com/victoralfred/execshim/intercept"
)

// AuditHook adapts an AuditLogger to the hook registry: one decision event
// per intercepted call, plus a failure event when the primitive returns.
// It satisfies both the hooks package's PreExecHook and ErrorHook.
type AuditHook struct {
	logger AuditLogger
}

// NewAuditHook creates a hook that records interceptions to logger.
func NewAuditHook(logger AuditLogger) *AuditHook {
	return &AuditHook{logger: logger}
}

func (h *AuditHook) Name() string  { return "audit" }
func (h *AuditHook) Priority() int { return 100 }

// PreExec records the decision. The record is written before the primitive
// runs because a successful replacement leaves no chance to write afterwards.
// Audit failures do not abort the call.
func (h *AuditHook) PreExec(ctx context.Context, d *intercept.Decision) error {
	//nolint:errcheck // Audit failure must not block the replacement
	_ = h.logger.Log(ctx, NewInterceptEvent(d))
	return nil
}

// OnError records the primitive's failure.
func (h *AuditHook) OnError(ctx context.Context, d *intercept.Decision, err error) {
	event := NewInterceptEvent(d)
	event.Type = EventExecFailed
	if err != nil {
		event.Error = err.Error()
	}
	//nolint:errcheck // Audit failure must not block error propagation
	_ = h.logger.Log(ctx, event)
}
