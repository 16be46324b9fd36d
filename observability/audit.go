package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/victoralfred/gowritter/safepath"

	"github.com/victoralfred/execshim/intercept"
)

// AuditLogger provides immutable audit logging of interception decisions.
type AuditLogger interface {
	// Log logs an audit event.
	Log(ctx context.Context, event *InterceptEvent) error

	// Close closes the audit logger.
	Close() error
}

// InterceptEvent represents an audit log entry. One decision event is logged
// per intercepted call before the primitive runs; a failure event follows
// only when the primitive returns an error.
type InterceptEvent struct {
	Timestamp time.Time          `json:"timestamp"`
	ID        string             `json:"id"`
	Type      InterceptEventType `json:"type"`
	Original  string             `json:"original"`
	Target    string             `json:"target"`
	Outcome   string             `json:"outcome"`
	Error     string             `json:"error,omitempty"`
	ArgCount  int                `json:"arg_count"`
	EnvOwn    bool               `json:"env_own"`
}

// InterceptEventType represents the type of audit event.
type InterceptEventType string

const (
	// EventDecision records the substitution decision.
	EventDecision InterceptEventType = "decision"

	// EventExecFailed records a primitive failure.
	EventExecFailed InterceptEventType = "exec_failed"
)

// AuditLogLevel determines what events to log.
type AuditLogLevel string

const (
	// AuditLogAll logs all events.
	AuditLogAll AuditLogLevel = "all"

	// AuditLogRedirects logs only redirected calls.
	AuditLogRedirects AuditLogLevel = "redirects"

	// AuditLogFailures logs only primitive failures.
	AuditLogFailures AuditLogLevel = "failures"
)

// AuditConfig configures the audit logger.
type AuditConfig struct {
	LogLevel AuditLogLevel `yaml:"log_level"`
	BasePath string        `yaml:"base_path"`
	FilePath string        `yaml:"file_path"`
	Enabled  bool          `yaml:"enabled"`
}

// DefaultAuditConfig returns default audit configuration.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		Enabled:  false,
		LogLevel: AuditLogAll,
		BasePath: "/var/log",
		FilePath: "execshim/audit.log",
	}
}

// fileAuditLogger implements AuditLogger using gowritter.
type fileAuditLogger struct {
	safePath *safepath.SafePath
	config   AuditConfig
	mu       sync.Mutex
}

// NewFileAuditLogger creates a new file-based audit logger.
func NewFileAuditLogger(config AuditConfig) (AuditLogger, error) {
	sp, err := safepath.New(config.BasePath)
	if err != nil {
		return nil, fmt.Errorf("creating safe path: %w", err)
	}

	return &fileAuditLogger{
		config:   config,
		safePath: sp,
	}, nil
}

// Log implements AuditLogger.Log.
func (l *fileAuditLogger) Log(ctx context.Context, event *InterceptEvent) error {
	if !l.config.Enabled {
		return nil
	}

	if !l.shouldLog(event) {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling audit event: %w", err)
	}

	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.safePath.AppendFile(l.config.FilePath, data, 0o644); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}

	return nil
}

// Close implements AuditLogger.Close.
func (l *fileAuditLogger) Close() error {
	return nil
}

func (l *fileAuditLogger) shouldLog(event *InterceptEvent) bool {
	switch l.config.LogLevel {
	case AuditLogAll:
		return true
	case AuditLogRedirects:
		return event.Outcome == intercept.OutcomeRedirect.String()
	case AuditLogFailures:
		return event.Type == EventExecFailed
	default:
		return true
	}
}

// NewInterceptEvent creates a decision event from an interception decision.
func NewInterceptEvent(d *intercept.Decision) *InterceptEvent {
	return &InterceptEvent{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Type:      EventDecision,
		Original:  d.Original,
		Target:    d.Target,
		Outcome:   d.Outcome.String(),
		ArgCount:  len(d.Argv),
		EnvOwn:    d.Envp != nil,
	}
}

// NoopAuditLogger returns a no-op audit logger.
func NoopAuditLogger() AuditLogger {
	return &noopAuditLogger{}
}

type noopAuditLogger struct{}

func (l *noopAuditLogger) Log(ctx context.Context, event *InterceptEvent) error { return nil }
func (l *noopAuditLogger) Close() error                                         { return nil }
