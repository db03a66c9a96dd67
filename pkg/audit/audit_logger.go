package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventDataLoaded      EventType = "data_loaded"
	EventCommandApplied  EventType = "command_applied"
	EventCommandRejected EventType = "command_rejected"
	EventSaveFailed      EventType = "save_failed"
)

// Event is one entry of the audit trail. Nothing in it may carry raw
// personal data: emails are masked and free text is hashed.
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Service   string                 `json:"service"`
	Level     string                 `json:"level"`
	Event     EventType              `json:"event"`
	Command   string                 `json:"command,omitempty"`
	Subject   string                 `json:"subject,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger writes the audit trail of model changes through zap.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	chain       *hashChain
}

// New builds a production zap logger writing JSON lines to outputPaths
// ("stdout", "stderr" or file paths).
func New(serviceName string, outputPaths ...string) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.Sampling = nil

	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}
	config.OutputPaths = outputPaths
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, err
	}
	return NewFromZap(logger, serviceName), nil
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(logger *zap.Logger, serviceName string) *Logger {
	return &Logger{zapLogger: logger, serviceName: serviceName, chain: newHashChain()}
}

// Nop returns a logger that discards every event.
func Nop() *Logger {
	return NewFromZap(zap.NewNop(), "")
}

// Log logs an audit event
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName

	level := zapcore.InfoLevel
	switch event.Event {
	case EventCommandRejected:
		level = zapcore.WarnLevel
	case EventSaveFailed:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("event", string(event.Event)),
	}
	if event.Command != "" {
		fields = append(fields, zap.String("command", event.Command))
	}
	if event.Subject != "" {
		fields = append(fields, zap.String("subject", event.Subject))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	details := ""
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		details = string(detailsJSON)
		fields = append(fields, zap.String("details", details))
	}

	timestamp := formatTimestamp(event.Timestamp)
	seq, prev, row := l.chain.next(string(event.Event), timestamp, event.Command, event.Subject, details)
	fields = append(fields,
		zap.String("event_time", timestamp),
		zap.Int64("seq", seq),
		zap.String("prev_hash", prev),
		zap.String("row_hash", row),
	)

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// LogDataLoaded records the collection sizes read at startup.
func (l *Logger) LogDataLoaded(ctx context.Context, candidates, positions, interviews int) {
	l.Log(ctx, Event{
		Event: EventDataLoaded,
		Details: map[string]interface{}{
			"candidates": candidates,
			"positions":  positions,
			"interviews": interviews,
		},
	})
}

// LogCommandApplied records a successful mutating command.
func (l *Logger) LogCommandApplied(ctx context.Context, requestID, word, input, feedback string) {
	l.Log(ctx, Event{
		Event:     EventCommandApplied,
		Command:   word,
		Subject:   HashValue(input),
		RequestID: requestID,
		Details:   map[string]interface{}{"feedback": RedactEmails(feedback)},
	})
}

// LogCommandRejected records a mutating command that failed before changing the model.
func (l *Logger) LogCommandRejected(ctx context.Context, requestID, word, input, reason string) {
	l.Log(ctx, Event{
		Event:     EventCommandRejected,
		Command:   word,
		Subject:   HashValue(input),
		RequestID: requestID,
		Details:   map[string]interface{}{"reason": RedactEmails(reason)},
	})
}

// LogSaveFailed records a mutation that was applied in memory but not persisted.
func (l *Logger) LogSaveFailed(ctx context.Context, requestID, word string, err error) {
	l.Log(ctx, Event{
		Event:     EventSaveFailed,
		Command:   word,
		RequestID: requestID,
		Details:   map[string]interface{}{"error": err.Error()},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// --- Helper Functions ---

var emailPattern = regexp.MustCompile(`[^\s;:,]+@[^\s;:,]+`)

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := -1
	for i, c := range email {
		if c == '@' {
			atIndex = i
			break
		}
	}
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// RedactEmails masks every email address found in text.
func RedactEmails(text string) string {
	return emailPattern.ReplaceAllStringFunc(text, MaskEmail)
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	if value == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8]) // First 16 chars of hex
}
