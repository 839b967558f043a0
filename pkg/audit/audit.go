// Package audit keeps a hash-chained trail of application lifecycle events
// and mirrors every entry to a zap logger.
package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of lifecycle event
type EventType string

const (
	EventSubmitted       EventType = "application_submitted"
	EventEnqueued        EventType = "application_enqueued"
	EventDequeued        EventType = "application_dequeued"
	EventShortlisted     EventType = "application_shortlisted"
	EventRejected        EventType = "application_rejected"
	EventStageChanged    EventType = "stage_changed"
	EventReportGenerated EventType = "report_generated"
	EventReportExported  EventType = "report_exported"
)

// EventLevelMap fixes the zap level for each event type.
// Queue traffic is noisy and stays at debug.
var EventLevelMap = map[EventType]zapcore.Level{
	EventSubmitted:       zapcore.InfoLevel,
	EventEnqueued:        zapcore.DebugLevel,
	EventDequeued:        zapcore.DebugLevel,
	EventShortlisted:     zapcore.InfoLevel,
	EventRejected:        zapcore.InfoLevel,
	EventStageChanged:    zapcore.InfoLevel,
	EventReportGenerated: zapcore.DebugLevel,
	EventReportExported:  zapcore.InfoLevel,
}

// Subject identifies the application an event is about. Zero for report events.
type Subject struct {
	ApplicationID string `json:"application_id,omitempty"`
	Name          string `json:"name,omitempty"`
	JobID         string `json:"job_id,omitempty"`
}

// Event is one entry of the trail.
type Event struct {
	Seq          int64                  `json:"seq"`
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	Subject      Subject                `json:"subject"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
	PreviousHash string                 `json:"previous_hash"`
	Hash         string                 `json:"hash"`
}

type ctxKey struct{}

// WithRequestID tags every event recorded under ctx with id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFrom returns the id set by WithRequestID, if any.
func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Logger records lifecycle events.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
	now         func() time.Time

	mu     sync.Mutex
	events []Event
}

// New wraps an existing zap logger. A nil zap logger is replaced by a no-op one.
func New(zapLogger *zap.Logger, serviceName, environment string) *Logger {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	return &Logger{
		zapLogger:   zapLogger,
		serviceName: serviceName,
		environment: environment,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// NewNop returns a Logger that keeps the chain but writes nothing.
func NewNop() *Logger {
	return New(nil, "application-tracker", "test")
}

// NewZapLogger builds a production zap logger writing to path
// ("stderr", "stdout" or a file). "off" yields a no-op logger.
func NewZapLogger(path string) (*zap.Logger, error) {
	if path == "off" || path == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
}

// Record appends an event for subject and writes it to zap.
func (l *Logger) Record(ctx context.Context, eventType EventType, subject Subject, details map[string]interface{}) Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	level, ok := EventLevelMap[eventType]
	if !ok {
		level = zapcore.InfoLevel
	}

	previous := GenesisHash
	if n := len(l.events); n > 0 {
		previous = l.events[n-1].Hash
	}

	event := Event{
		Seq:          int64(len(l.events) + 1),
		Timestamp:    l.now(),
		Service:      l.serviceName,
		Environment:  l.environment,
		Level:        level.String(),
		Event:        eventType,
		Subject:      subject,
		RequestID:    RequestIDFrom(ctx),
		Details:      copyDetails(details),
		PreviousHash: previous,
	}
	event.Hash = hashEvent(event)
	l.events = append(l.events, event)

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.Int64("seq", event.Seq),
		zap.String("hash", event.Hash),
	}
	if subject.ApplicationID != "" {
		fields = append(fields, zap.String("application_id", subject.ApplicationID))
	}
	if subject.Name != "" {
		fields = append(fields, zap.String("name", subject.Name))
	}
	if subject.JobID != "" {
		fields = append(fields, zap.String("job_id", subject.JobID))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("details", details))
	}
	l.zapLogger.Log(level, string(eventType), fields...)

	return event
}

// Events returns a copy of the trail in recording order.
func (l *Logger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	for i, e := range l.events {
		e.Details = copyDetails(e.Details)
		out[i] = e
	}
	return out
}

func copyDetails(details map[string]interface{}) map[string]interface{} {
	if details == nil {
		return nil
	}
	out := make(map[string]interface{}, len(details))
	for k, v := range details {
		out[k] = v
	}
	return out
}

// Sync flushes the underlying zap logger.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func detailsString(details map[string]interface{}) string {
	if len(details) == 0 {
		return ""
	}
	b, err := json.Marshal(details)
	if err != nil {
		return ""
	}
	return string(b)
}
