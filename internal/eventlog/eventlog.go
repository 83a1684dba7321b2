// Package eventlog records the outcome of every dispatch branch as a structured entry.
package eventlog

import (
	"context"
	"time"

	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"go.uber.org/zap"
)

// Outcome of one dispatch branch.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeError   Outcome = "error"
)

// Entry is one branch execution for one delivered event.
type Entry struct {
	EventID    string        `json:"event_id"`
	EventType  string        `json:"event_type"`
	Branch     string        `json:"branch"`
	Outcome    Outcome       `json:"outcome"`
	ErrorClass string        `json:"error_class,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// Recorder receives dispatch outcomes. Implementations must not block the webhook
// response on their own failures; they log and move on.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// Nop discards entries.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}

// Multi fans an entry out to several recorders in order.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, entry Entry) {
	for _, r := range m {
		if r != nil {
			r.Record(ctx, entry)
		}
	}
}

// ZapRecorder writes entries as structured log lines.
type ZapRecorder struct {
	logger *zap.Logger
}

func NewZapRecorder(log *zap.Logger) *ZapRecorder {
	return &ZapRecorder{logger: logger.OrGlobal(log)}
}

func (z *ZapRecorder) Record(_ context.Context, entry Entry) {
	fields := []zap.Field{
		zap.String("event_id", entry.EventID),
		zap.String("event_type", entry.EventType),
		zap.String("branch", entry.Branch),
		zap.String("outcome", string(entry.Outcome)),
		zap.Duration("duration", entry.Duration),
	}

	if entry.Outcome == OutcomeError {
		fields = append(fields,
			zap.String("error_class", entry.ErrorClass),
			zap.String("error", entry.Error),
		)
		z.logger.Error("Webhook branch failed", fields...)
		return
	}
	if entry.Error != "" {
		fields = append(fields, zap.String("reason", entry.Error))
	}
	z.logger.Info("Webhook branch completed", fields...)
}
