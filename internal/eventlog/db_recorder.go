package eventlog

import (
	"context"
	"unicode/utf8"

	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"go.uber.org/zap"
)

const maxStoredErrorLen = 1024

// DBRecorder keeps one webhook_events row per event id, counting deliveries.
type DBRecorder struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewDBRecorder(queries db.Querier, log *zap.Logger) *DBRecorder {
	return &DBRecorder{queries: queries, logger: logger.OrGlobal(log)}
}

func (d *DBRecorder) Record(ctx context.Context, entry Entry) {
	if entry.EventID == "" {
		return
	}

	msg := truncateUTF8(entry.Error, maxStoredErrorLen)

	_, err := d.queries.UpsertWebhookEvent(ctx, db.UpsertWebhookEventParams{
		EventID:      entry.EventID,
		EventType:    entry.EventType,
		Outcome:      string(entry.Outcome),
		ErrorClass:   helpers.StringToNullableText(entry.ErrorClass),
		ErrorMessage: helpers.StringToNullableText(msg),
	})
	if err != nil {
		d.logger.Warn("Failed to record webhook event",
			zap.String("event_id", entry.EventID),
			zap.String("event_type", entry.EventType),
			zap.Error(err),
		)
	}
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
