package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

// WebhookEventService reads the delivery log written by eventlog.DBRecorder.
type WebhookEventService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewWebhookEventService(queries db.Querier, log *zap.Logger) *WebhookEventService {
	return &WebhookEventService{
		queries: queries,
		logger:  logger.OrGlobal(log),
	}
}

// List returns logged deliveries, most recently updated first. Status filters on outcome.
func (s *WebhookEventService) List(ctx context.Context, params ListParams) ([]db.WebhookEvent, error) {
	params = params.normalized()
	events, err := s.queries.ListWebhookEvents(ctx, db.ListWebhookEventsParams{
		Limit:     params.Limit,
		Offset:    params.Offset,
		EventType: helpers.StringToNullableText(params.EventType),
		Outcome:   helpers.StringToNullableText(params.Status),
	})
	if err != nil {
		return nil, apperrors.FromDB("list webhook events", "webhook_event", "", err)
	}
	return events, nil
}
