package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"go.uber.org/zap"
)

// PayoutService keeps an append-only history of payout events. Each processor event
// becomes one row; a payout's state over time is the ordered rows for its payout id.
type PayoutService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPayoutService creates a new payout service
func NewPayoutService(queries db.Querier, log *zap.Logger) *PayoutService {
	return &PayoutService{
		queries: queries,
		logger:  logger.OrGlobal(log),
	}
}

type RecordPayoutEventInput struct {
	EventID        string `validate:"required"`
	PayoutID       string `validate:"required"`
	AccountID      string
	Amount         int64  `validate:"gte=0"`
	Currency       string `validate:"required"`
	Status         string `validate:"required"`
	EventType      string `validate:"required"`
	FailureCode    string
	FailureMessage string
	ArrivalDate    int64
}

// RecordEvent appends a payout snapshot. A redelivered event id returns the row
// stored the first time and created=false.
func (s *PayoutService) RecordEvent(ctx context.Context, in RecordPayoutEventInput) (event *db.PayoutEvent, created bool, err error) {
	if err := validateInput(in); err != nil {
		return nil, false, err
	}

	row, err := s.queries.CreatePayoutEvent(ctx, db.CreatePayoutEventParams{
		EventID:        in.EventID,
		PayoutID:       in.PayoutID,
		AccountID:      helpers.StringToNullableText(in.AccountID),
		Amount:         in.Amount,
		Currency:       in.Currency,
		Status:         in.Status,
		EventType:      in.EventType,
		FailureCode:    helpers.StringToNullableText(in.FailureCode),
		FailureMessage: helpers.StringToNullableText(in.FailureMessage),
		ArrivalDate:    helpers.UnixToNullableTimestamptz(in.ArrivalDate),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := s.queries.GetPayoutEventByEventID(ctx, in.EventID)
		if getErr != nil {
			return nil, false, apperrors.FromDB("get payout event", "payout event", in.EventID, getErr)
		}
		s.logger.Debug("Payout event already recorded", zap.String("event_id", in.EventID))
		return &existing, false, nil
	}
	if err != nil {
		return nil, false, apperrors.FromDB("record payout event", "payout event", in.EventID, err)
	}

	s.logger.Info("Payout event recorded",
		zap.String("payout_id", row.PayoutID),
		zap.String("event_type", row.EventType),
		zap.String("status", row.Status),
	)
	return &row, true, nil
}

// ListEvents lists payout events newest first.
func (s *PayoutService) ListEvents(ctx context.Context, params ListParams) ([]db.PayoutEvent, error) {
	params = params.normalized()
	events, err := s.queries.ListPayoutEvents(ctx, db.ListPayoutEventsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
		Status: statusFilter(params.Status),
	})
	if err != nil {
		return nil, apperrors.FromDB("list payout events", "payout event", "", err)
	}
	return events, nil
}

// History returns every snapshot of one payout, oldest first.
func (s *PayoutService) History(ctx context.Context, payoutID string) ([]db.PayoutEvent, error) {
	events, err := s.queries.ListPayoutEventsByPayoutID(ctx, payoutID)
	if err != nil {
		return nil, apperrors.FromDB("payout history", "payout", payoutID, err)
	}
	return events, nil
}

// Latest returns the most recent snapshot of one payout.
func (s *PayoutService) Latest(ctx context.Context, payoutID string) (*db.PayoutEvent, error) {
	events, err := s.History(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperrors.NewNotFound("payout", payoutID, nil)
	}
	latest := events[len(events)-1]
	return &latest, nil
}

// Count counts distinct payouts having at least one event in status.
func (s *PayoutService) Count(ctx context.Context, status string) (int64, error) {
	n, err := s.queries.CountPayouts(ctx, statusFilter(status))
	if err != nil {
		return 0, apperrors.FromDB("count payouts", "payout", "", err)
	}
	return n, nil
}
