package services

import (
	"context"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"go.uber.org/zap"
)

// RefundService owns refund records, upserted by refund id as their status moves.
type RefundService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewRefundService creates a new refund service
func NewRefundService(queries db.Querier, log *zap.Logger) *RefundService {
	return &RefundService{
		queries: queries,
		logger:  logger.OrGlobal(log),
	}
}

type UpsertRefundInput struct {
	RefundID        string `validate:"required"`
	// Empty for refunds created directly against a charge.
	PaymentIntentID string
	Amount          int64  `validate:"gte=0"`
	Currency        string `validate:"required"`
	Status          string `validate:"required"`
	Reason          string
}

func (s *RefundService) Upsert(ctx context.Context, in UpsertRefundInput) (*db.Refund, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	refund, err := s.queries.UpsertRefund(ctx, db.UpsertRefundParams{
		RefundID:        in.RefundID,
		PaymentIntentID: helpers.StringToNullableText(in.PaymentIntentID),
		Amount:          in.Amount,
		Currency:        in.Currency,
		Status:          in.Status,
		Reason:          helpers.StringToNullableText(in.Reason),
	})
	if err != nil {
		return nil, apperrors.FromDB("upsert refund", "refund", in.RefundID, err)
	}

	s.logger.Info("Refund upserted",
		zap.String("refund_id", refund.RefundID),
		zap.String("payment_intent_id", refund.PaymentIntentID.String),
		zap.String("status", refund.Status),
	)
	return &refund, nil
}

func (s *RefundService) GetByRefundID(ctx context.Context, refundID string) (*db.Refund, error) {
	refund, err := s.queries.GetRefundByRefundID(ctx, refundID)
	if err != nil {
		return nil, apperrors.FromDB("get refund", "refund", refundID, err)
	}
	return &refund, nil
}

func (s *RefundService) List(ctx context.Context, params ListParams) ([]db.Refund, error) {
	params = params.normalized()
	refunds, err := s.queries.ListRefunds(ctx, db.ListRefundsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
		Status: statusFilter(params.Status),
	})
	if err != nil {
		return nil, apperrors.FromDB("list refunds", "refund", "", err)
	}
	return refunds, nil
}

// ListByPaymentIntent returns every refund issued against one payment intent.
func (s *RefundService) ListByPaymentIntent(ctx context.Context, paymentIntentID string) ([]db.Refund, error) {
	refunds, err := s.queries.ListRefundsByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, apperrors.FromDB("list refunds by payment intent", "refund", paymentIntentID, err)
	}
	return refunds, nil
}

func (s *RefundService) Count(ctx context.Context, status string) (int64, error) {
	n, err := s.queries.CountRefunds(ctx, statusFilter(status))
	if err != nil {
		return 0, apperrors.FromDB("count refunds", "refund", "", err)
	}
	return n, nil
}
