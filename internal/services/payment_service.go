package services

import (
	"context"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"go.uber.org/zap"
)

// PaymentService owns payment records. Records are created once and never updated.
type PaymentService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(queries db.Querier, log *zap.Logger) *PaymentService {
	return &PaymentService{
		queries: queries,
		logger:  logger.OrGlobal(log),
	}
}

// CreatePaymentInput describes a completed charge attempt.
type CreatePaymentInput struct {
	PaymentIntentID   string `validate:"required"`
	ChargeID          string `validate:"required"`
	Amount            int64  `validate:"gte=0"`
	Currency          string `validate:"required"`
	Status            string `validate:"required"`
	PaymentMethodType string
	ReceiptEmail      string `validate:"omitempty,email"`
	CustomerID        string
	Description       string
}

// Create inserts a payment. An existing record for the same payment intent is left
// untouched and apperrors.ErrDuplicateRecord is returned.
func (s *PaymentService) Create(ctx context.Context, in CreatePaymentInput) (*db.Payment, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	payment, err := s.queries.CreatePayment(ctx, db.CreatePaymentParams{
		PaymentIntentID:   in.PaymentIntentID,
		ChargeID:          in.ChargeID,
		Amount:            in.Amount,
		Currency:          in.Currency,
		Status:            in.Status,
		PaymentMethodType: helpers.StringToNullableText(in.PaymentMethodType),
		ReceiptEmail:      helpers.StringToNullableText(in.ReceiptEmail),
		CustomerID:        helpers.StringToNullableText(in.CustomerID),
		Description:       helpers.StringToNullableText(in.Description),
	})
	if err != nil {
		return nil, apperrors.FromDB("create payment", "payment", in.PaymentIntentID, err)
	}

	s.logger.Info("Payment recorded",
		zap.String("payment_intent_id", payment.PaymentIntentID),
		zap.String("charge_id", payment.ChargeID),
		zap.Int64("amount", payment.Amount),
		zap.String("currency", payment.Currency),
	)
	return &payment, nil
}

// GetByPaymentIntentID fetches one payment by its business key.
func (s *PaymentService) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*db.Payment, error) {
	payment, err := s.queries.GetPaymentByIntentID(ctx, paymentIntentID)
	if err != nil {
		return nil, apperrors.FromDB("get payment", "payment", paymentIntentID, err)
	}
	return &payment, nil
}

// List returns payments newest first, optionally filtered by status and receipt email.
func (s *PaymentService) List(ctx context.Context, params ListParams) ([]db.Payment, error) {
	params = params.normalized()
	payments, err := s.queries.ListPayments(ctx, db.ListPaymentsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
		Status: statusFilter(params.Status),
		Email:  helpers.StringToNullableText(params.Email),
	})
	if err != nil {
		return nil, apperrors.FromDB("list payments", "payment", "", err)
	}
	return payments, nil
}

// ListRecent returns the n most recent payments.
func (s *PaymentService) ListRecent(ctx context.Context, n int32) ([]db.Payment, error) {
	return s.List(ctx, ListParams{Limit: n})
}

// Count counts payments, optionally restricted to one status.
func (s *PaymentService) Count(ctx context.Context, status string) (int64, error) {
	n, err := s.queries.CountPayments(ctx, statusFilter(status))
	if err != nil {
		return 0, apperrors.FromDB("count payments", "payment", "", err)
	}
	return n, nil
}
