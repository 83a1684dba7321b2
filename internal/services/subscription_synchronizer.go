package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/client/processor"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/period"
)

const (
	defaultInterval      = string(period.Month)
	defaultIntervalCount = int64(1)
)

// SubscriptionSynchronizer is the only writer of subscription records. It turns a
// processor subscription into a complete row and upserts it by subscription id.
type SubscriptionSynchronizer struct {
	queries   db.Querier
	processor processor.Client
	logger    *zap.Logger
	now       func() time.Time
}

type SynchronizerOption func(*SubscriptionSynchronizer)

// WithClock replaces the wall clock used for the last-resort anchor and sync timestamps.
func WithClock(now func() time.Time) SynchronizerOption {
	return func(s *SubscriptionSynchronizer) {
		s.now = now
	}
}

func NewSubscriptionSynchronizer(queries db.Querier, client processor.Client, log *zap.Logger, opts ...SynchronizerOption) *SubscriptionSynchronizer {
	s := &SubscriptionSynchronizer{
		queries:   queries,
		processor: client,
		logger:    logger.OrGlobal(log),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sync upserts sub. Calling it again with an unchanged subscription leaves the stored
// row as it was.
func (s *SubscriptionSynchronizer) Sync(ctx context.Context, sub *stripe.Subscription) (*db.Subscription, error) {
	if sub == nil || sub.ID == "" {
		return nil, apperrors.NewValidation("subscription.id", "missing subscription id")
	}
	if sub.Customer == nil || sub.Customer.ID == "" {
		return nil, apperrors.NewValidation("subscription.customer", "missing customer")
	}
	item := firstItem(sub)
	if item == nil {
		return nil, apperrors.NewValidation("items", "subscription has no line items")
	}

	email, err := s.resolveEmail(ctx, sub.Customer)
	if err != nil {
		return nil, fmt.Errorf("resolve customer for subscription %s: %w", sub.ID, err)
	}

	params := db.UpsertSubscriptionParams{
		SubscriptionID:    sub.ID,
		CustomerID:        sub.Customer.ID,
		CustomerEmail:     helpers.StringToNullableText(email),
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		CanceledAt:        helpers.UnixToNullableTimestamptz(sub.CanceledAt),
		EndedAt:           helpers.UnixToNullableTimestamptz(sub.EndedAt),
		TrialStart:        helpers.UnixToNullableTimestamptz(sub.TrialStart),
		TrialEnd:          helpers.UnixToNullableTimestamptz(sub.TrialEnd),
		BillingInterval:   defaultInterval,
		IntervalCount:     defaultIntervalCount,
	}

	periodStart, periodEnd := item.CurrentPeriodStart, item.CurrentPeriodEnd
	if price := item.Price; price != nil {
		params.PriceID = helpers.StringToNullableText(price.ID)
		params.Amount = price.UnitAmount
		params.Currency = string(price.Currency)
		if price.Recurring != nil {
			if price.Recurring.Interval != "" {
				params.BillingInterval = string(price.Recurring.Interval)
			}
			if price.Recurring.IntervalCount > 0 {
				params.IntervalCount = price.Recurring.IntervalCount
			}
		}
		if price.Product != nil && price.Product.ID != "" {
			params.ProductID = helpers.StringToNullableText(price.Product.ID)
			params.ProductName = helpers.StringToNullableText(s.resolveProductName(ctx, price.Product))
		}
	}

	existing, err := s.queries.GetSubscription(ctx, sub.ID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		existing = db.Subscription{}
	case err != nil:
		return nil, apperrors.FromDB("get subscription", "subscription", sub.ID, err)
	}
	found := err == nil

	// database timestamps keep microseconds
	now := s.now().Truncate(time.Microsecond)
	params.CurrentPeriodStart = helpers.UnixToNullableTimestamptz(periodStart)
	params.CurrentPeriodEnd = helpers.UnixToNullableTimestamptz(periodEnd)
	params.PeriodSource = period.SourceProcessor

	if !params.CurrentPeriodStart.Valid || !params.CurrentPeriodEnd.Valid {
		s.fillPeriod(&params, existing, found, now)
	}
	params.SyncedAt = helpers.TimeToNullableTimestamptz(now)

	row, err := s.queries.UpsertSubscription(ctx, params)
	if err != nil {
		return nil, apperrors.FromDB("upsert subscription", "subscription", sub.ID, err)
	}

	s.logger.Info("Subscription synchronized",
		zap.String("subscription_id", row.SubscriptionID),
		zap.String("status", row.Status),
		zap.String("period_source", row.PeriodSource),
		zap.Bool("cancel_at_period_end", row.CancelAtPeriodEnd),
	)
	return &row, nil
}

// fillPeriod reconstructs the missing boundaries. The anchor is the stored row's
// updated_at, then its created_at, then now. When this write changes processor fields
// the anchor is the write time rather than the pre-write updated_at, so the stored
// period matches the stored updated_at and an identical re-sync reproduces it.
func (s *SubscriptionSynchronizer) fillPeriod(params *db.UpsertSubscriptionParams, existing db.Subscription, found bool, now time.Time) {
	var updatedAt, createdAt *time.Time
	if found {
		if existing.SameProcessorState(params.AsSubscription()) {
			updatedAt = helpers.TimestamptzPtr(existing.UpdatedAt)
		} else {
			updatedAt = &now
		}
		createdAt = helpers.TimestamptzPtr(existing.CreatedAt)
	}

	anchor, source := period.SelectAnchor(updatedAt, createdAt, now)
	rec := period.Reconstruct(anchor, params.BillingInterval, params.IntervalCount)

	if !params.CurrentPeriodStart.Valid {
		params.CurrentPeriodStart = helpers.TimeToNullableTimestamptz(rec.Start)
	}
	if !params.CurrentPeriodEnd.Valid {
		params.CurrentPeriodEnd = helpers.TimeToNullableTimestamptz(rec.End)
	}
	params.PeriodSource = source.Source()

	// a re-sync that lands on the stored period keeps the stored provenance
	if found && samePeriod(existing, params) {
		params.PeriodSource = existing.PeriodSource
	}

	fields := []zap.Field{
		zap.String("subscription_id", params.SubscriptionID),
		zap.String("anchor_source", string(source)),
		zap.Time("anchor", anchor),
	}
	if source.Fabricated() {
		s.logger.Warn("Subscription period reconstructed from current time", fields...)
		return
	}
	s.logger.Info("Subscription period reconstructed", fields...)
}

func samePeriod(existing db.Subscription, params *db.UpsertSubscriptionParams) bool {
	return existing.HasPeriod() &&
		existing.CurrentPeriodStart.Time.Equal(params.CurrentPeriodStart.Time) &&
		existing.CurrentPeriodEnd.Time.Equal(params.CurrentPeriodEnd.Time)
}

func (s *SubscriptionSynchronizer) resolveEmail(ctx context.Context, customer *stripe.Customer) (string, error) {
	if customer.Email != "" {
		return customer.Email, nil
	}
	full, err := s.processor.GetCustomer(ctx, customer.ID)
	if err != nil {
		return "", err
	}
	return full.Email, nil
}

// resolveProductName never fails: a lookup error falls back to the product id.
func (s *SubscriptionSynchronizer) resolveProductName(ctx context.Context, product *stripe.Product) string {
	if product.Name != "" {
		return product.Name
	}
	full, err := s.processor.GetProduct(ctx, product.ID)
	if err != nil {
		s.logger.Warn("Product lookup failed, using product id as name",
			zap.String("product_id", product.ID),
			zap.String("error_class", apperrors.Classify(err)),
			zap.Error(err),
		)
		return product.ID
	}
	if full.Name == "" {
		return product.ID
	}
	return full.Name
}

func firstItem(sub *stripe.Subscription) *stripe.SubscriptionItem {
	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return nil
	}
	return sub.Items.Data[0]
}

