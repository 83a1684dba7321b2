package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/client/processor"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/period"
)

const DefaultResyncConcurrency = 4

// SubscriptionView is a stored subscription with guaranteed period boundaries.
type SubscriptionView struct {
	db.Subscription
	PeriodStart         time.Time `json:"period_start"`
	PeriodEnd           time.Time `json:"period_end"`
	PeriodReconstructed bool      `json:"period_reconstructed"`
}

// SubscriptionStats groups subscription counts by status.
type SubscriptionStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Canceled int64 `json:"canceled"`
	Trialing int64 `json:"trialing"`
	PastDue  int64 `json:"past_due"`
}

// SubscriptionService is the read side of subscriptions. Writes go through its
// synchronizer.
type SubscriptionService struct {
	queries           db.Querier
	processor         processor.Client
	synchronizer      *SubscriptionSynchronizer
	logger            *zap.Logger
	resyncConcurrency int
	now               func() time.Time
}

type SubscriptionServiceOption func(*SubscriptionService)

// WithResyncConcurrency bounds the number of concurrent processor fetches on the read path.
func WithResyncConcurrency(n int) SubscriptionServiceOption {
	return func(s *SubscriptionService) {
		if n > 0 {
			s.resyncConcurrency = n
		}
	}
}

// WithServiceClock sets the clock used for last-resort reconstruction on the read path.
func WithServiceClock(now func() time.Time) SubscriptionServiceOption {
	return func(s *SubscriptionService) {
		s.now = now
	}
}

func NewSubscriptionService(queries db.Querier, client processor.Client, synchronizer *SubscriptionSynchronizer, log *zap.Logger, opts ...SubscriptionServiceOption) *SubscriptionService {
	s := &SubscriptionService{
		queries:           queries,
		processor:         client,
		synchronizer:      synchronizer,
		logger:            logger.OrGlobal(log),
		resyncConcurrency: DefaultResyncConcurrency,
		now:               func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synchronizer returns the writer used by this service.
func (s *SubscriptionService) Synchronizer() *SubscriptionSynchronizer {
	return s.synchronizer
}

// Get returns one subscription view without contacting the processor.
func (s *SubscriptionService) Get(ctx context.Context, subscriptionID string) (*SubscriptionView, error) {
	sub, err := s.queries.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, apperrors.FromDB("get subscription", "subscription", subscriptionID, err)
	}
	view := s.view(sub)
	return &view, nil
}

// List returns subscriptions newest first. Rows missing a period boundary are re-synced
// from the processor before being returned.
func (s *SubscriptionService) List(ctx context.Context, params ListParams) ([]SubscriptionView, error) {
	params = params.normalized()
	query := db.ListSubscriptionsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
		Status: statusFilter(params.Status),
		Email:  helpers.StringToNullableText(params.Email),
	}

	rows, err := s.queries.ListSubscriptions(ctx, query)
	if err != nil {
		return nil, apperrors.FromDB("list subscriptions", "subscription", "", err)
	}

	if s.resyncIncomplete(ctx, rows) > 0 {
		rows, err = s.queries.ListSubscriptions(ctx, query)
		if err != nil {
			return nil, apperrors.FromDB("list subscriptions", "subscription", "", err)
		}
	}

	views := make([]SubscriptionView, 0, len(rows))
	for _, row := range rows {
		views = append(views, s.view(row))
	}
	return views, nil
}

// ListByEmail is List restricted to one customer email.
func (s *SubscriptionService) ListByEmail(ctx context.Context, email string, params ListParams) ([]SubscriptionView, error) {
	if email == "" {
		return nil, apperrors.NewValidation("email", "email is required")
	}
	params.Email = email
	return s.List(ctx, params)
}

// Count counts subscriptions, optionally restricted to one status.
func (s *SubscriptionService) Count(ctx context.Context, status string) (int64, error) {
	n, err := s.queries.CountSubscriptions(ctx, statusFilter(status))
	if err != nil {
		return 0, apperrors.FromDB("count subscriptions", "subscription", "", err)
	}
	return n, nil
}

// Stats counts subscriptions per tracked status.
func (s *SubscriptionService) Stats(ctx context.Context) (*SubscriptionStats, error) {
	var stats SubscriptionStats
	g, gctx := errgroup.WithContext(ctx)
	for status, dst := range map[string]*int64{
		"":         &stats.Total,
		"active":   &stats.Active,
		"canceled": &stats.Canceled,
		"trialing": &stats.Trialing,
		"past_due": &stats.PastDue,
	} {
		g.Go(func() error {
			n, err := s.Count(gctx, status)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Resync pulls one subscription from the processor and synchronizes it.
func (s *SubscriptionService) Resync(ctx context.Context, subscriptionID string) (*SubscriptionView, error) {
	if subscriptionID == "" {
		return nil, apperrors.NewValidation("subscription_id", "subscription id is required")
	}
	remote, err := s.processor.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("fetch subscription %s: %w", subscriptionID, err)
	}
	row, err := s.synchronizer.Sync(ctx, remote)
	if err != nil {
		return nil, err
	}
	view := s.view(*row)
	return &view, nil
}

// ResyncCustomer looks the customer up by email and synchronizes all of their
// subscriptions.
func (s *SubscriptionService) ResyncCustomer(ctx context.Context, email string) ([]SubscriptionView, error) {
	if err := validateInput(struct {
		Email string `validate:"required,email"`
	}{email}); err != nil {
		return nil, err
	}

	customer, err := s.processor.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find customer %s: %w", email, err)
	}
	remote, err := s.processor.ListCustomerSubscriptions(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions for customer %s: %w", customer.ID, err)
	}

	views := make([]SubscriptionView, 0, len(remote))
	for _, sub := range remote {
		if sub.Customer != nil && sub.Customer.Email == "" {
			sub.Customer.Email = customer.Email
		}
		row, err := s.synchronizer.Sync(ctx, sub)
		if err != nil {
			return nil, err
		}
		views = append(views, s.view(*row))
	}

	s.logger.Info("Customer subscriptions resynchronized",
		zap.String("customer_id", customer.ID),
		zap.Int("count", len(views)),
	)
	return views, nil
}

// resyncIncomplete re-fetches rows missing a period boundary. Failures are logged and
// dropped so the read still succeeds. It returns the number of rows attempted.
func (s *SubscriptionService) resyncIncomplete(ctx context.Context, rows []db.Subscription) int {
	var g errgroup.Group
	g.SetLimit(s.resyncConcurrency)

	attempted := 0
	for _, row := range rows {
		if row.HasPeriod() {
			continue
		}
		attempted++
		g.Go(func() error {
			if _, err := s.Resync(ctx, row.SubscriptionID); err != nil {
				s.logger.Warn("Read-path resync failed",
					zap.String("subscription_id", row.SubscriptionID),
					zap.String("error_class", apperrors.Classify(err)),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = g.Wait()
	return attempted
}

// view fills any boundary still missing after resync so callers always get a period.
func (s *SubscriptionService) view(sub db.Subscription) SubscriptionView {
	v := SubscriptionView{Subscription: sub}
	start := helpers.TimestamptzPtr(sub.CurrentPeriodStart)
	end := helpers.TimestamptzPtr(sub.CurrentPeriodEnd)
	if start != nil && end != nil {
		v.PeriodStart, v.PeriodEnd = *start, *end
		return v
	}

	anchor, source := period.SelectAnchor(
		helpers.TimestamptzPtr(sub.UpdatedAt),
		helpers.TimestamptzPtr(sub.CreatedAt),
		s.now(),
	)
	p := period.Fill(start, end, helpers.TimestamptzPtr(sub.EndedAt), anchor, sub.BillingInterval, sub.IntervalCount)
	v.PeriodStart, v.PeriodEnd = p.Start, p.End
	v.PeriodReconstructed = true

	if source.Fabricated() {
		s.logger.Warn("Subscription view period reconstructed from current time",
			zap.String("subscription_id", sub.SubscriptionID))
	}
	return v
}
