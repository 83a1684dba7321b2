package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

// DashboardStats is the admin overview.
type DashboardStats struct {
	Payments       int64             `json:"payments"`
	PaymentsFailed int64             `json:"payments_failed"`
	Refunds        int64             `json:"refunds"`
	Payouts        int64             `json:"payouts"`
	PayoutsFailed  int64             `json:"payouts_failed"`
	Subscriptions  SubscriptionStats `json:"subscriptions"`
}

type DashboardService struct {
	payments      *PaymentService
	refunds       *RefundService
	payouts       *PayoutService
	subscriptions *SubscriptionService
	logger        *zap.Logger
}

func NewDashboardService(payments *PaymentService, refunds *RefundService, payouts *PayoutService, subscriptions *SubscriptionService, log *zap.Logger) *DashboardService {
	return &DashboardService{
		payments:      payments,
		refunds:       refunds,
		payouts:       payouts,
		subscriptions: subscriptions,
		logger:        logger.OrGlobal(log),
	}
}

// Stats runs every count concurrently and fails if any of them fails.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context, string) (int64, error), status string) {
		g.Go(func() error {
			n, err := fn(gctx, status)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(&stats.Payments, s.payments.Count, "")
	count(&stats.PaymentsFailed, s.payments.Count, "failed")
	count(&stats.Refunds, s.refunds.Count, "")
	count(&stats.Payouts, s.payouts.Count, "")
	count(&stats.PayoutsFailed, s.payouts.Count, "failed")
	g.Go(func() error {
		sub, err := s.subscriptions.Stats(gctx)
		if err != nil {
			return err
		}
		stats.Subscriptions = *sub
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
