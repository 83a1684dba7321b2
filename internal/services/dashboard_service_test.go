package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/mocks"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
	"github.com/deepaksolulab007/payment-system-stripe/internal/testutil"
)

func newDashboard(q db.Querier) *services.DashboardService {
	subs := services.NewSubscriptionService(q, nil, services.NewSubscriptionSynchronizer(q, nil, nil), nil)
	return services.NewDashboardService(
		services.NewPaymentService(q, nil),
		services.NewRefundService(q, nil),
		services.NewPayoutService(q, nil),
		subs,
		nil,
	)
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemQuerier()

	payments := services.NewPaymentService(store, nil)
	_, err := payments.Create(ctx, validPayment())
	require.NoError(t, err)
	failed := validPayment()
	failed.PaymentIntentID = "pi_failed"
	failed.Status = "failed"
	_, err = payments.Create(ctx, failed)
	require.NoError(t, err)

	payouts := services.NewPayoutService(store, nil)
	_, _, err = payouts.RecordEvent(ctx, payoutEvent("evt_1", "payout.created", "pending"))
	require.NoError(t, err)
	_, _, err = payouts.RecordEvent(ctx, payoutEvent("evt_2", "payout.failed", "failed"))
	require.NoError(t, err)

	store.PutSubscription(withPeriod(storedSubscription("sub_1", "active")))

	stats, err := newDashboard(store).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Payments)
	assert.Equal(t, int64(1), stats.PaymentsFailed)
	assert.Equal(t, int64(0), stats.Refunds)
	assert.Equal(t, int64(1), stats.Payouts)
	assert.Equal(t, int64(1), stats.PayoutsFailed)
	assert.Equal(t, int64(1), stats.Subscriptions.Active)
}

func TestDashboardService_StatsPropagatesErrors(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	dbErr := errors.New("connection reset")

	mockQuerier.EXPECT().CountPayments(gomock.Any(), gomock.Any()).Return(int64(0), dbErr).AnyTimes()
	mockQuerier.EXPECT().CountRefunds(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	mockQuerier.EXPECT().CountPayouts(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	mockQuerier.EXPECT().CountSubscriptions(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()

	_, err := newDashboard(mockQuerier).Stats(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestWebhookEventService_List(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemQuerier()
	for _, e := range []db.UpsertWebhookEventParams{
		{EventID: "evt_1", EventType: "refund.updated", Outcome: "success"},
		{EventID: "evt_2", EventType: "payout.failed", Outcome: "error", ErrorClass: pgtype.Text{String: "transient", Valid: true}},
		{EventID: "evt_1", EventType: "refund.updated", Outcome: "success"},
	} {
		_, err := store.UpsertWebhookEvent(ctx, e)
		require.NoError(t, err)
	}

	svc := services.NewWebhookEventService(store, nil)

	all, err := svc.List(ctx, services.ListParams{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	errored, err := svc.List(ctx, services.ListParams{Status: "error"})
	require.NoError(t, err)
	require.Len(t, errored, 1)
	assert.Equal(t, "evt_2", errored[0].EventID)

	refunds, err := svc.List(ctx, services.ListParams{EventType: "refund.updated"})
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.Equal(t, int32(2), refunds[0].Attempts)
}
