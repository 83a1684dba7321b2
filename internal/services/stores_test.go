package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/mocks"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
	"github.com/deepaksolulab007/payment-system-stripe/internal/testutil"
)

func init() {
	logger.InitLogger("test")
}

func validPayment() services.CreatePaymentInput {
	return services.CreatePaymentInput{
		PaymentIntentID:   "pi_1",
		ChargeID:          "ch_1",
		Amount:            2000,
		Currency:          "usd",
		Status:            "succeeded",
		PaymentMethodType: "card",
		ReceiptEmail:      "buyer@example.com",
	}
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*services.CreatePaymentInput)
		wantField string
	}{
		{name: "valid input"},
		{name: "missing payment intent", mutate: func(in *services.CreatePaymentInput) { in.PaymentIntentID = "" }, wantField: "payment_intent_id"},
		{name: "missing charge", mutate: func(in *services.CreatePaymentInput) { in.ChargeID = "" }, wantField: "charge_id"},
		{name: "negative amount", mutate: func(in *services.CreatePaymentInput) { in.Amount = -1 }, wantField: "amount"},
		{name: "bad receipt email", mutate: func(in *services.CreatePaymentInput) { in.ReceiptEmail = "nope" }, wantField: "receipt_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewPaymentService(testutil.NewMemQuerier(), nil)
			in := validPayment()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			payment, err := svc.Create(ctx, in)
			if tt.wantField != "" {
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "pi_1", payment.PaymentIntentID)
			assert.Equal(t, "card", payment.PaymentMethodType.String)
		})
	}
}

func TestPaymentService_CreateNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemQuerier()
	svc := services.NewPaymentService(store, nil)

	_, err := svc.Create(ctx, validPayment())
	require.NoError(t, err)

	second := validPayment()
	second.ChargeID = "ch_2"
	second.Amount = 1
	_, err = svc.Create(ctx, second)
	require.ErrorIs(t, err, apperrors.ErrDuplicateRecord)
	assert.Equal(t, "duplicate", apperrors.Classify(err))

	stored, err := svc.GetByPaymentIntentID(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "ch_1", stored.ChargeID)
	assert.Equal(t, int64(2000), stored.Amount)
}

func TestPaymentService_ListAndCount(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPaymentService(testutil.NewMemQuerier(), nil)

	for i := 0; i < 5; i++ {
		in := validPayment()
		in.PaymentIntentID = fmt.Sprintf("pi_%d", i)
		if i%2 == 1 {
			in.Status = "failed"
		}
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	recent, err := svc.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "pi_4", recent[0].PaymentIntentID)
	assert.Equal(t, "pi_3", recent[1].PaymentIntentID)

	failed, err := svc.List(ctx, services.ListParams{Status: "failed"})
	require.NoError(t, err)
	assert.Len(t, failed, 2)

	total, err := svc.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestPaymentService_GetMissing(t *testing.T) {
	svc := services.NewPaymentService(testutil.NewMemQuerier(), nil)
	_, err := svc.GetByPaymentIntentID(context.Background(), "pi_missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPaymentService_DatabaseErrorIsWrapped(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	svc := services.NewPaymentService(mockQuerier, nil)

	dbErr := errors.New("boom")
	mockQuerier.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(db.Payment{}, dbErr)

	_, err := svc.Create(context.Background(), validPayment())
	require.ErrorIs(t, err, dbErr)
	assert.Equal(t, "internal", apperrors.Classify(err))
}

func TestRefundService_UpsertMovesStatus(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRefundService(testutil.NewMemQuerier(), nil)

	in := services.UpsertRefundInput{RefundID: "re_1", PaymentIntentID: "pi_1", Amount: 500, Currency: "usd", Status: "pending"}
	first, err := svc.Upsert(ctx, in)
	require.NoError(t, err)

	in.Status = "succeeded"
	second, err := svc.Upsert(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "succeeded", second.Status)

	n, err := svc.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRefundService_ConcurrentRefundsForSamePayment(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRefundService(testutil.NewMemQuerier(), nil)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, id := range []string{"re_a", "re_b"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Upsert(ctx, services.UpsertRefundInput{
				RefundID: id, PaymentIntentID: "pi_shared", Amount: 100, Currency: "usd", Status: "succeeded",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	refunds, err := svc.ListByPaymentIntent(ctx, "pi_shared")
	require.NoError(t, err)
	assert.Len(t, refunds, 2)
}

func TestRefundService_Validation(t *testing.T) {
	svc := services.NewRefundService(testutil.NewMemQuerier(), nil)
	_, err := svc.Upsert(context.Background(), services.UpsertRefundInput{PaymentIntentID: "pi_1", Currency: "usd", Status: "pending"})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "refund_id", verr.Field)
}

func TestRefundService_ChargeOnlyRefund(t *testing.T) {
	ctx := context.Background()
	svc := services.NewRefundService(testutil.NewMemQuerier(), nil)

	refund, err := svc.Upsert(ctx, services.UpsertRefundInput{RefundID: "re_charge", Amount: 300, Currency: "usd", Status: "succeeded"})
	require.NoError(t, err)
	assert.False(t, refund.PaymentIntentID.Valid)

	stored, err := svc.GetByRefundID(ctx, "re_charge")
	require.NoError(t, err)
	assert.Equal(t, int64(300), stored.Amount)

	byIntent, err := svc.ListByPaymentIntent(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, byIntent)
}

func payoutEvent(eventID, eventType, status string) services.RecordPayoutEventInput {
	return services.RecordPayoutEventInput{
		EventID:     eventID,
		PayoutID:    "po_1",
		AccountID:   "acct_1",
		Amount:      10000,
		Currency:    "usd",
		Status:      status,
		EventType:   eventType,
		ArrivalDate: 1704067200,
	}
}

func TestPayoutService_HistoryIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	svc := services.NewPayoutService(testutil.NewMemQuerier(), nil)

	_, created, err := svc.RecordEvent(ctx, payoutEvent("evt_1", "payout.created", "pending"))
	require.NoError(t, err)
	assert.True(t, created)

	failed := payoutEvent("evt_2", "payout.failed", "failed")
	failed.FailureCode = "account_closed"
	_, created, err = svc.RecordEvent(ctx, failed)
	require.NoError(t, err)
	assert.True(t, created)

	history, err := svc.History(ctx, "po_1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "pending", history[0].Status)
	assert.Equal(t, "failed", history[1].Status)
	assert.Equal(t, "account_closed", history[1].FailureCode.String)

	latest, err := svc.Latest(ctx, "po_1")
	require.NoError(t, err)
	assert.Equal(t, "evt_2", latest.EventID)
}

func TestPayoutService_RedeliveryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemQuerier()
	svc := services.NewPayoutService(store, nil)

	first, created, err := svc.RecordEvent(ctx, payoutEvent("evt_1", "payout.paid", "paid"))
	require.NoError(t, err)
	require.True(t, created)

	again, created, err := svc.RecordEvent(ctx, payoutEvent("evt_1", "payout.paid", "paid"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	history, err := svc.History(ctx, "po_1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPayoutService_LatestMissing(t *testing.T) {
	svc := services.NewPayoutService(testutil.NewMemQuerier(), nil)
	_, err := svc.Latest(context.Background(), "po_missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAccountService_IsVerifiedDerivation(t *testing.T) {
	tests := []struct {
		name             string
		detailsSubmitted bool
		payoutsEnabled   bool
		want             bool
	}{
		{"both set", true, true, true},
		{"details only", true, false, false},
		{"payouts only", false, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewAccountService(testutil.NewMemQuerier(), nil, nil)
			acct, err := svc.Upsert(context.Background(), services.UpsertAccountInput{
				AccountID:        "acct_1",
				DetailsSubmitted: tt.detailsSubmitted,
				PayoutsEnabled:   tt.payoutsEnabled,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, acct.IsVerified)
		})
	}
}

func TestAccountService_RefreshFromProcessor(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockProcessorClientForTest(t)
	svc := services.NewAccountService(testutil.NewMemQuerier(), client, nil)

	client.EXPECT().GetAccount(gomock.Any(), "acct_1").Return(&stripe.Account{
		ID:               "acct_1",
		Email:            "owner@example.com",
		DetailsSubmitted: true,
		PayoutsEnabled:   true,
		ChargesEnabled:   true,
	}, nil)

	acct, err := svc.RefreshFromProcessor(ctx, "acct_1")
	require.NoError(t, err)
	assert.True(t, acct.IsVerified)

	stored, err := svc.Get(ctx, "acct_1")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", stored.Email.String)

	client.EXPECT().GetAccount(gomock.Any(), "acct_gone").Return(nil, apperrors.NewNotFound("account", "acct_gone", nil))
	_, err = svc.RefreshFromProcessor(ctx, "acct_gone")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTransfersActive(t *testing.T) {
	assert.False(t, services.TransfersActive(nil))
	assert.False(t, services.TransfersActive(&stripe.Account{}))
	assert.True(t, services.TransfersActive(&stripe.Account{
		Capabilities: &stripe.AccountCapabilities{Transfers: stripe.AccountCapabilityStatusActive},
	}))
	assert.False(t, services.TransfersActive(&stripe.Account{
		Capabilities: &stripe.AccountCapabilities{Transfers: stripe.AccountCapabilityStatusPending},
	}))
}
