package webhook_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/testutil"
	"github.com/deepaksolulab007/payment-system-stripe/internal/webhook"
)

func stripeEvent(t *testing.T, id, eventType string, object map[string]any) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	return stripe.Event{
		ID:      id,
		Type:    stripe.EventType(eventType),
		Account: "acct_1",
		Data:    &stripe.EventData{Raw: raw},
	}
}

func TestDecode_Routing(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		object    map[string]any
		check     func(t *testing.T, e webhook.Event)
	}{
		{
			name:      "payment succeeded",
			eventType: "payment_intent.succeeded",
			object:    testutil.PaymentIntentObject("pi_1", "ch_1"),
			check: func(t *testing.T, e webhook.Event) {
				ps, ok := e.(webhook.PaymentSucceeded)
				require.True(t, ok)
				assert.Equal(t, "ch_1", ps.Intent.LatestCharge.ID)
			},
		},
		{
			name:      "payment failed",
			eventType: "payment_intent.payment_failed",
			object:    testutil.PaymentIntentObject("pi_1", ""),
			check: func(t *testing.T, e webhook.Event) {
				assert.IsType(t, webhook.PaymentFailed{}, e)
			},
		},
		{
			name:      "any refund kind",
			eventType: "refund.updated",
			object:    testutil.RefundObject("re_1", "pi_1", "succeeded"),
			check: func(t *testing.T, e webhook.Event) {
				rc, ok := e.(webhook.RefundChanged)
				require.True(t, ok)
				assert.Equal(t, "pi_1", rc.Refund.PaymentIntent.ID)
			},
		},
		{
			name:      "payout transition",
			eventType: "payout.failed",
			object:    map[string]any{"id": "po_1", "object": "payout", "amount": 100, "currency": "usd", "status": "failed"},
			check: func(t *testing.T, e webhook.Event) {
				pc, ok := e.(webhook.PayoutChanged)
				require.True(t, ok)
				assert.Equal(t, "failed", pc.Transition)
				assert.Equal(t, "acct_1", pc.Account)
			},
		},
		{
			name:      "account updated",
			eventType: "account.updated",
			object:    map[string]any{"id": "acct_1", "object": "account"},
			check: func(t *testing.T, e webhook.Event) {
				assert.IsType(t, webhook.AccountUpdated{}, e)
			},
		},
		{
			name:      "subscription paused",
			eventType: "customer.subscription.paused",
			object:    testutil.SubscriptionObject("sub_1", "cus_1", false),
			check: func(t *testing.T, e webhook.Event) {
				sc, ok := e.(webhook.SubscriptionChanged)
				require.True(t, ok)
				assert.Equal(t, "cus_1", sc.Subscription.Customer.ID)
			},
		},
		{
			name:      "subscription trial ending is not a state change",
			eventType: "customer.subscription.trial_will_end",
			object:    testutil.SubscriptionObject("sub_1", "cus_1", false),
			check: func(t *testing.T, e webhook.Event) {
				assert.IsType(t, webhook.Ignored{}, e)
			},
		},
		{
			name:      "invoice paid with nested subscription",
			eventType: "invoice.paid",
			object: map[string]any{
				"id": "in_1", "object": "invoice",
				"parent": map[string]any{"subscription_details": map[string]any{"subscription": "sub_nested"}},
			},
			check: func(t *testing.T, e webhook.Event) {
				inv, ok := e.(webhook.InvoiceSettled)
				require.True(t, ok)
				assert.Equal(t, "sub_nested", inv.SubscriptionID)
				assert.True(t, inv.Paid)
			},
		},
		{
			name:      "invoice failed with top level subscription",
			eventType: "invoice.payment_failed",
			object:    map[string]any{"id": "in_1", "object": "invoice", "subscription": "sub_legacy"},
			check: func(t *testing.T, e webhook.Event) {
				inv, ok := e.(webhook.InvoiceSettled)
				require.True(t, ok)
				assert.Equal(t, "sub_legacy", inv.SubscriptionID)
				assert.False(t, inv.Paid)
			},
		},
		{
			name:      "checkout completed",
			eventType: "checkout.session.completed",
			object:    map[string]any{"id": "cs_1", "object": "checkout.session", "mode": "subscription", "subscription": "sub_1"},
			check: func(t *testing.T, e webhook.Event) {
				cc, ok := e.(webhook.CheckoutCompleted)
				require.True(t, ok)
				assert.Equal(t, "sub_1", cc.Session.Subscription.ID)
			},
		},
		{
			name:      "unknown kind",
			eventType: "customer.created",
			object:    map[string]any{"id": "cus_1", "object": "customer"},
			check: func(t *testing.T, e webhook.Event) {
				assert.IsType(t, webhook.Ignored{}, e)
				assert.Equal(t, "customer.created", webhook.EnvelopeOf(e).Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := webhook.Decode(stripeEvent(t, "evt_1", tt.eventType, tt.object))
			require.NoError(t, err)
			assert.Equal(t, "evt_1", webhook.EnvelopeOf(e).ID)
			tt.check(t, e)
		})
	}
}

func TestDecode_MalformedPayload(t *testing.T) {
	_, err := webhook.Decode(stripeEvent(t, "evt_1", "refund.created", map[string]any{"object": "refund"}))
	assert.True(t, apperrors.IsValidation(err))

	_, err = webhook.Decode(stripe.Event{ID: "evt_2", Type: "payout.paid", Data: &stripe.EventData{Raw: []byte(`{"id": 7}`)}})
	assert.True(t, apperrors.IsValidation(err))

	_, err = webhook.Decode(stripe.Event{ID: "evt_3", Type: "payout.paid"})
	assert.True(t, apperrors.IsValidation(err))
}
