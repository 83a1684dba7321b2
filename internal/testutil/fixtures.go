package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// TestWebhookSecret is the signing secret used by handler and verifier tests.
const TestWebhookSecret = "whsec_test_secret"

// EventPayload builds the JSON body of a webhook event wrapping object.
func EventPayload(t *testing.T, id, eventType string, object map[string]any) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"id":          id,
		"object":      "event",
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"created":     time.Now().Unix(),
		"livemode":    false,
		"data": map[string]any{
			"object": object,
		},
	})
	require.NoError(t, err)
	return body
}

// Sign returns the Stripe-Signature header for payload under secret.
func Sign(t *testing.T, payload []byte, secret string) string {
	t.Helper()

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

// SubscriptionOptions tweak the fixture built by StripeSubscription.
type SubscriptionOptions struct {
	Status             stripe.SubscriptionStatus
	Email              string
	ProductID          string
	Interval           string
	IntervalCount      int64
	PeriodStart        int64
	PeriodEnd          int64
	CancelAtPeriodEnd  bool
	Metadata           map[string]string
	CustomerUnexpanded bool
}

// StripeSubscription builds a processor subscription with one priced item.
func StripeSubscription(id, customerID string, opts SubscriptionOptions) *stripe.Subscription {
	if opts.Status == "" {
		opts.Status = stripe.SubscriptionStatusActive
	}
	if opts.ProductID == "" {
		opts.ProductID = "prod_basic"
	}
	if opts.Interval == "" {
		opts.Interval = "month"
	}
	if opts.IntervalCount == 0 {
		opts.IntervalCount = 1
	}

	customer := &stripe.Customer{ID: customerID}
	if !opts.CustomerUnexpanded {
		customer.Email = opts.Email
	}

	return &stripe.Subscription{
		ID:                id,
		Customer:          customer,
		Status:            opts.Status,
		CancelAtPeriodEnd: opts.CancelAtPeriodEnd,
		Metadata:          opts.Metadata,
		Items: &stripe.SubscriptionItemList{
			Data: []*stripe.SubscriptionItem{
				{
					ID:                 "si_" + id,
					CurrentPeriodStart: opts.PeriodStart,
					CurrentPeriodEnd:   opts.PeriodEnd,
					Price: &stripe.Price{
						ID:         "price_" + opts.ProductID,
						Currency:   stripe.CurrencyUSD,
						UnitAmount: 1500,
						Product:    &stripe.Product{ID: opts.ProductID},
						Recurring: &stripe.PriceRecurring{
							Interval:      stripe.PriceRecurringInterval(opts.Interval),
							IntervalCount: opts.IntervalCount,
						},
					},
				},
			},
		},
	}
}

// SubscriptionObject is the JSON form of a subscription as it appears in event payloads.
func SubscriptionObject(id, customerID string, cancelAtPeriodEnd bool) map[string]any {
	return map[string]any{
		"id":                   id,
		"object":               "subscription",
		"customer":             customerID,
		"status":               "active",
		"cancel_at_period_end": cancelAtPeriodEnd,
		"items": map[string]any{
			"object": "list",
			"data": []any{
				map[string]any{
					"id":                   "si_" + id,
					"object":               "subscription_item",
					"current_period_start": 1704067200,
					"current_period_end":   1706745600,
					"price": map[string]any{
						"id":          "price_basic",
						"object":      "price",
						"currency":    "usd",
						"unit_amount": 1500,
						"product":     "prod_basic",
						"recurring": map[string]any{
							"interval":       "month",
							"interval_count": 1,
						},
					},
				},
			},
		},
	}
}

// RefundObject is the JSON form of a refund.
func RefundObject(id, paymentIntentID, status string) map[string]any {
	return map[string]any{
		"id":             id,
		"object":         "refund",
		"amount":         500,
		"currency":       "usd",
		"status":         status,
		"reason":         "requested_by_customer",
		"payment_intent": paymentIntentID,
	}
}

// PaymentIntentObject is the JSON form of a payment intent.
func PaymentIntentObject(id, latestCharge string) map[string]any {
	obj := map[string]any{
		"id":       id,
		"object":   "payment_intent",
		"amount":   2000,
		"currency": "usd",
		"status":   "succeeded",
	}
	if latestCharge != "" {
		obj["latest_charge"] = latestCharge
	}
	return obj
}

// StripeCharge builds the charge returned for a successful payment intent.
func StripeCharge(id, paymentIntentID string) *stripe.Charge {
	return &stripe.Charge{
		ID:            id,
		Amount:        2000,
		Currency:      stripe.CurrencyUSD,
		Status:        stripe.ChargeStatusSucceeded,
		ReceiptEmail:  "buyer@example.com",
		Description:   "Order 42",
		Customer:      &stripe.Customer{ID: "cus_buyer"},
		PaymentIntent: &stripe.PaymentIntent{ID: paymentIntentID},
		PaymentMethodDetails: &stripe.ChargePaymentMethodDetails{
			Type: "card",
		},
	}
}
