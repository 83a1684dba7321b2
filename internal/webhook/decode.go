package webhook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
)

const (
	refundPrefix       = "refund."
	payoutPrefix       = "payout."
	subscriptionPrefix = "customer.subscription."
)

var subscriptionTransitions = map[string]bool{
	"created": true,
	"updated": true,
	"deleted": true,
	"paused":  true,
	"resumed": true,
}

// invoiceObject reads only the fields used to find the owning subscription. Newer API
// versions nest it under parent.subscription_details; older ones put it at the top.
type invoiceObject struct {
	ID           string `json:"id"`
	Subscription any    `json:"subscription"`
	Parent       *struct {
		SubscriptionDetails *struct {
			Subscription any `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
}

func (o invoiceObject) subscriptionID() string {
	if o.Parent != nil && o.Parent.SubscriptionDetails != nil {
		if id := expandableID(o.Parent.SubscriptionDetails.Subscription); id != "" {
			return id
		}
	}
	return expandableID(o.Subscription)
}

// expandableID reads an id that may arrive as a string or as an expanded object.
func expandableID(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		id, _ := t["id"].(string)
		return id
	default:
		return ""
	}
}

// Decode maps a verified event onto its kind. A payload that cannot be read, or whose
// object has no id, yields a ValidationError; the caller still acknowledges delivery.
func Decode(event stripe.Event) (Event, error) {
	env := Envelope{
		ID:       event.ID,
		Type:     string(event.Type),
		Created:  event.Created,
		Account:  event.Account,
		Livemode: event.Livemode,
	}
	kind := env.Type

	switch {
	case kind == string(stripe.EventTypePaymentIntentSucceeded):
		var pi stripe.PaymentIntent
		if err := decodeObject(event, &pi, func() string { return pi.ID }); err != nil {
			return nil, err
		}
		return PaymentSucceeded{Envelope: env, Intent: &pi}, nil

	case kind == string(stripe.EventTypePaymentIntentPaymentFailed):
		var pi stripe.PaymentIntent
		if err := decodeObject(event, &pi, func() string { return pi.ID }); err != nil {
			return nil, err
		}
		return PaymentFailed{Envelope: env, Intent: &pi}, nil

	case strings.HasPrefix(kind, refundPrefix):
		var refund stripe.Refund
		if err := decodeObject(event, &refund, func() string { return refund.ID }); err != nil {
			return nil, err
		}
		return RefundChanged{Envelope: env, Refund: &refund}, nil

	case strings.HasPrefix(kind, payoutPrefix):
		var payout stripe.Payout
		if err := decodeObject(event, &payout, func() string { return payout.ID }); err != nil {
			return nil, err
		}
		return PayoutChanged{Envelope: env, Payout: &payout, Transition: strings.TrimPrefix(kind, payoutPrefix)}, nil

	case kind == string(stripe.EventTypeAccountUpdated):
		var acct stripe.Account
		if err := decodeObject(event, &acct, func() string { return acct.ID }); err != nil {
			return nil, err
		}
		return AccountUpdated{Envelope: env, Account: &acct}, nil

	case strings.HasPrefix(kind, subscriptionPrefix) && subscriptionTransitions[strings.TrimPrefix(kind, subscriptionPrefix)]:
		var sub stripe.Subscription
		if err := decodeObject(event, &sub, func() string { return sub.ID }); err != nil {
			return nil, err
		}
		return SubscriptionChanged{Envelope: env, Subscription: &sub}, nil

	case kind == string(stripe.EventTypeInvoicePaid), kind == string(stripe.EventTypeInvoicePaymentFailed):
		var inv invoiceObject
		if err := decodeObject(event, &inv, func() string { return inv.ID }); err != nil {
			return nil, err
		}
		return InvoiceSettled{
			Envelope:       env,
			InvoiceID:      inv.ID,
			SubscriptionID: inv.subscriptionID(),
			Paid:           kind == string(stripe.EventTypeInvoicePaid),
		}, nil

	case kind == string(stripe.EventTypeCheckoutSessionCompleted):
		var session stripe.CheckoutSession
		if err := decodeObject(event, &session, func() string { return session.ID }); err != nil {
			return nil, err
		}
		return CheckoutCompleted{Envelope: env, Session: &session}, nil

	default:
		return Ignored{Envelope: env}, nil
	}
}

func decodeObject(event stripe.Event, dst any, id func() string) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return apperrors.NewValidation("data.object", fmt.Sprintf("%s: empty payload", event.Type))
	}
	if err := json.Unmarshal(event.Data.Raw, dst); err != nil {
		return apperrors.NewValidation("data.object", fmt.Sprintf("%s: %v", event.Type, err))
	}
	if id() == "" {
		return apperrors.NewValidation("data.object.id", fmt.Sprintf("%s: object has no id", event.Type))
	}
	return nil
}
