package webhook

import "github.com/stripe/stripe-go/v82"

// Envelope carries the delivery metadata shared by every event kind.
type Envelope struct {
	ID       string
	Type     string
	Created  int64
	Account  string
	Livemode bool
}

func (e Envelope) envelope() Envelope { return e }

// Event is one of the kinds declared in this file. The set is closed.
type Event interface {
	envelope() Envelope
	isEvent()
}

// EnvelopeOf returns the delivery metadata of any event.
func EnvelopeOf(e Event) Envelope {
	return e.envelope()
}

type PaymentSucceeded struct {
	Envelope
	Intent *stripe.PaymentIntent
}

type PaymentFailed struct {
	Envelope
	Intent *stripe.PaymentIntent
}

type RefundChanged struct {
	Envelope
	Refund *stripe.Refund
}

// PayoutChanged covers every payout.* kind. Transition is the part after the prefix,
// e.g. "paid" or "failed".
type PayoutChanged struct {
	Envelope
	Payout     *stripe.Payout
	Transition string
}

type AccountUpdated struct {
	Envelope
	Account *stripe.Account
}

type SubscriptionChanged struct {
	Envelope
	Subscription *stripe.Subscription
}

// InvoiceSettled is invoice.paid or invoice.payment_failed. SubscriptionID is empty for
// invoices that do not belong to a subscription.
type InvoiceSettled struct {
	Envelope
	InvoiceID      string
	SubscriptionID string
	Paid           bool
}

type CheckoutCompleted struct {
	Envelope
	Session *stripe.CheckoutSession
}

// Ignored is any kind this service does not reconcile.
type Ignored struct {
	Envelope
}

func (PaymentSucceeded) isEvent()    {}
func (PaymentFailed) isEvent()       {}
func (RefundChanged) isEvent()       {}
func (PayoutChanged) isEvent()       {}
func (AccountUpdated) isEvent()      {}
func (SubscriptionChanged) isEvent() {}
func (InvoiceSettled) isEvent()      {}
func (CheckoutCompleted) isEvent()   {}
func (Ignored) isEvent()             {}
