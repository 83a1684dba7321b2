package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/client/processor"
	"github.com/deepaksolulab007/payment-system-stripe/internal/eventlog"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

// Branch names, as they appear in logs and the event log.
const (
	BranchPayment      = "payment"
	BranchPaymentFail  = "payment_failed"
	BranchRefund       = "refund"
	BranchPayout       = "payout"
	BranchAccount      = "account"
	BranchSubscription = "subscription"
	BranchInvoice      = "invoice"
	BranchCheckout     = "checkout"
	BranchIgnored      = "ignored"
	BranchDecode       = "decode"
)

const oneTimeMetadataKey = "oneTime"

// DispatcherDeps are the collaborators every branch may use.
type DispatcherDeps struct {
	Payments     *services.PaymentService
	Refunds      *services.RefundService
	Payouts      *services.PayoutService
	Accounts     *services.AccountService
	Synchronizer *services.SubscriptionSynchronizer
	Processor    processor.Client
	Recorder     eventlog.Recorder
	Logger       *zap.Logger
}

// Dispatcher routes decoded events to their branch. A failing branch is recorded and
// never escapes Dispatch.
type Dispatcher struct {
	deps     DispatcherDeps
	recorder eventlog.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewDispatcher(deps DispatcherDeps) *Dispatcher {
	recorder := deps.Recorder
	if recorder == nil {
		recorder = eventlog.Nop{}
	}
	return &Dispatcher{
		deps:     deps,
		recorder: recorder,
		logger:   logger.OrGlobal(deps.Logger),
		now:      time.Now,
	}
}

// BranchResult is the outcome of one branch for one event.
type BranchResult struct {
	Branch   string
	Outcome  eventlog.Outcome
	Err      error
	Duration time.Duration
}

// Report summarizes a dispatch.
type Report struct {
	EventID   string
	EventType string
	Branches  []BranchResult
}

// Failed reports whether any branch ended in error.
func (r Report) Failed() bool {
	for _, b := range r.Branches {
		if b.Outcome == eventlog.OutcomeError {
			return true
		}
	}
	return false
}

// skip is returned by a branch that intentionally did nothing.
type skip string

func (s skip) Error() string { return string(s) }

type branchFunc func(ctx context.Context) error

// DispatchRaw decodes a verified event and dispatches it. A decode failure is recorded
// as a failed branch.
func (d *Dispatcher) DispatchRaw(ctx context.Context, event stripe.Event) Report {
	decoded, err := Decode(event)
	if err != nil {
		env := Envelope{ID: event.ID, Type: string(event.Type)}
		report := Report{EventID: env.ID, EventType: env.Type}
		report.Branches = append(report.Branches, d.runBranch(ctx, env, BranchDecode, func(context.Context) error { return err }))
		return report
	}
	return d.Dispatch(ctx, decoded)
}

// Dispatch runs the branch for event's kind.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) Report {
	env := EnvelopeOf(event)
	report := Report{EventID: env.ID, EventType: env.Type}

	var name string
	var fn branchFunc
	switch e := event.(type) {
	case PaymentSucceeded:
		name, fn = BranchPayment, func(ctx context.Context) error { return d.paymentSucceeded(ctx, e) }
	case PaymentFailed:
		name, fn = BranchPaymentFail, func(ctx context.Context) error { return d.paymentFailed(e) }
	case RefundChanged:
		name, fn = BranchRefund, func(ctx context.Context) error { return d.refundChanged(ctx, e) }
	case PayoutChanged:
		name, fn = BranchPayout, func(ctx context.Context) error { return d.payoutChanged(ctx, e) }
	case AccountUpdated:
		name, fn = BranchAccount, func(ctx context.Context) error { return d.accountUpdated(ctx, e) }
	case SubscriptionChanged:
		name, fn = BranchSubscription, func(ctx context.Context) error { return d.subscriptionChanged(ctx, e) }
	case InvoiceSettled:
		name, fn = BranchInvoice, func(ctx context.Context) error { return d.invoiceSettled(ctx, e) }
	case CheckoutCompleted:
		name, fn = BranchCheckout, func(ctx context.Context) error { return d.checkoutCompleted(ctx, e) }
	case Ignored:
		name, fn = BranchIgnored, func(context.Context) error { return skip("event kind not handled") }
	default:
		name, fn = BranchIgnored, func(context.Context) error { return skip(fmt.Sprintf("unknown event %T", event)) }
	}

	report.Branches = append(report.Branches, d.runBranch(ctx, env, name, fn))
	return report
}

// runBranch executes fn with panic recovery, then records the outcome.
func (d *Dispatcher) runBranch(ctx context.Context, env Envelope, name string, fn branchFunc) (result BranchResult) {
	start := d.now()
	result.Branch = name

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("branch %s panicked: %v", name, r)
		}
		result.Duration = d.now().Sub(start)

		var skipped skip
		switch {
		case result.Err == nil:
			result.Outcome = eventlog.OutcomeSuccess
		case errors.As(result.Err, &skipped):
			result.Outcome = eventlog.OutcomeSkipped
		default:
			result.Outcome = eventlog.OutcomeError
		}

		entry := eventlog.Entry{
			EventID:    env.ID,
			EventType:  env.Type,
			Branch:     name,
			Outcome:    result.Outcome,
			Duration:   result.Duration,
			RecordedAt: d.now().UTC(),
		}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		if result.Outcome == eventlog.OutcomeError {
			entry.ErrorClass = apperrors.Classify(result.Err)
		}
		d.recorder.Record(ctx, entry)
	}()

	result.Err = fn(ctx)
	return result
}

func (d *Dispatcher) paymentSucceeded(ctx context.Context, e PaymentSucceeded) error {
	if e.Intent.LatestCharge == nil || e.Intent.LatestCharge.ID == "" {
		return apperrors.NewValidation("latest_charge", "payment intent has no latest charge")
	}

	charge, err := d.deps.Processor.GetCharge(ctx, e.Intent.LatestCharge.ID)
	if err != nil {
		return fmt.Errorf("fetch charge %s: %w", e.Intent.LatestCharge.ID, err)
	}

	in := services.CreatePaymentInput{
		PaymentIntentID: e.Intent.ID,
		ChargeID:        charge.ID,
		Amount:          charge.Amount,
		Currency:        string(charge.Currency),
		Status:          string(charge.Status),
		ReceiptEmail:    charge.ReceiptEmail,
		Description:     charge.Description,
	}
	if charge.PaymentMethodDetails != nil {
		in.PaymentMethodType = string(charge.PaymentMethodDetails.Type)
	}
	switch {
	case charge.Customer != nil:
		in.CustomerID = charge.Customer.ID
	case e.Intent.Customer != nil:
		in.CustomerID = e.Intent.Customer.ID
	}

	_, err = d.deps.Payments.Create(ctx, in)
	return err
}

func (d *Dispatcher) paymentFailed(e PaymentFailed) error {
	msg := ""
	if e.Intent.LastPaymentError != nil {
		msg = e.Intent.LastPaymentError.Msg
	}
	d.logger.Warn("Payment failed",
		zap.String("event_id", e.ID),
		zap.String("payment_intent_id", e.Intent.ID),
		zap.String("last_payment_error", msg),
	)
	return skip("payment failure logged")
}

func (d *Dispatcher) refundChanged(ctx context.Context, e RefundChanged) error {
	r := e.Refund
	in := services.UpsertRefundInput{
		RefundID: r.ID,
		Amount:   r.Amount,
		Currency: string(r.Currency),
		Status:   string(r.Status),
		Reason:   string(r.Reason),
	}
	if r.PaymentIntent != nil {
		in.PaymentIntentID = r.PaymentIntent.ID
	}
	_, err := d.deps.Refunds.Upsert(ctx, in)
	return err
}

func (d *Dispatcher) payoutChanged(ctx context.Context, e PayoutChanged) error {
	p := e.Payout
	_, created, err := d.deps.Payouts.RecordEvent(ctx, services.RecordPayoutEventInput{
		EventID:        e.ID,
		PayoutID:       p.ID,
		AccountID:      e.Account,
		Amount:         p.Amount,
		Currency:       string(p.Currency),
		Status:         string(p.Status),
		EventType:      e.Transition,
		FailureCode:    string(p.FailureCode),
		FailureMessage: p.FailureMessage,
		ArrivalDate:    p.ArrivalDate,
	})
	if err != nil {
		return err
	}
	if !created {
		return skip("payout event already recorded")
	}
	return nil
}

func (d *Dispatcher) accountUpdated(ctx context.Context, e AccountUpdated) error {
	d.logger.Info("Connected account updated",
		zap.String("event_id", e.ID),
		zap.String("account_id", e.Account.ID),
		zap.Bool("transfers_active", services.TransfersActive(e.Account)),
	)
	_, err := d.deps.Accounts.Upsert(ctx, services.AccountInputFromStripe(e.Account))
	return err
}

func (d *Dispatcher) subscriptionChanged(ctx context.Context, e SubscriptionChanged) error {
	_, err := d.deps.Synchronizer.Sync(ctx, e.Subscription)
	return err
}

func (d *Dispatcher) invoiceSettled(ctx context.Context, e InvoiceSettled) error {
	if e.SubscriptionID == "" {
		return skip("invoice has no subscription")
	}
	return d.fetchAndSync(ctx, e.SubscriptionID)
}

func (d *Dispatcher) checkoutCompleted(ctx context.Context, e CheckoutCompleted) error {
	s := e.Session
	if s.Mode != stripe.CheckoutSessionModeSubscription || s.Subscription == nil || s.Subscription.ID == "" {
		return skip("checkout session is not a subscription")
	}

	sub, err := d.deps.Processor.GetSubscription(ctx, s.Subscription.ID)
	if err != nil {
		return fmt.Errorf("fetch subscription %s: %w", s.Subscription.ID, err)
	}

	if s.Metadata[oneTimeMetadataKey] == "true" && !sub.CancelAtPeriodEnd {
		if _, err := d.deps.Processor.SetCancelAtPeriodEnd(ctx, sub.ID, true); err != nil {
			return fmt.Errorf("set cancel at period end on %s: %w", sub.ID, err)
		}
		d.logger.Info("One-time subscription set to cancel at period end",
			zap.String("event_id", e.ID),
			zap.String("subscription_id", sub.ID),
		)
		if sub, err = d.deps.Processor.GetSubscription(ctx, sub.ID); err != nil {
			return fmt.Errorf("refetch subscription %s: %w", s.Subscription.ID, err)
		}
	}

	_, err = d.deps.Synchronizer.Sync(ctx, sub)
	return err
}

func (d *Dispatcher) fetchAndSync(ctx context.Context, subscriptionID string) error {
	sub, err := d.deps.Processor.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("fetch subscription %s: %w", subscriptionID, err)
	}
	_, err = d.deps.Synchronizer.Sync(ctx, sub)
	return err
}
