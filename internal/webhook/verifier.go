// Package webhook authenticates processor webhook deliveries, decodes them into a
// closed set of event kinds and routes each kind to its reconciliation branch.
package webhook

import (
	"errors"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
)

var (
	ErrSecretMisconfigured = errors.New("webhook secret misconfigured")
	ErrMissingSignature    = errors.New("missing signature header")
)

// Verifier checks the signature header of a delivery against the shared secret.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

type VerifierOption func(*Verifier)

// WithTolerance overrides how old a signed timestamp may be.
func WithTolerance(d time.Duration) VerifierOption {
	return func(v *Verifier) {
		if d > 0 {
			v.tolerance = d
		}
	}
}

func NewVerifier(secret string, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		secret:    secret,
		tolerance: webhook.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify authenticates payload, which must be the request body exactly as received.
// Every failure is an *apperrors.AuthenticationError.
func (v *Verifier) Verify(payload []byte, header string) (stripe.Event, error) {
	if v.secret == "" {
		return stripe.Event{}, apperrors.NewAuthentication(ErrSecretMisconfigured)
	}
	if header == "" {
		return stripe.Event{}, apperrors.NewAuthentication(ErrMissingSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, header, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, apperrors.NewAuthentication(err)
	}
	return event, nil
}
