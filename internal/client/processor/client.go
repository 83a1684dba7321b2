// Package processor wraps the Stripe API calls the reconciliation pipeline depends on.
package processor

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

//go:generate mockgen -destination=../../mocks/mock_processor.go -package=mocks -mock_names Client=MockProcessorClient . Client

// Client is the subset of the processor API used to reconcile local state.
// A single instance is built at startup and injected into every component.
type Client interface {
	GetCharge(ctx context.Context, chargeID string) (*stripe.Charge, error)
	// GetSubscription expands the customer so the synchronizer can read the email.
	GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error)
	ListCustomerSubscriptions(ctx context.Context, customerID string) ([]*stripe.Subscription, error)
	SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*stripe.Subscription, error)
	GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*stripe.Customer, error)
	GetProduct(ctx context.Context, productID string) (*stripe.Product, error)
	GetAccount(ctx context.Context, accountID string) (*stripe.Account, error)
}
