package processor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

var _ Client = (*StripeClient)(nil)

// StripeClient implements Client over the stripe-go v82 service client.
type StripeClient struct {
	client *stripe.Client
	logger *zap.Logger
}

// NewStripeClient creates a client authenticated with apiKey.
func NewStripeClient(apiKey string, log *zap.Logger) (*StripeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key not provided")
	}
	return NewStripeClientFrom(stripe.NewClient(apiKey, nil), log), nil
}

// NewStripeClientFrom wraps an already configured *stripe.Client.
func NewStripeClientFrom(client *stripe.Client, log *zap.Logger) *StripeClient {
	return &StripeClient{
		client: client,
		logger: logger.OrGlobal(log),
	}
}

func (s *StripeClient) GetCharge(ctx context.Context, chargeID string) (*stripe.Charge, error) {
	charge, err := s.client.V1Charges.Retrieve(ctx, chargeID, &stripe.ChargeRetrieveParams{})
	if err != nil {
		return nil, mapStripeError("charge", chargeID, err)
	}
	return charge, nil
}

func (s *StripeClient) GetSubscription(ctx context.Context, subscriptionID string) (*stripe.Subscription, error) {
	params := &stripe.SubscriptionRetrieveParams{}
	params.AddExpand("customer")

	sub, err := s.client.V1Subscriptions.Retrieve(ctx, subscriptionID, params)
	if err != nil {
		return nil, mapStripeError("subscription", subscriptionID, err)
	}
	return sub, nil
}

func (s *StripeClient) ListCustomerSubscriptions(ctx context.Context, customerID string) ([]*stripe.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.AddExpand("data.customer")

	var subs []*stripe.Subscription
	for sub, err := range s.client.V1Subscriptions.List(ctx, params) {
		if err != nil {
			return nil, mapStripeError("customer subscriptions", customerID, err)
		}
		if sub == nil {
			continue
		}
		subs = append(subs, sub)
	}

	s.logger.Debug("Listed customer subscriptions",
		zap.String("customer_id", customerID),
		zap.Int("count", len(subs)),
	)
	return subs, nil
}

func (s *StripeClient) SetCancelAtPeriodEnd(ctx context.Context, subscriptionID string, cancel bool) (*stripe.Subscription, error) {
	params := &stripe.SubscriptionUpdateParams{
		CancelAtPeriodEnd: stripe.Bool(cancel),
	}

	sub, err := s.client.V1Subscriptions.Update(ctx, subscriptionID, params)
	if err != nil {
		return nil, mapStripeError("subscription", subscriptionID, err)
	}

	s.logger.Info("Updated subscription cancel_at_period_end",
		zap.String("subscription_id", subscriptionID),
		zap.Bool("cancel_at_period_end", cancel),
	)
	return sub, nil
}

func (s *StripeClient) GetCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	customer, err := s.client.V1Customers.Retrieve(ctx, customerID, &stripe.CustomerRetrieveParams{})
	if err != nil {
		return nil, mapStripeError("customer", customerID, err)
	}
	if customer.Deleted {
		return nil, apperrors.NewNotFound("customer", customerID, errors.New("customer deleted"))
	}
	return customer, nil
}

func (s *StripeClient) FindCustomerByEmail(ctx context.Context, email string) (*stripe.Customer, error) {
	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Limit = stripe.Int64(1)

	for customer, err := range s.client.V1Customers.List(ctx, params) {
		if err != nil {
			return nil, mapStripeError("customer", email, err)
		}
		if customer != nil && !customer.Deleted {
			return customer, nil
		}
	}
	return nil, apperrors.NewNotFound("customer", email, nil)
}

func (s *StripeClient) GetProduct(ctx context.Context, productID string) (*stripe.Product, error) {
	product, err := s.client.V1Products.Retrieve(ctx, productID, &stripe.ProductRetrieveParams{})
	if err != nil {
		return nil, mapStripeError("product", productID, err)
	}
	return product, nil
}

func (s *StripeClient) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	account, err := s.client.V1Accounts.GetByID(ctx, accountID, &stripe.AccountRetrieveParams{})
	if err != nil {
		return nil, mapStripeError("account", accountID, err)
	}
	return account, nil
}

// mapStripeError places a stripe-go error into the application taxonomy.
func mapStripeError(resource, id string, err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		// no API response at all, so the request never reached Stripe or the connection dropped
		return apperrors.NewTransient("stripe "+resource, err)
	}

	switch {
	case stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound:
		return apperrors.NewNotFound(resource, id, err)
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests || stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
		return apperrors.NewTransient("stripe "+resource, err)
	default:
		return fmt.Errorf("stripe %s %s: %w", resource, id, err)
	}
}
