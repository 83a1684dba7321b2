package services

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/client/processor"
	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

// AccountService caches connected account onboarding state.
type AccountService struct {
	queries   db.Querier
	processor processor.Client
	logger    *zap.Logger
}

// NewAccountService creates a new connected account service
func NewAccountService(queries db.Querier, client processor.Client, log *zap.Logger) *AccountService {
	return &AccountService{
		queries:   queries,
		processor: client,
		logger:    logger.OrGlobal(log),
	}
}

type UpsertAccountInput struct {
	AccountID        string `validate:"required"`
	Email            string
	DetailsSubmitted bool
	PayoutsEnabled   bool
	ChargesEnabled   bool
}

// IsVerified is the derived verification flag stored with the account.
func (in UpsertAccountInput) IsVerified() bool {
	return in.DetailsSubmitted && in.PayoutsEnabled
}

// AccountInputFromStripe maps a processor account onto store input.
func AccountInputFromStripe(acct *stripe.Account) UpsertAccountInput {
	return UpsertAccountInput{
		AccountID:        acct.ID,
		Email:            acct.Email,
		DetailsSubmitted: acct.DetailsSubmitted,
		PayoutsEnabled:   acct.PayoutsEnabled,
		ChargesEnabled:   acct.ChargesEnabled,
	}
}

// TransfersActive reports whether the account can receive transfers.
func TransfersActive(acct *stripe.Account) bool {
	return acct != nil && acct.Capabilities != nil &&
		acct.Capabilities.Transfers == stripe.AccountCapabilityStatusActive
}

func (s *AccountService) Upsert(ctx context.Context, in UpsertAccountInput) (*db.ConnectedAccount, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	account, err := s.queries.UpsertConnectedAccount(ctx, db.UpsertConnectedAccountParams{
		AccountID:        in.AccountID,
		Email:            helpers.StringToNullableText(in.Email),
		DetailsSubmitted: in.DetailsSubmitted,
		PayoutsEnabled:   in.PayoutsEnabled,
		ChargesEnabled:   in.ChargesEnabled,
		IsVerified:       in.IsVerified(),
	})
	if err != nil {
		return nil, apperrors.FromDB("upsert connected account", "account", in.AccountID, err)
	}

	s.logger.Info("Connected account upserted",
		zap.String("account_id", account.AccountID),
		zap.Bool("is_verified", account.IsVerified),
	)
	return &account, nil
}

// RefreshFromProcessor pulls the account's current status and stores it.
func (s *AccountService) RefreshFromProcessor(ctx context.Context, accountID string) (*db.ConnectedAccount, error) {
	acct, err := s.processor.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.Upsert(ctx, AccountInputFromStripe(acct))
}

func (s *AccountService) Get(ctx context.Context, accountID string) (*db.ConnectedAccount, error) {
	account, err := s.queries.GetConnectedAccount(ctx, accountID)
	if err != nil {
		return nil, apperrors.FromDB("get connected account", "account", accountID, err)
	}
	return &account, nil
}

func (s *AccountService) List(ctx context.Context, params ListParams) ([]db.ConnectedAccount, error) {
	params = params.normalized()
	accounts, err := s.queries.ListConnectedAccounts(ctx, db.ListConnectedAccountsParams{
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, apperrors.FromDB("list connected accounts", "account", "", err)
	}
	return accounts, nil
}
