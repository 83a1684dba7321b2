package db

import "github.com/jackc/pgx/v5/pgtype"

// SameProcessorState reports whether two rows agree on every column the processor
// supplies. It is the Go form of the IS DISTINCT FROM guard in UpsertSubscription:
// when it returns true an upsert leaves updated_at untouched.
func (s Subscription) SameProcessorState(o Subscription) bool {
	return s.CustomerID == o.CustomerID &&
		s.CustomerEmail == o.CustomerEmail &&
		s.PriceID == o.PriceID &&
		s.ProductID == o.ProductID &&
		s.ProductName == o.ProductName &&
		s.Status == o.Status &&
		s.CancelAtPeriodEnd == o.CancelAtPeriodEnd &&
		sameInstant(s.CanceledAt, o.CanceledAt) &&
		sameInstant(s.EndedAt, o.EndedAt) &&
		sameInstant(s.TrialStart, o.TrialStart) &&
		sameInstant(s.TrialEnd, o.TrialEnd) &&
		s.BillingInterval == o.BillingInterval &&
		s.IntervalCount == o.IntervalCount &&
		s.Amount == o.Amount &&
		s.Currency == o.Currency
}

// HasPeriod reports whether both billing period boundaries are stored.
func (s Subscription) HasPeriod() bool {
	return s.CurrentPeriodStart.Valid && s.CurrentPeriodEnd.Valid
}

// AsSubscription projects upsert params onto a row for comparison.
func (p UpsertSubscriptionParams) AsSubscription() Subscription {
	return Subscription{
		SubscriptionID:     p.SubscriptionID,
		CustomerID:         p.CustomerID,
		CustomerEmail:      p.CustomerEmail,
		PriceID:            p.PriceID,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		Status:             p.Status,
		CurrentPeriodStart: p.CurrentPeriodStart,
		CurrentPeriodEnd:   p.CurrentPeriodEnd,
		PeriodSource:       p.PeriodSource,
		CancelAtPeriodEnd:  p.CancelAtPeriodEnd,
		CanceledAt:         p.CanceledAt,
		EndedAt:            p.EndedAt,
		TrialStart:         p.TrialStart,
		TrialEnd:           p.TrialEnd,
		BillingInterval:    p.BillingInterval,
		IntervalCount:      p.IntervalCount,
		Amount:             p.Amount,
		Currency:           p.Currency,
	}
}

func sameInstant(a, b pgtype.Timestamptz) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Time.Equal(b.Time)
}
