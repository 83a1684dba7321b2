package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/deepaksolulab007/payment-system-stripe/internal/db"
)

var _ db.Querier = (*MemQuerier)(nil)

// MemQuerier is an in-memory db.Querier. Every write holds one mutex, which gives
// the same per-row atomicity as the SQL upserts it stands in for.
type MemQuerier struct {
	mu  sync.Mutex
	seq int64
	now func() time.Time

	payments      map[string]*memRow[db.Payment]
	refunds       map[string]*memRow[db.Refund]
	payoutEvents  map[string]*memRow[db.PayoutEvent]
	accounts      map[string]*memRow[db.ConnectedAccount]
	subscriptions map[string]*memRow[db.Subscription]
	webhookEvents map[string]*memRow[db.WebhookEvent]

	writes int
}

type memRow[T any] struct {
	seq int64
	row T
}

// NewMemQuerier returns an empty store whose timestamps come from time.Now.
func NewMemQuerier() *MemQuerier {
	return &MemQuerier{
		now:           func() time.Time { return time.Now().UTC() },
		payments:      map[string]*memRow[db.Payment]{},
		refunds:       map[string]*memRow[db.Refund]{},
		payoutEvents:  map[string]*memRow[db.PayoutEvent]{},
		accounts:      map[string]*memRow[db.ConnectedAccount]{},
		subscriptions: map[string]*memRow[db.Subscription]{},
		webhookEvents: map[string]*memRow[db.WebhookEvent]{},
	}
}

// SetClock replaces the source of NOW() timestamps.
func (m *MemQuerier) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Writes returns how many mutating calls succeeded.
func (m *MemQuerier) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// PutSubscription stores row as is, for seeding read-path tests.
func (m *MemQuerier) PutSubscription(row db.Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	m.seq++
	m.subscriptions[row.SubscriptionID] = &memRow[db.Subscription]{seq: m.seq, row: row}
}

func (m *MemQuerier) ts() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: m.now(), Valid: true}
}

func (m *MemQuerier) next() int64 {
	m.seq++
	return m.seq
}

func matches(filter pgtype.Text, v string) bool {
	return !filter.Valid || filter.String == v
}

func matchesNullable(filter pgtype.Text, v pgtype.Text) bool {
	return !filter.Valid || (v.Valid && v.String == filter.String)
}

// sortDesc orders rows newest first by created, breaking ties by insertion order.
func sortDesc[T any](rows []*memRow[T], created func(T) time.Time) []T {
	sort.SliceStable(rows, func(i, j int) bool {
		ci, cj := created(rows[i].row), created(rows[j].row)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return rows[i].seq > rows[j].seq
	})
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.row)
	}
	return out
}

func page[T any](items []T, limit, offset int32) []T {
	if offset < 0 {
		offset = 0
	}
	if int(offset) >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit >= 0 && int(limit) < len(items) {
		items = items[:limit]
	}
	return items
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

// payments

func (m *MemQuerier) CreatePayment(ctx context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payments[arg.PaymentIntentID]; ok {
		return db.Payment{}, uniqueViolation("payments_payment_intent_id_key")
	}
	now := m.ts()
	row := db.Payment{
		ID:                uuid.New(),
		PaymentIntentID:   arg.PaymentIntentID,
		ChargeID:          arg.ChargeID,
		Amount:            arg.Amount,
		Currency:          arg.Currency,
		Status:            arg.Status,
		PaymentMethodType: arg.PaymentMethodType,
		ReceiptEmail:      arg.ReceiptEmail,
		CustomerID:        arg.CustomerID,
		Description:       arg.Description,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	m.payments[arg.PaymentIntentID] = &memRow[db.Payment]{seq: m.next(), row: row}
	m.writes++
	return row, nil
}

func (m *MemQuerier) GetPaymentByIntentID(ctx context.Context, paymentIntentID string) (db.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.payments[paymentIntentID]; ok {
		return r.row, nil
	}
	return db.Payment{}, pgx.ErrNoRows
}

func (m *MemQuerier) ListPayments(ctx context.Context, arg db.ListPaymentsParams) ([]db.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.Payment]
	for _, r := range m.payments {
		if matches(arg.Status, r.row.Status) && matchesNullable(arg.Email, r.row.ReceiptEmail) {
			rows = append(rows, r)
		}
	}
	return page(sortDesc(rows, func(p db.Payment) time.Time { return p.CreatedAt.Time }), arg.Limit, arg.Offset), nil
}

func (m *MemQuerier) CountPayments(ctx context.Context, status pgtype.Text) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.payments {
		if matches(status, r.row.Status) {
			n++
		}
	}
	return n, nil
}

// refunds

func (m *MemQuerier) UpsertRefund(ctx context.Context, arg db.UpsertRefundParams) (db.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.ts()
	existing, ok := m.refunds[arg.RefundID]
	if !ok {
		existing = &memRow[db.Refund]{seq: m.next(), row: db.Refund{ID: uuid.New(), RefundID: arg.RefundID, CreatedAt: now}}
		m.refunds[arg.RefundID] = existing
	}
	existing.row.PaymentIntentID = arg.PaymentIntentID
	existing.row.Amount = arg.Amount
	existing.row.Currency = arg.Currency
	existing.row.Status = arg.Status
	existing.row.Reason = arg.Reason
	existing.row.UpdatedAt = now
	m.writes++
	return existing.row, nil
}

func (m *MemQuerier) GetRefundByRefundID(ctx context.Context, refundID string) (db.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.refunds[refundID]; ok {
		return r.row, nil
	}
	return db.Refund{}, pgx.ErrNoRows
}

func (m *MemQuerier) ListRefunds(ctx context.Context, arg db.ListRefundsParams) ([]db.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.Refund]
	for _, r := range m.refunds {
		if matches(arg.Status, r.row.Status) {
			rows = append(rows, r)
		}
	}
	return page(sortDesc(rows, func(r db.Refund) time.Time { return r.CreatedAt.Time }), arg.Limit, arg.Offset), nil
}

func (m *MemQuerier) ListRefundsByPaymentIntent(ctx context.Context, paymentIntentID string) ([]db.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.Refund]
	for _, r := range m.refunds {
		if r.row.PaymentIntentID.Valid && r.row.PaymentIntentID.String == paymentIntentID {
			rows = append(rows, r)
		}
	}
	return sortDesc(rows, func(r db.Refund) time.Time { return r.CreatedAt.Time }), nil
}

func (m *MemQuerier) CountRefunds(ctx context.Context, status pgtype.Text) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.refunds {
		if matches(status, r.row.Status) {
			n++
		}
	}
	return n, nil
}

// payout events

func (m *MemQuerier) CreatePayoutEvent(ctx context.Context, arg db.CreatePayoutEventParams) (db.PayoutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payoutEvents[arg.EventID]; ok {
		// ON CONFLICT DO NOTHING RETURNING yields no row
		return db.PayoutEvent{}, pgx.ErrNoRows
	}
	row := db.PayoutEvent{
		ID:             uuid.New(),
		EventID:        arg.EventID,
		PayoutID:       arg.PayoutID,
		AccountID:      arg.AccountID,
		Amount:         arg.Amount,
		Currency:       arg.Currency,
		Status:         arg.Status,
		EventType:      arg.EventType,
		FailureCode:    arg.FailureCode,
		FailureMessage: arg.FailureMessage,
		ArrivalDate:    arg.ArrivalDate,
		CreatedAt:      m.ts(),
	}
	m.payoutEvents[arg.EventID] = &memRow[db.PayoutEvent]{seq: m.next(), row: row}
	m.writes++
	return row, nil
}

func (m *MemQuerier) GetPayoutEventByEventID(ctx context.Context, eventID string) (db.PayoutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.payoutEvents[eventID]; ok {
		return r.row, nil
	}
	return db.PayoutEvent{}, pgx.ErrNoRows
}

func (m *MemQuerier) ListPayoutEvents(ctx context.Context, arg db.ListPayoutEventsParams) ([]db.PayoutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.PayoutEvent]
	for _, r := range m.payoutEvents {
		if matches(arg.Status, r.row.Status) {
			rows = append(rows, r)
		}
	}
	return page(sortDesc(rows, func(p db.PayoutEvent) time.Time { return p.CreatedAt.Time }), arg.Limit, arg.Offset), nil
}

func (m *MemQuerier) ListPayoutEventsByPayoutID(ctx context.Context, payoutID string) ([]db.PayoutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.PayoutEvent]
	for _, r := range m.payoutEvents {
		if r.row.PayoutID == payoutID {
			rows = append(rows, r)
		}
	}
	desc := sortDesc(rows, func(p db.PayoutEvent) time.Time { return p.CreatedAt.Time })
	out := make([]db.PayoutEvent, 0, len(desc))
	for i := len(desc) - 1; i >= 0; i-- {
		out = append(out, desc[i])
	}
	return out, nil
}

func (m *MemQuerier) CountPayouts(ctx context.Context, status pgtype.Text) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]struct{}{}
	for _, r := range m.payoutEvents {
		if matches(status, r.row.Status) {
			seen[r.row.PayoutID] = struct{}{}
		}
	}
	return int64(len(seen)), nil
}

// connected accounts

func (m *MemQuerier) UpsertConnectedAccount(ctx context.Context, arg db.UpsertConnectedAccountParams) (db.ConnectedAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.ts()
	existing, ok := m.accounts[arg.AccountID]
	if !ok {
		existing = &memRow[db.ConnectedAccount]{seq: m.next(), row: db.ConnectedAccount{ID: uuid.New(), AccountID: arg.AccountID, CreatedAt: now}}
		m.accounts[arg.AccountID] = existing
	}
	existing.row.Email = arg.Email
	existing.row.DetailsSubmitted = arg.DetailsSubmitted
	existing.row.PayoutsEnabled = arg.PayoutsEnabled
	existing.row.ChargesEnabled = arg.ChargesEnabled
	existing.row.IsVerified = arg.IsVerified
	existing.row.UpdatedAt = now
	m.writes++
	return existing.row, nil
}

func (m *MemQuerier) GetConnectedAccount(ctx context.Context, accountID string) (db.ConnectedAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.accounts[accountID]; ok {
		return r.row, nil
	}
	return db.ConnectedAccount{}, pgx.ErrNoRows
}

func (m *MemQuerier) ListConnectedAccounts(ctx context.Context, arg db.ListConnectedAccountsParams) ([]db.ConnectedAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]*memRow[db.ConnectedAccount], 0, len(m.accounts))
	for _, r := range m.accounts {
		rows = append(rows, r)
	}
	return page(sortDesc(rows, func(a db.ConnectedAccount) time.Time { return a.CreatedAt.Time }), arg.Limit, arg.Offset), nil
}

// subscriptions

func (m *MemQuerier) UpsertSubscription(ctx context.Context, arg db.UpsertSubscriptionParams) (db.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	incoming := arg.AsSubscription()

	existing, ok := m.subscriptions[arg.SubscriptionID]
	if !ok {
		incoming.ID = uuid.New()
		incoming.CreatedAt = arg.SyncedAt
		incoming.UpdatedAt = arg.SyncedAt
		m.subscriptions[arg.SubscriptionID] = &memRow[db.Subscription]{seq: m.next(), row: incoming}
		m.writes++
		return incoming, nil
	}

	incoming.ID = existing.row.ID
	incoming.CreatedAt = existing.row.CreatedAt
	incoming.UpdatedAt = existing.row.UpdatedAt
	if !existing.row.SameProcessorState(incoming) {
		incoming.UpdatedAt = arg.SyncedAt
	}
	existing.row = incoming
	m.writes++
	return incoming, nil
}

func (m *MemQuerier) GetSubscription(ctx context.Context, subscriptionID string) (db.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.subscriptions[subscriptionID]; ok {
		return r.row, nil
	}
	return db.Subscription{}, pgx.ErrNoRows
}

func (m *MemQuerier) ListSubscriptions(ctx context.Context, arg db.ListSubscriptionsParams) ([]db.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.Subscription]
	for _, r := range m.subscriptions {
		if matches(arg.Status, r.row.Status) && matchesNullable(arg.Email, r.row.CustomerEmail) {
			rows = append(rows, r)
		}
	}
	return page(sortDesc(rows, func(s db.Subscription) time.Time { return s.CreatedAt.Time }), arg.Limit, arg.Offset), nil
}

func (m *MemQuerier) CountSubscriptions(ctx context.Context, status pgtype.Text) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.subscriptions {
		if matches(status, r.row.Status) {
			n++
		}
	}
	return n, nil
}

// webhook events

func (m *MemQuerier) UpsertWebhookEvent(ctx context.Context, arg db.UpsertWebhookEventParams) (db.WebhookEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.ts()
	existing, ok := m.webhookEvents[arg.EventID]
	if !ok {
		existing = &memRow[db.WebhookEvent]{seq: m.next(), row: db.WebhookEvent{
			ID:        uuid.New(),
			EventID:   arg.EventID,
			EventType: arg.EventType,
			CreatedAt: now,
		}}
		m.webhookEvents[arg.EventID] = existing
	} else {
		existing.row.Attempts++
	}
	if existing.row.Attempts == 0 {
		existing.row.Attempts = 1
	}
	existing.row.Outcome = arg.Outcome
	existing.row.ErrorClass = arg.ErrorClass
	existing.row.ErrorMessage = arg.ErrorMessage
	existing.row.UpdatedAt = now
	m.writes++
	return existing.row, nil
}

func (m *MemQuerier) ListWebhookEvents(ctx context.Context, arg db.ListWebhookEventsParams) ([]db.WebhookEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []*memRow[db.WebhookEvent]
	for _, r := range m.webhookEvents {
		if matches(arg.EventType, r.row.EventType) && matches(arg.Outcome, r.row.Outcome) {
			rows = append(rows, r)
		}
	}
	return page(sortDesc(rows, func(w db.WebhookEvent) time.Time { return w.UpdatedAt.Time }), arg.Limit, arg.Offset), nil
}
