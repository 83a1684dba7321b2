package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	body, err := fs.ReadFile(migrationsFS, "migrations/"+entries[0].Name())
	require.NoError(t, err)

	sql := string(body)
	assert.True(t, strings.HasPrefix(sql, "-- +goose Up"))
	assert.Contains(t, sql, "-- +goose Down")

	for _, table := range []string{"payments", "refunds", "payout_events", "connected_accounts", "subscriptions", "webhook_events"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}

	// natural keys the stores rely on for atomic upserts
	for _, key := range []string{
		"UNIQUE (payment_intent_id)",
		"UNIQUE (refund_id)",
		"UNIQUE (event_id)",
		"UNIQUE (account_id)",
		"UNIQUE (subscription_id)",
	} {
		assert.Contains(t, sql, key)
	}
}
