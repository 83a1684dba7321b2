package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"authentication", NewAuthentication(errors.New("bad sig")), "authentication"},
		{"not found", NewNotFound("subscription", "sub_1", nil), "not_found"},
		{"transient", NewTransient("get charge", errors.New("timeout")), "transient"},
		{"validation", NewValidation("id", "missing"), "validation"},
		{"duplicate", fmt.Errorf("payment pi_1: %w", ErrDuplicateRecord), "duplicate"},
		{"wrapped not found", fmt.Errorf("sync: %w", NewNotFound("customer", "cus_1", nil)), "not_found"},
		{"plain", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFromDB(t *testing.T) {
	t.Run("no rows becomes not found", func(t *testing.T) {
		err := FromDB("get payment", "payment", "pi_1", pgx.ErrNoRows)
		assert.True(t, IsNotFound(err))
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("unique violation becomes duplicate", func(t *testing.T) {
		err := FromDB("create payment", "payment", "pi_1", &pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, err, ErrDuplicateRecord)
	})

	t.Run("other pg errors are wrapped", func(t *testing.T) {
		err := FromDB("create payment", "payment", "pi_1", &pgconn.PgError{Code: "22001"})
		assert.Equal(t, "internal", Classify(err))
	})

	t.Run("deadline is transient", func(t *testing.T) {
		err := FromDB("list", "payment", "", context.DeadlineExceeded)
		assert.True(t, IsTransient(err))
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, FromDB("op", "payment", "pi_1", nil))
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "subscription sub_1 not found", NewNotFound("subscription", "sub_1", nil).Error())
	assert.Equal(t, "validation failed on id: missing", NewValidation("id", "missing").Error())
	assert.Equal(t, "validation failed: bad shape", NewValidation("", "bad shape").Error())
	assert.Equal(t, "authentication failed", (&AuthenticationError{}).Error())
}
