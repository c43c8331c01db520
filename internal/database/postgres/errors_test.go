package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgCodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgCodeDeadlockDetected}, true},
		{"connection exception class", &pgconn.PgError{Code: "08006"}, true},
		{"admin shutdown", &pgconn.PgError{Code: pgCodeAdminShutdown}, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"closed pool", errors.New("closed pool"), true},
		{"unique violation", &pgconn.PgError{Code: pgCodeUniqueViolation}, false},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("op", tt.err)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.transient, errors.Is(err, domain.ErrStorageUnavailable))
			assert.False(t, errors.Is(err, domain.ErrInsufficientFunds))
		})
	}

	assert.NoError(t, classifyError("op", nil))
}

func TestClassifyError_RejectedValuesAreInvalidInput(t *testing.T) {
	for _, code := range []string{pgCodeStringTooLong, pgCodeCheckViolation} {
		t.Run(code, func(t *testing.T) {
			err := classifyError("op", &pgconn.PgError{Code: code})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.False(t, errors.Is(err, domain.ErrStorageUnavailable))
		})
	}

	err := classifyError("op", &pgconn.PgError{Code: pgCodeUniqueViolation})
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}
