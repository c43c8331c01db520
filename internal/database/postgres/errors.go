package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// classifyError wraps a driver error with the operation name.
// Transient failures (connectivity, timeouts, serialization conflicts) also wrap
// domain.ErrStorageUnavailable so callers never mistake them for business outcomes.
// Values rejected by column widths or CHECK constraints wrap domain.ErrInvalidInput.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	switch pgCode(err) {
	case pgCodeStringTooLong, pgCodeCheckViolation:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeSerializationFailure, pgCodeDeadlockDetected, pgCodeTooManyConnections,
			pgCodeAdminShutdown, pgCodeCrashShutdown, pgCodeCannotConnectNow:
			return true
		}
		return strings.HasPrefix(pgErr.Code, pgClassConnectionException)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	// pgxpool reports a closed pool with a plain error
	return strings.Contains(err.Error(), "closed pool")
}

// pgCode returns the SQLSTATE of err, or "" for non-server errors
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
