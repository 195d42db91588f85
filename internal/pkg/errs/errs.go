// Package errs holds the error taxonomy shared by the data access and endpoint layers.
package errs

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrUnavailable         = errors.New("storage unavailable")
	ErrQueryFailed         = errors.New("query failed")
)

const (
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	classDataException      = "22"
	classConnException      = "08"
)

// FromDB tags a database error with one of the package sentinels.
// The original error stays in the chain.
func FromDB(err error) error {
	if err == nil {
		return nil
	}

	if IsContextError(err) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeForeignKeyViolation, pgErr.Code == codeNotNullViolation:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		case strings.HasPrefix(pgErr.Code, classDataException):
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		case strings.HasPrefix(pgErr.Code, classConnException):
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	if isConnError(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrQueryFailed, err)
}

func isConnError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
