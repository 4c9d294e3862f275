package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/norsk-drill/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// ref identifies the row in the message (id or natural key).
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, entity string, ref any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
		case "23514", "23502", "22001": // check_violation, not_null_violation, string_data_right_truncation
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, ref, err)
}

