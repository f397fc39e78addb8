package postgres

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

const uniqueViolation = "23505"

func marshalJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return b
}

// unmarshalColumn decodes a JSONB column into dst. An empty column leaves dst
// untouched.
func unmarshalColumn(raw []byte, dst any, column string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return storeError("decode "+column, err)
	}
	return nil
}

func nullTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

func assignID(id string) string {
	if domain.IsStoreID(id) {
		return id
	}
	return domain.NewID()
}

// storeError classifies driver errors the callers can act on and wraps the
// rest with a stack trace.
func storeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "slug") {
			return domain.ErrSlugTaken
		}
		return domain.WrapError(domain.ErrCodeConflict, "unique constraint violated", errors.Wrap(err, op))
	}
	return errors.Wrap(err, op)
}
