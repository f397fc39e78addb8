// Package memory holds process-local repositories. They keep insertion order,
// enforce the same uniqueness rules as the Postgres schema and hand out
// copies so callers never alias stored rows.
package memory

import (
	"time"

	"github.com/fastygo/portfolio/domain"
)

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 100
	}
	return limit
}

func page[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + clampLimit(limit)
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func assignID(id string) string {
	if domain.IsStoreID(id) {
		return id
	}
	return domain.NewID()
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func stamp(createdAt *time.Time, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

func fresh(createdAt *time.Time, updatedAt *time.Time) {
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}
