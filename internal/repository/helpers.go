package repository

import (
	"database/sql"
	"strings"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
)

// optionalInt maps a nil pointer to SQL NULL. The value is widened to
// int64 since driver.Value has no plain int.
func optionalInt(p *int) sql.Null[int64] {
	if p == nil {
		return sql.Null[int64]{}
	}
	return sql.Null[int64]{V: int64(*p), Valid: true}
}

func intPtr(n sql.Null[int]) *int {
	if !n.Valid {
		return nil
	}
	return &n.V
}

// splitTags reads the group_concat column built by tagListSQL, dropping any
// value that is no longer in the catalogue.
func splitTags(col sql.NullString) []domain.Tag {
	var tags []domain.Tag
	for _, raw := range strings.Split(col.String, ",") {
		if t, ok := domain.ParseTag(raw); ok {
			tags = append(tags, t)
		}
	}
	return tags
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
