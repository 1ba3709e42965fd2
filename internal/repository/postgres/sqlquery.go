package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blogapi/internal/repository"
)

// columnMap translates API field names to SQL columns. Only mapped fields
// can be filtered or ordered on.
type columnMap map[string]string

var sqlOps = map[string]string{
	repository.OpEq:  "=",
	repository.OpNeq: "<>",
	repository.OpLt:  "<",
	repository.OpLte: "<=",
	repository.OpGt:  ">",
	repository.OpGte: ">=",
}

// buildQuery renders the WHERE/ORDER BY/LIMIT tail for q after checking it
// against schema. Placeholders are numbered from 1.
func buildQuery(cols columnMap, schema repository.Schema, q repository.Query, defaultOrder string) (string, []any, error) {
	if err := q.Check(schema); err != nil {
		return "", nil, err
	}
	var (
		where []string
		args  []any
	)
	for _, f := range q.Filters {
		col, ok := cols[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: field %q has no column", repository.ErrInvalidQuery, f.Field)
		}
		if f.Value == nil {
			if f.Op == repository.OpEq {
				where = append(where, col+" IS NULL")
			} else {
				where = append(where, col+" IS NOT NULL")
			}
			continue
		}
		args = append(args, f.Value)
		where = append(where, fmt.Sprintf("%s %s $%d", col, sqlOps[f.Op], len(args)))
	}

	var b strings.Builder
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	if len(q.OrderBy) > 0 {
		parts := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			col, ok := cols[o.Field]
			if !ok {
				return "", nil, fmt.Errorf("%w: field %q has no column", repository.ErrInvalidQuery, o.Field)
			}
			if o.Desc {
				col += " DESC"
			}
			parts = append(parts, col)
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(parts, ", "))
	} else if defaultOrder != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(defaultOrder)
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
