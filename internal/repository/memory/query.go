package memory

import (
	"sort"

	"blogapi/internal/repository"
)

type fielder interface {
	Field(name string) (any, bool)
}

// apply filters, orders and limits items the way the Postgres store would.
// Ties keep insertion order.
func apply[T fielder](items []T, q repository.Query, schema repository.Schema) ([]T, error) {
	if err := q.Check(schema); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		keep := true
		for _, f := range q.Filters {
			v, _ := it.Field(f.Field)
			if !f.Matches(v) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}

	if len(q.OrderBy) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, o := range q.OrderBy {
				a, _ := out[i].Field(o.Field)
				b, _ := out[j].Field(o.Field)
				c, _ := repository.Compare(a, b)
				if c == 0 {
					continue
				}
				if o.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}
