package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Filter operators.
const (
	OpEq  = "=="
	OpNeq = "!="
	OpLt  = "<"
	OpLte = "<="
	OpGt  = ">"
	OpGte = ">="
)

// ErrInvalidQuery wraps every query rejection: bad operators, unknown fields
// and values of the wrong type.
var ErrInvalidQuery = errors.New("invalid query")

func invalidQuery(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidQuery}, args...)...)
}

// FieldKind is the value type a queryable field holds.
type FieldKind int

const (
	FieldString FieldKind = iota
	// FieldTime accepts time.Time or an RFC3339 string as filter value.
	FieldTime
)

// Schema lists the fields a collection can be filtered and ordered on.
type Schema map[string]FieldKind

var (
	PostSchema = Schema{
		"id":          FieldString,
		"title":       FieldString,
		"category":    FieldString,
		"status":      FieldString,
		"author":      FieldString,
		"createdAt":   FieldTime,
		"updatedAt":   FieldTime,
		"scheduledAt": FieldTime,
	}
	CategorySchema = Schema{
		"id":   FieldString,
		"name": FieldString,
	}
)

// Filter restricts a query to documents whose Field compares to Value.
type Filter struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// Order sorts results by Field.
type Order struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

// Query is a list of constraints applied to a collection.
type Query struct {
	Filters []Filter `json:"filters,omitempty"`
	OrderBy []Order  `json:"orderBy,omitempty"`
	Limit   int      `json:"limit,omitempty"`
}

// Where appends a filter and returns the query for chaining.
func (q Query) Where(field, op string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: op, Value: value})
	return q
}

// Sort appends an ordering.
func (q Query) Sort(field string, desc bool) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Field: field, Desc: desc})
	return q
}

// Key is the structural identity of the query. Two queries with equal keys
// select the same documents in the same order.
func (q Query) Key() string {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Sprintf("%#v", q)
	}
	return string(b)
}

// Validate checks operators and limit. Errors wrap ErrInvalidQuery.
func (q Query) Validate() error {
	for _, f := range q.Filters {
		switch f.Op {
		case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		default:
			return invalidQuery("unsupported operator %q", f.Op)
		}
		if strings.TrimSpace(f.Field) == "" {
			return invalidQuery("filter field is required")
		}
	}
	for _, o := range q.OrderBy {
		if strings.TrimSpace(o.Field) == "" {
			return invalidQuery("order field is required")
		}
	}
	if q.Limit < 0 {
		return invalidQuery("limit must not be negative")
	}
	return nil
}

// Check validates q and then every field and filter value against s.
// A nil value only works with == and != (IS NULL / IS NOT NULL).
func (q Query) Check(s Schema) error {
	if err := q.Validate(); err != nil {
		return err
	}
	for _, f := range q.Filters {
		kind, ok := s[f.Field]
		if !ok {
			return invalidQuery("unknown field %q", f.Field)
		}
		if f.Value == nil {
			if f.Op != OpEq && f.Op != OpNeq {
				return invalidQuery("operator %q needs a value", f.Op)
			}
			continue
		}
		if !kind.accepts(f.Value) {
			return invalidQuery("field %q does not accept %T value %v", f.Field, f.Value, f.Value)
		}
	}
	for _, o := range q.OrderBy {
		if _, ok := s[o.Field]; !ok {
			return invalidQuery("unknown field %q", o.Field)
		}
	}
	return nil
}

func (k FieldKind) accepts(v any) bool {
	switch k {
	case FieldTime:
		_, ok := asTime(v)
		return ok
	default:
		_, ok := v.(string)
		return ok
	}
}

// Compare orders two field values. Strings compare lexically, times
// chronologically; an RFC3339 string is accepted against a time. nil sorts
// before everything. ok is false when the values cannot be compared.
func Compare(a, b any) (c int, ok bool) {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0, true
		case a == nil:
			return -1, true
		default:
			return 1, true
		}
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(av, bv), true
	case time.Time:
		bt, ok := asTime(b)
		if !ok {
			return 0, false
		}
		return av.Compare(bt), true
	}
	return 0, false
}

func asTime(v any) (time.Time, bool) {
	switch tv := v.(type) {
	case time.Time:
		return tv, true
	case *time.Time:
		if tv == nil {
			return time.Time{}, false
		}
		return *tv, true
	case string:
		t, err := time.Parse(time.RFC3339, tv)
		return t, err == nil
	}
	return time.Time{}, false
}

// Matches reports whether a field value satisfies the filter.
func (f Filter) Matches(v any) bool {
	c, ok := Compare(v, f.Value)
	if !ok {
		return false
	}
	switch f.Op {
	case OpEq:
		return c == 0
	case OpNeq:
		return c != 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	}
	return false
}
