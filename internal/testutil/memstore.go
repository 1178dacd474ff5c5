package testutil

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gallery/internal/listquery"
)

// Accessor reads a logical field ("price", "artist.name", "id") from a row.
type Accessor[T any] func(row T, field string) any

// MemStore is an in-memory listquery.Store that evaluates clauses over a slice.
// It mirrors the SQL stores: filter, order with an id tiebreaker, then window.
type MemStore[T any] struct {
	mu       sync.Mutex
	rows     []T
	field    Accessor[T]
	decorate func(T) T

	// Err, when set, is returned by every call.
	Err   error
	Finds int
}

// NewMemStore returns a store over rows. decorate, if non-nil, fills derived
// fields on rows returned by Find.
func NewMemStore[T any](field Accessor[T], decorate func(T) T, rows ...T) *MemStore[T] {
	return &MemStore[T]{rows: rows, field: field, decorate: decorate}
}

// Add appends rows.
func (s *MemStore[T]) Add(rows ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, rows...)
}

// Rows returns a copy of every stored row.
func (s *MemStore[T]) Rows() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.rows...)
}

// Update replaces every row for which fn returns true with fn's result.
func (s *MemStore[T]) Update(fn func(T) (T, bool)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i, row := range s.rows {
		if updated, ok := fn(row); ok {
			s.rows[i] = updated
			n++
		}
	}
	return n
}

func (s *MemStore[T]) Count(_ context.Context, where []listquery.Clause) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.filter(where))), nil
}

func (s *MemStore[T]) Find(_ context.Context, q listquery.Query) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Finds++
	if s.Err != nil {
		return nil, s.Err
	}

	rows := s.filter(q.Where)
	if s.decorate != nil {
		for i := range rows {
			rows[i] = s.decorate(rows[i])
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if q.Sort.Field != "" {
			c := compare(s.field(rows[i], q.Sort.Field), s.field(rows[j], q.Sort.Field))
			if q.Sort.Descending() {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return compare(s.field(rows[i], "id"), s.field(rows[j], "id")) < 0
	})

	skip := q.Skip()
	if skip >= len(rows) {
		return []T{}, nil
	}
	end := skip + q.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[skip:end], nil
}

func (s *MemStore[T]) filter(where []listquery.Clause) []T {
	out := []T{}
	for _, row := range s.rows {
		ok := true
		for _, c := range where {
			if !s.match(row, c) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, row)
		}
	}
	return out
}

func (s *MemStore[T]) match(row T, c listquery.Clause) bool {
	switch c := c.(type) {
	case listquery.Equal:
		return compare(s.field(row, c.Field), c.Value) == 0
	case listquery.Contains:
		return containsFold(s.field(row, c.Field), c.Value)
	case listquery.RelatedContains:
		return containsFold(s.field(row, c.Relation+"."+c.Field), c.Value)
	case listquery.Range:
		v := s.field(row, c.Field)
		if c.Min != nil && compare(v, c.Min) < 0 {
			return false
		}
		if c.Max != nil && compare(v, c.Max) > 0 {
			return false
		}
		return true
	case listquery.AnyOf:
		for _, inner := range c.Clauses {
			if s.match(row, inner) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("memstore: unsupported clause %T", c))
	}
}

func containsFold(v any, sub string) bool {
	s, ok := normalize(v).(string)
	return ok && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// normalize reduces a value to string, bool, decimal.Decimal or time.Time.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		return x
	case time.Time:
		return x
	case uuid.UUID:
		return x.String()
	case bool:
		return x
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(rv.Float())
	}
	return fmt.Sprint(v)
}

// compare orders two values of the same logical type. Mismatched types sort as equal.
func compare(a, b any) int {
	a, b = normalize(a), normalize(b)
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(strings.ToLower(x), strings.ToLower(y))
		}
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}
