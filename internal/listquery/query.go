package listquery

import (
	"context"
	"net/url"
	"time"
)

// Query is a resolved list request: what to match, how to order and which window.
type Query struct {
	Where []Clause
	Sort  Sort
	Page  int
	Limit int
}

// Skip returns the offset of the query window.
func (q Query) Skip() int {
	return Skip(q.Page, q.Limit)
}

// Resolve coerces raw against s and builds the query descriptor. No store is touched,
// so validation failures cost nothing.
func Resolve(s Schema, raw url.Values, now time.Time) (Query, error) {
	p, err := Coerce(s, raw)
	if err != nil {
		return Query{}, err
	}
	return Query{
		Where: s.Where(p, now),
		Sort:  s.Order(p),
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// Store finds rows of T matching a query. Find must apply Where and Sort before the
// window; Count must ignore the window.
type Store[T any] interface {
	Find(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, where []Clause) (int64, error)
}

// Result is one page of rows plus its metadata.
type Result[T any] struct {
	Rows       []T
	Pagination Pagination
}

// Run counts the matching rows, fetches the requested window and paginates.
func Run[T any](ctx context.Context, store Store[T], q Query) (Result[T], error) {
	total, err := store.Count(ctx, q.Where)
	if err != nil {
		return Result[T]{}, err
	}

	rows := []T{}
	if total > int64(q.Skip()) {
		found, err := store.Find(ctx, q)
		if err != nil {
			return Result[T]{}, err
		}
		if found != nil {
			rows = found
		}
	}
	return Result[T]{Rows: rows, Pagination: Paginate(q.Page, q.Limit, total)}, nil
}
