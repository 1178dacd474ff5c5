package repository

import (
	"context"

	"gorm.io/gorm"

	"gallery/internal/listquery"
)

// listStore is the GORM-backed listquery.Store shared by every list endpoint.
type listStore[T any] struct {
	db       *gorm.DB
	mapping  Mapping
	preloads []string
}

func newListStore[T any](db *gorm.DB, mapping Mapping, preloads ...string) *listStore[T] {
	return &listStore[T]{db: db, mapping: mapping, preloads: preloads}
}

// Count counts rows matching where, ignoring any window.
func (s *listStore[T]) Count(ctx context.Context, where []listquery.Clause) (int64, error) {
	tx, err := s.mapping.Where(s.db.WithContext(ctx).Model(new(T)), where)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Find filters, orders and then windows the rows.
func (s *listStore[T]) Find(ctx context.Context, q listquery.Query) ([]T, error) {
	tx := s.db.WithContext(ctx).Model(new(T)).Select(s.mapping.Selects())
	tx, err := s.mapping.Where(tx, q.Where)
	if err != nil {
		return nil, err
	}
	if tx, err = s.mapping.Order(tx, q.Sort); err != nil {
		return nil, err
	}
	for _, p := range s.preloads {
		tx = tx.Preload(p)
	}
	var rows []T
	if err := tx.Offset(q.Skip()).Limit(q.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
