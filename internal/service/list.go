package service

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	apperrors "gallery/internal/errors"
	"gallery/internal/listquery"
)

// runList validates raw, then counts and fetches one page. Validation errors are
// returned before the store is touched; store errors are logged and wrapped.
func runList[T any](ctx context.Context, logger *zap.Logger, store listquery.Store[T], schema listquery.Schema, raw url.Values, now time.Time) (listquery.Result[T], error) {
	q, err := listquery.Resolve(schema, raw, now)
	if err != nil {
		return listquery.Result[T]{}, err
	}
	res, err := listquery.Run(ctx, store, q)
	if err != nil {
		logger.Error("list query failed", zap.String("resource", schema.Resource), zap.Error(err))
		return listquery.Result[T]{}, apperrors.Backend("fetch "+schema.Resource, err)
	}
	return res, nil
}
