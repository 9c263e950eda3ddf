package ports

import (
	"context"
	"errors"

	"trendsniper-service/internal/trends/core/domain"
)

var (
	ErrSourceUnavailable = errors.New("trend source unavailable")
	ErrInvalidPayload    = errors.New("invalid trend payload")
)

type SeriesQuery struct {
	Keywords []string     // normalized, unique
	From     *domain.Date // optional, inclusive
	To       *domain.Date // optional, inclusive
}

type TrendSourcePort interface {
	// FetchSeries returns at most one series per requested keyword. Order and
	// completeness are not guaranteed; callers re-key the answer.
	FetchSeries(ctx context.Context, q SeriesQuery) ([]domain.KeyedSeries, error)
}
