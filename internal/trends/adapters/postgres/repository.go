package postgres

import (
	"context"
	"fmt"
	"time"

	"trendsniper-service/internal/trends/core/domain"
	"trendsniper-service/internal/trends/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// TrendRepository serves series from recorded observations.
type TrendRepository struct {
	db DB
}

func NewTrendRepository(db DB) *TrendRepository {
	return &TrendRepository{db: db}
}

var _ ports.TrendSourcePort = (*TrendRepository)(nil)

func (r *TrendRepository) FetchSeries(ctx context.Context, q ports.SeriesQuery) ([]domain.KeyedSeries, error) {
	if len(q.Keywords) == 0 {
		return []domain.KeyedSeries{}, nil
	}

	where := "keyword = ANY($1)"
	args := []any{pq.Array(q.Keywords)}
	argIndex := 2

	if q.From != nil {
		where += fmt.Sprintf(" AND observed_on >= $%d", argIndex)
		args = append(args, q.From.Time())
		argIndex++
	}
	if q.To != nil {
		where += fmt.Sprintf(" AND observed_on <= $%d", argIndex)
		args = append(args, q.To.Time())
		argIndex++
	}

	query := `
SELECT
    keyword,
    observed_on,
    search_volume
FROM trend_observations
WHERE ` + where + `
ORDER BY keyword, observed_on`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// rows arrive grouped by keyword
	var series []domain.KeyedSeries
	for rows.Next() {
		var kw string
		var day time.Time
		var volume float64

		if err := rows.Scan(&kw, &day, &volume); err != nil {
			return nil, err
		}

		if n := len(series); n == 0 || series[n-1].Keyword != kw {
			series = append(series, domain.KeyedSeries{Keyword: kw})
		}
		last := &series[len(series)-1]
		last.Points = append(last.Points, domain.Point{
			Date:  domain.DateOf(day.UTC()),
			Value: volume,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}
