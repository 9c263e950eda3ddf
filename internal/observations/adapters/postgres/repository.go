package postgres

import (
	"context"

	"trendsniper-service/internal/observations/core/domain"
	"trendsniper-service/internal/observations/core/ports"
)

type ObservationRepository struct {
	db DB
}

func NewObservationRepository(db DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

var _ ports.ObservationRepositoryPort = (*ObservationRepository)(nil)

// Last write wins per (keyword, observed_on). The WHERE clause turns a
// no-op rewrite into zero affected rows.
const upsertObservationSQL = `
INSERT INTO trend_observations (
    keyword,
    observed_on,
    search_volume,
    source
) VALUES (
    $1, $2, $3, $4
)
ON CONFLICT (keyword, observed_on) DO UPDATE
SET search_volume = EXCLUDED.search_volume,
    source        = EXCLUDED.source,
    updated_at    = now()
WHERE trend_observations.search_volume IS DISTINCT FROM EXCLUDED.search_volume;
`

func (r *ObservationRepository) UpsertObservation(ctx context.Context, o *domain.Observation) (bool, error) {
	res, err := r.db.ExecContext(ctx, upsertObservationSQL,
		o.Keyword,
		o.ObservedOn.Time(),
		o.SearchVolume,
		o.Source,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1 -> inserted or value changed
	// rows == 0 -> same value already stored
	return rows > 0, nil
}
