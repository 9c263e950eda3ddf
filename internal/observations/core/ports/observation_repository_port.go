package ports

import (
	"context"

	"trendsniper-service/internal/observations/core/domain"
)

type ObservationRepositoryPort interface {
	// UpsertObservation:
	//   changed = true,  err = nil  -> new row or different value stored
	//   changed = false, err = nil  -> identical value already stored
	//   changed = false, err != nil -> DB error
	UpsertObservation(ctx context.Context, o *domain.Observation) (changed bool, err error)
}
