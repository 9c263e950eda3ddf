package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"trendsniper-service/internal/observations/core/domain"
	"trendsniper-service/internal/observations/core/ports"
	trenddomain "trendsniper-service/internal/trends/core/domain"
)

var (
	ErrInvalidObservation = errors.New("invalid observation")
	ErrFutureDate         = errors.New("observation date cannot be in the future")
)

const defaultSource = "manual"

type RecordObservationUseCase struct {
	repo ports.ObservationRepositoryPort
	now  func() time.Time
}

func NewRecordObservationUseCase(repo ports.ObservationRepositoryPort) *RecordObservationUseCase {
	return &RecordObservationUseCase{repo: repo, now: time.Now}
}

type RecordObservationInput struct {
	Keyword      string
	Date         string // YYYY-MM-DD or RFC3339
	SearchVolume float64
	Source       string
}

func (uc *RecordObservationUseCase) Execute(ctx context.Context, in RecordObservationInput) (bool, error) {
	o, err := uc.toObservation(in)
	if err != nil {
		return false, err
	}

	changed, err := uc.repo.UpsertObservation(ctx, o)
	if err != nil {
		return false, err
	}

	return changed, nil
}

type BulkRecordInput struct {
	Observations []RecordObservationInput
}

type BulkRecordResult struct {
	Stored    int
	Unchanged int
}

// BulkRecord validates every observation before writing any of them.
func (uc *RecordObservationUseCase) BulkRecord(ctx context.Context, in BulkRecordInput) (BulkRecordResult, error) {
	var res BulkRecordResult

	obs := make([]*domain.Observation, 0, len(in.Observations))
	for i, raw := range in.Observations {
		o, err := uc.toObservation(raw)
		if err != nil {
			return res, fmt.Errorf("observations[%d]: %w", i, err)
		}
		obs = append(obs, o)
	}

	for _, o := range obs {
		changed, err := uc.repo.UpsertObservation(ctx, o)
		if err != nil {
			return res, err
		}

		if changed {
			res.Stored++
		} else {
			res.Unchanged++
		}
	}

	return res, nil
}

func (uc *RecordObservationUseCase) toObservation(in RecordObservationInput) (*domain.Observation, error) {
	keyword := trenddomain.NormalizeKeyword(in.Keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrInvalidObservation)
	}

	day, err := trenddomain.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidObservation, err)
	}

	v := in.SearchVolume
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: search_volume must be a non-negative number", ErrInvalidObservation)
	}

	if day.After(trenddomain.DateOf(uc.now().UTC())) {
		return nil, ErrFutureDate
	}

	source := in.Source
	if source == "" {
		source = defaultSource
	}

	return &domain.Observation{
		Keyword:      keyword,
		ObservedOn:   day,
		SearchVolume: v,
		Source:       source,
	}, nil
}
