package domain

import (
	trenddomain "trendsniper-service/internal/trends/core/domain"
)

// Observation is one day's search volume for a keyword.
type Observation struct {
	Keyword      string
	ObservedOn   trenddomain.Date
	SearchVolume float64
	Source       string // e.g. "trend-api", "manual"
}
