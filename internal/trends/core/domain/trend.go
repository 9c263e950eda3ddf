package domain

import "strings"

type Trend string

const (
	TrendRising    Trend = "rising"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

type Point struct {
	Date  Date
	Value float64 // search volume, >= 0
}

// KeyedSeries is the observations of one tracked keyword. Points may be unsorted.
type KeyedSeries struct {
	Keyword string
	Points  []Point
}

type GrowthSummary struct {
	Keyword       string
	FirstValue    float64
	LastValue     float64
	GrowthPercent float64
	Trend         Trend
}

// AlignedRow holds one value per keyword for a single date; absent observations are 0.
type AlignedRow struct {
	Date   Date
	Values map[string]float64
}

type TrendComparison struct {
	Keywords []string // request order, used for legend/colour assignment
	Rows     []AlignedRow
	Growth   []GrowthSummary
}

// ClassifyGrowth maps the sign of a growth percentage to a Trend.
func ClassifyGrowth(growthPercent float64) Trend {
	switch {
	case growthPercent > 0:
		return TrendRising
	case growthPercent < 0:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func NormalizeKeyword(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
