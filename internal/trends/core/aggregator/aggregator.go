// Package aggregator aligns independently sourced keyword series on one date
// axis and summarizes the growth of each series.
package aggregator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"trendsniper-service/internal/trends/core/domain"
)

var (
	ErrEmptyKeyword     = errors.New("keyword must not be empty")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
)

// Aggregate builds the dense date-aligned table and the growth summaries for
// series. Within one series a repeated date keeps the last value seen in
// input order. Input slices are never modified.
func Aggregate(series []domain.KeyedSeries) ([]domain.AlignedRow, []domain.GrowthSummary, error) {
	if err := checkKeywords(series); err != nil {
		return nil, nil, err
	}

	normalized := make([][]domain.Point, len(series))
	growth := make([]domain.GrowthSummary, 0, len(series))
	for i, s := range series {
		pts := normalizePoints(s.Points)
		normalized[i] = pts
		if len(pts) == 0 {
			continue
		}
		growth = append(growth, summarize(s.Keyword, pts))
	}

	dates := dateUnion(normalized)

	lookup := make([]map[domain.Date]float64, len(series))
	for i, pts := range normalized {
		m := make(map[domain.Date]float64, len(pts))
		for _, p := range pts {
			m[p.Date] = p.Value
		}
		lookup[i] = m
	}

	rows := make([]domain.AlignedRow, 0, len(dates))
	for _, d := range dates {
		values := make(map[string]float64, len(series))
		for i, s := range series {
			values[s.Keyword] = lookup[i][d] // zero when absent
		}
		rows = append(rows, domain.AlignedRow{Date: d, Values: values})
	}

	return rows, growth, nil
}

func checkKeywords(series []domain.KeyedSeries) error {
	seen := make(map[string]struct{}, len(series))
	for i, s := range series {
		if strings.TrimSpace(s.Keyword) == "" {
			return fmt.Errorf("%w: series #%d", ErrEmptyKeyword, i)
		}
		key := strings.ToLower(s.Keyword)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateKeyword, s.Keyword)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// normalizePoints returns a sorted copy with one point per date.
func normalizePoints(in []domain.Point) []domain.Point {
	if len(in) == 0 {
		return nil
	}
	pts := make([]domain.Point, len(in))
	copy(pts, in)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Date.Before(pts[j].Date)
	})

	// stable sort keeps input order inside a run of equal dates, so the
	// last element of each run is the last one seen
	out := pts[:0]
	for i, p := range pts {
		if i+1 < len(pts) && pts[i+1].Date == p.Date {
			continue
		}
		out = append(out, p)
	}
	return out
}

func summarize(keyword string, pts []domain.Point) domain.GrowthSummary {
	first := pts[0].Value
	last := pts[len(pts)-1].Value

	var pct float64
	if first > 0 {
		pct = (last - first) / first * 100
	}

	return domain.GrowthSummary{
		Keyword:       keyword,
		FirstValue:    first,
		LastValue:     last,
		GrowthPercent: pct,
		Trend:         domain.ClassifyGrowth(pct),
	}
}

func dateUnion(series [][]domain.Point) []domain.Date {
	seen := make(map[domain.Date]struct{})
	var dates []domain.Date
	for _, pts := range series {
		for _, p := range pts {
			if _, ok := seen[p.Date]; ok {
				continue
			}
			seen[p.Date] = struct{}{}
			dates = append(dates, p.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}
