package usecase

import (
	"context"
	"errors"
	"fmt"

	"trendsniper-service/internal/trends/core/aggregator"
	"trendsniper-service/internal/trends/core/domain"
	"trendsniper-service/internal/trends/core/ports"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxKeywords = 5
	MaxKeywordLength   = 50
)

var (
	ErrNoKeywords       = errors.New("at least one keyword is required")
	ErrTooManyKeywords  = errors.New("too many keywords")
	ErrKeywordTooLong   = errors.New("keyword too long")
	ErrDuplicateKeyword = errors.New("duplicate keyword")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrUnknownSource    = errors.New("unknown trend source")
)

type CompareTrendsInput struct {
	Keywords []string
	Source   string // "" -> default source
	From     *domain.Date
	To       *domain.Date
}

type CompareTrendsUseCase struct {
	sources       map[string]ports.TrendSourcePort
	defaultSource string
	maxKeywords   int
	log           logrus.FieldLogger
}

func NewCompareTrendsUseCase(
	sources map[string]ports.TrendSourcePort,
	defaultSource string,
	maxKeywords int,
	log logrus.FieldLogger,
) *CompareTrendsUseCase {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &CompareTrendsUseCase{
		sources:       sources,
		defaultSource: defaultSource,
		maxKeywords:   maxKeywords,
		log:           log,
	}
}

// Execute validates the request, pulls series from the selected source and
// aligns them. Invalid input never reaches the source.
func (uc *CompareTrendsUseCase) Execute(ctx context.Context, in CompareTrendsInput) (*domain.TrendComparison, error) {
	keywords, err := uc.normalizeKeywords(in.Keywords)
	if err != nil {
		return nil, err
	}

	if in.From != nil && in.To != nil && in.From.After(*in.To) {
		return nil, ErrInvalidDateRange
	}

	sourceName := in.Source
	if sourceName == "" {
		sourceName = uc.defaultSource
	}
	source, ok := uc.sources[sourceName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, sourceName)
	}

	fetched, err := source.FetchSeries(ctx, ports.SeriesQuery{
		Keywords: keywords,
		From:     in.From,
		To:       in.To,
	})
	if err != nil {
		return nil, err
	}

	series := uc.rekey(keywords, fetched, in.From, in.To)

	rows, growth, err := aggregator.Aggregate(series)
	if err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"source":   sourceName,
		"keywords": keywords,
		"rows":     len(rows),
	}).Debug("trend comparison built")

	return &domain.TrendComparison{
		Keywords: keywords,
		Rows:     rows,
		Growth:   growth,
	}, nil
}

func (uc *CompareTrendsUseCase) normalizeKeywords(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, k := range raw {
		k = domain.NormalizeKeyword(k)
		if k == "" {
			continue
		}
		if len([]rune(k)) > MaxKeywordLength {
			return nil, fmt.Errorf("%w: %q exceeds %d characters", ErrKeywordTooLong, k, MaxKeywordLength)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKeyword, k)
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}

	if len(out) == 0 {
		return nil, ErrNoKeywords
	}
	if len(out) > uc.maxKeywords {
		return nil, fmt.Errorf("%w: %d given, at most %d allowed", ErrTooManyKeywords, len(out), uc.maxKeywords)
	}
	return out, nil
}

// rekey orders the source answer by the requested keywords. A requested keyword
// the source did not return becomes an empty series; unrequested ones are dropped.
func (uc *CompareTrendsUseCase) rekey(keywords []string, fetched []domain.KeyedSeries, from, to *domain.Date) []domain.KeyedSeries {
	byKeyword := make(map[string][]domain.Point, len(fetched))
	for _, s := range fetched {
		k := domain.NormalizeKeyword(s.Keyword)
		byKeyword[k] = append(byKeyword[k], s.Points...)
	}

	out := make([]domain.KeyedSeries, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, domain.KeyedSeries{
			Keyword: k,
			Points:  withinRange(byKeyword[k], from, to),
		})
		delete(byKeyword, k)
	}

	for k := range byKeyword {
		uc.log.WithField("keyword", k).Warn("source returned unrequested keyword, ignoring")
	}
	return out
}

func withinRange(points []domain.Point, from, to *domain.Date) []domain.Point {
	if from == nil && to == nil {
		return points
	}
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		if from != nil && p.Date.Before(*from) {
			continue
		}
		if to != nil && p.Date.After(*to) {
			continue
		}
		out = append(out, p)
	}
	return out
}
