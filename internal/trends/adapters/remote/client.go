// Package remote fetches keyword search-volume series from the upstream trend API.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"trendsniper-service/internal/trends/core/domain"
	"trendsniper-service/internal/trends/core/ports"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Config struct {
	Endpoint     string
	Timeout      time.Duration
	RetryCount   int
	RetryWait    time.Duration
	UserAgent    string
	RequestsPerS float64
	Burst        int
}

// apiResponse is the upstream wire shape.
type apiResponse struct {
	Keywords []apiKeyword `json:"keywords"`
}

type apiKeyword struct {
	Keyword   string     `json:"keyword"`
	TrendData []apiPoint `json:"trend_data"`
}

type apiPoint struct {
	Date         string   `json:"date"`
	SearchVolume *float64 `json:"search_volume"`
}

type TrendClient struct {
	client   *resty.Client
	endpoint string
	limiter  *rate.Limiter
	log      logrus.FieldLogger
}

var _ ports.TrendSourcePort = (*TrendClient)(nil)

func NewTrendClient(cfg Config, log logrus.FieldLogger) *TrendClient {
	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	client.SetRetryCount(cfg.RetryCount)
	if cfg.RetryWait > 0 {
		client.SetRetryWaitTime(cfg.RetryWait)
		client.SetRetryMaxWaitTime(cfg.RetryWait * 4)
	}
	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		return r != nil && r.StatusCode() >= http.StatusInternalServerError
	})

	limit := rate.Inf
	if cfg.RequestsPerS > 0 {
		limit = rate.Limit(cfg.RequestsPerS)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &TrendClient{
		client:   client,
		endpoint: cfg.Endpoint,
		limiter:  rate.NewLimiter(limit, burst),
		log:      log,
	}
}

func (c *TrendClient) FetchSeries(ctx context.Context, q ports.SeriesQuery) ([]domain.KeyedSeries, error) {
	if len(q.Keywords) == 0 {
		return []domain.KeyedSeries{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("keywords", strings.Join(q.Keywords, ",")).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
	}

	c.log.WithFields(logrus.Fields{
		"status":   resp.StatusCode(),
		"keywords": len(q.Keywords),
		"took":     time.Since(start),
	}).Debug("trend api responded")

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: upstream status %d", ports.ErrSourceUnavailable, resp.StatusCode())
	}

	var body apiResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrInvalidPayload, err)
	}

	return decodeSeries(body)
}

// decodeSeries validates the wire payload and converts it into typed series.
func decodeSeries(body apiResponse) ([]domain.KeyedSeries, error) {
	out := make([]domain.KeyedSeries, 0, len(body.Keywords))

	for i, kw := range body.Keywords {
		keyword := domain.NormalizeKeyword(kw.Keyword)
		if keyword == "" {
			return nil, fmt.Errorf("%w: keywords[%d] has no keyword", ports.ErrInvalidPayload, i)
		}

		points := make([]domain.Point, 0, len(kw.TrendData))
		for j, p := range kw.TrendData {
			d, err := domain.ParseDate(p.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: %s trend_data[%d]: %v", ports.ErrInvalidPayload, keyword, j, err)
			}
			if p.SearchVolume == nil {
				return nil, fmt.Errorf("%w: %s trend_data[%d]: missing search_volume", ports.ErrInvalidPayload, keyword, j)
			}
			v := *p.SearchVolume
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s trend_data[%d]: search_volume %v out of range", ports.ErrInvalidPayload, keyword, j, v)
			}
			points = append(points, domain.Point{Date: d, Value: v})
		}

		out = append(out, domain.KeyedSeries{Keyword: keyword, Points: points})
	}

	return out, nil
}
