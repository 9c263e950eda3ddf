package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"trendsniper-service/internal/trends/core/domain"
	"trendsniper-service/internal/trends/core/ports"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*TrendClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger, _ := logtest.NewNullLogger()
	c := NewTrendClient(Config{
		Endpoint:   srv.URL,
		Timeout:    2 * time.Second,
		RetryCount: 1,
		RetryWait:  time.Millisecond,
		UserAgent:  "trendsniper-test",
	}, logger)
	return c, srv
}

func TestFetchSeries_Success(t *testing.T) {
	var gotKeywords, gotUA string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKeywords = r.URL.Query().Get("keywords")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"keywords":[
			{"keyword":"Shoes","trend_data":[
				{"date":"2024-01-03","search_volume":30},
				{"date":"2024-01-01","search_volume":10}
			]},
			{"keyword":"hats","trend_data":[]}
		]}`))
	})

	series, err := c.FetchSeries(context.Background(), ports.SeriesQuery{Keywords: []string{"shoes", "hats"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKeywords != "shoes,hats" {
		t.Fatalf("expected keywords=shoes,hats, got %q", gotKeywords)
	}
	if gotUA != "trendsniper-test" {
		t.Fatalf("expected user agent header, got %q", gotUA)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[0].Keyword != "shoes" {
		t.Fatalf("expected normalized keyword, got %q", series[0].Keyword)
	}
	if len(series[0].Points) != 2 || series[0].Points[0].Date != domain.NewDate(2024, time.January, 3) {
		t.Fatalf("unexpected points: %+v", series[0].Points)
	}
	if len(series[1].Points) != 0 {
		t.Fatalf("expected empty hats series")
	}
}

func TestFetchSeries_NoKeywordsSkipsCall(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	series, err := c.FetchSeries(context.Background(), ports.SeriesQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 0 || atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestFetchSeries_UpstreamErrorRetriedThenFails(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.FetchSeries(context.Background(), ports.SeriesQuery{Keywords: []string{"shoes"}})
	if !errors.Is(err, ports.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected 1 retry (2 calls), got %d", n)
	}
}

func TestFetchSeries_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.FetchSeries(context.Background(), ports.SeriesQuery{Keywords: []string{"shoes"}})
	if !errors.Is(err, ports.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected a single call, got %d", n)
	}
}

func TestFetchSeries_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not_json", `<html>oops</html>`},
		{"missing_keyword", `{"keywords":[{"keyword":"","trend_data":[]}]}`},
		{"bad_date", `{"keywords":[{"keyword":"shoes","trend_data":[{"date":"soon","search_volume":1}]}]}`},
		{"negative_volume", `{"keywords":[{"keyword":"shoes","trend_data":[{"date":"2024-01-01","search_volume":-1}]}]}`},
		{"missing_volume", `{"keywords":[{"keyword":"shoes","trend_data":[{"date":"2024-01-01"}]}]}`},
		{"wrong_type", `{"keywords":[{"keyword":"shoes","trend_data":[{"date":"2024-01-01","search_volume":"lots"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			series, err := c.FetchSeries(context.Background(), ports.SeriesQuery{Keywords: []string{"shoes"}})
			if !errors.Is(err, ports.ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload, got %v", err)
			}
			if series != nil {
				t.Fatalf("expected nil series on invalid payload")
			}
		})
	}
}

func TestFetchSeries_CanceledContext(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"keywords":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchSeries(ctx, ports.SeriesQuery{Keywords: []string{"shoes"}})
	if !errors.Is(err, ports.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}
