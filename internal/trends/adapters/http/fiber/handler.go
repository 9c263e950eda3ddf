package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"trendsniper-service/internal/trends/core/aggregator"
	"trendsniper-service/internal/trends/core/domain"
	"trendsniper-service/internal/trends/core/ports"
	"trendsniper-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Palette cycles by keyword position so a keyword keeps its colour across
// the legend, the lines and the growth badges.
var Palette = []string{
	"#a855f7", // purple
	"#3b82f6", // blue
	"#10b981", // green
	"#f59e0b", // orange
	"#ef4444", // red
}

type CompareTrendsUseCase interface {
	Execute(ctx context.Context, in usecase.CompareTrendsInput) (*domain.TrendComparison, error)
}

type TrendHandler struct {
	uc  CompareTrendsUseCase
	log logrus.FieldLogger
}

func NewTrendHandler(uc CompareTrendsUseCase, log logrus.FieldLogger) *TrendHandler {
	return &TrendHandler{uc: uc, log: log}
}

// CompareTrends godoc
// @Summary Compare keyword search trends
// @Description Aligns the search-volume series of up to five keywords on one date axis and reports growth per keyword
// @Tags Trends
// @Produce json
// @Param keywords query string true "Comma separated keywords, e.g. shoes,hats"
// @Param source query string false "Series source: remote | stored"
// @Param from query string false "First day (YYYY-MM-DD), inclusive"
// @Param to query string false "Last day (YYYY-MM-DD), inclusive"
// @Success 200 {object} TrendComparisonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /trends [get]
func (h *TrendHandler) CompareTrends(c *fiber.Ctx) error {
	rawKeywords := c.Query("keywords", "")
	if strings.TrimSpace(rawKeywords) == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "keywords is required",
		})
	}

	from, err := parseOptionalDate(c.Query("from", ""))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'from' parameter",
		})
	}
	to, err := parseOptionalDate(c.Query("to", ""))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'to' parameter",
		})
	}

	in := usecase.CompareTrendsInput{
		Keywords: strings.Split(rawKeywords, ","),
		Source:   c.Query("source", ""),
		From:     from,
		To:       to,
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoKeywords),
			errors.Is(err, usecase.ErrTooManyKeywords),
			errors.Is(err, usecase.ErrKeywordTooLong),
			errors.Is(err, usecase.ErrDuplicateKeyword),
			errors.Is(err, usecase.ErrInvalidDateRange),
			errors.Is(err, usecase.ErrUnknownSource),
			errors.Is(err, aggregator.ErrDuplicateKeyword),
			errors.Is(err, aggregator.ErrEmptyKeyword):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: err.Error(),
			})
		case errors.Is(err, ports.ErrSourceUnavailable),
			errors.Is(err, ports.ErrInvalidPayload):
			h.log.WithError(err).Warn("trend source failed")
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "upstream_error",
				Message: "failed to fetch trend data",
			})
		default:
			h.log.WithError(err).Error("compare trends failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

func parseOptionalDate(s string) (*domain.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toResponse(res *domain.TrendComparison) TrendComparisonResponse {
	colors := make(map[string]string, len(res.Keywords))
	resp := TrendComparisonResponse{
		Keywords: make([]KeywordResponse, 0, len(res.Keywords)),
		Rows:     make([]AlignedRowResponse, 0, len(res.Rows)),
		Growth:   make([]GrowthResponse, 0, len(res.Growth)),
	}

	for i, k := range res.Keywords {
		colors[k] = Palette[i%len(Palette)]
		resp.Keywords = append(resp.Keywords, KeywordResponse{Keyword: k, Color: colors[k]})
	}

	for _, r := range res.Rows {
		resp.Rows = append(resp.Rows, AlignedRowResponse{
			Date:   r.Date.String(),
			Values: KeywordValues{keys: res.Keywords, values: r.Values},
		})
	}

	for _, g := range res.Growth {
		resp.Growth = append(resp.Growth, GrowthResponse{
			Keyword:       g.Keyword,
			FirstValue:    g.FirstValue,
			LastValue:     g.LastValue,
			GrowthPercent: g.GrowthPercent,
			GrowthLabel:   growthLabel(g.GrowthPercent),
			Trend:         string(g.Trend),
			Color:         colors[g.Keyword],
		})
	}

	return resp
}

// growthLabel renders e.g. "+12.5%", "-3.0%", "0.0%".
func growthLabel(pct float64) string {
	label := decimal.NewFromFloat(pct).StringFixed(1) + "%"
	if pct > 0 {
		return "+" + label
	}
	return label
}
