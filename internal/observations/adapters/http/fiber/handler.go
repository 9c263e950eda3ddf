package fiber

import (
	"context"
	"errors"
	"net/http"

	"trendsniper-service/internal/observations/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecordObservationUseCase interface {
	Execute(ctx context.Context, in usecase.RecordObservationInput) (bool, error)
	BulkRecord(ctx context.Context, in usecase.BulkRecordInput) (usecase.BulkRecordResult, error)
}

type ObservationHandler struct {
	recordUC RecordObservationUseCase
}

func NewObservationHandler(recordUC RecordObservationUseCase) *ObservationHandler {
	return &ObservationHandler{recordUC: recordUC}
}

// RecordObservation godoc
// @Summary Record a search-volume observation
// @Description Stores one keyword/day value; a later value for the same day replaces the earlier one
// @Tags Observations
// @Accept json
// @Produce json
// @Param request body RecordObservationRequest true "Observation payload"
// @Success 201 {object} RecordObservationResponse
// @Success 200 {object} RecordObservationResponse "Value already stored"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /observations [post]
func (h *ObservationHandler) RecordObservation(c *fiber.Ctx) error {
	var req RecordObservationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	changed, err := h.recordUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return writeUseCaseError(c, err)
	}

	if !changed {
		return c.Status(http.StatusOK).JSON(RecordObservationResponse{
			Status: "unchanged",
		})
	}

	return c.Status(http.StatusCreated).JSON(RecordObservationResponse{
		Status: "stored",
	})
}

// BulkRecordObservations godoc
// @Summary Bulk record observations
// @Description Validates every observation first, then stores them individually
// @Tags Observations
// @Accept json
// @Produce json
// @Param request body BulkRecordObservationsRequest true "Bulk observation payload"
// @Success 201 {object} BulkRecordObservationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /observations/bulk [post]
func (h *ObservationHandler) BulkRecordObservations(c *fiber.Ctx) error {
	var req BulkRecordObservationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Observations) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "observations_list_required",
		})
	}

	inputs := make([]usecase.RecordObservationInput, len(req.Observations))
	for i, o := range req.Observations {
		inputs[i] = toInput(o)
	}

	result, err := h.recordUC.BulkRecord(
		c.UserContext(),
		usecase.BulkRecordInput{Observations: inputs},
	)
	if err != nil {
		return writeUseCaseError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkRecordObservationsResponse{
		Stored:    result.Stored,
		Unchanged: result.Unchanged,
	})
}

func toInput(r RecordObservationRequest) usecase.RecordObservationInput {
	return usecase.RecordObservationInput{
		Keyword:      r.Keyword,
		Date:         r.Date,
		SearchVolume: r.SearchVolume,
		Source:       r.Source,
	}
}

func writeUseCaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidObservation),
		errors.Is(err, usecase.ErrFutureDate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_observation",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
