package fiber

// RecordObservationRequest represents one search-volume observation
// @Description Observation DTO
type RecordObservationRequest struct {
	Keyword      string  `json:"keyword" example:"shoes"`
	Date         string  `json:"date" example:"2024-01-02"`
	SearchVolume float64 `json:"search_volume" example:"42"`
	Source       string  `json:"source" example:"manual"`
}

type RecordObservationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkRecordObservationsRequest struct {
	Observations []RecordObservationRequest `json:"observations"`
}

type BulkRecordObservationsResponse struct {
	Stored    int `json:"stored"`
	Unchanged int `json:"unchanged"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_observation"`
	Message string `json:"message" example:"keyword is required"`
}
