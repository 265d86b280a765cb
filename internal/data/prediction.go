package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"solar-advisor/internal/model"
)

const predictionService = "Prediction"

// PredictionClient calls a rainy-day prediction service (POST {state}).
type PredictionClient struct {
	URL    string
	Client *http.Client
}

// NewPredictionClient creates a prediction client. A zero timeout defaults to 30s.
func NewPredictionClient(url string, timeout time.Duration) *PredictionClient {
	return &PredictionClient{
		URL:    url,
		Client: newHTTPClient(timeout),
	}
}

type predictRequest struct {
	State string `json:"state"`
}

// predictResponse accepts numbers encoded as floats (18.0) and the
// {"error": "..."} body some services return with a 200 for unknown states.
type predictResponse struct {
	State              string  `json:"state"`
	NextMonth          float64 `json:"next_month"`
	DaysInNextMonth    float64 `json:"days_in_next_month"`
	PredictedRainyDays float64 `json:"predicted_rainy_days"`
	Error              string  `json:"error"`
}

// Predict fetches next month's day count and predicted rainy days for state.
func (c *PredictionClient) Predict(ctx context.Context, state string) (*model.Prediction, error) {
	state = strings.TrimSpace(state)
	if state == "" {
		return nil, &model.ValidationError{Fields: []string{"state"}}
	}

	status, raw, err := postJSON(ctx, c.Client, predictionService, c.URL, predictRequest{State: state})
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		log.Printf("[Prediction] Error: state %q not recognized", state)
		return nil, &UpstreamError{
			Service:    predictionService,
			StatusCode: status,
			Code:       CodeUnknownState,
			Message:    fmt.Sprintf("State '%s' not recognized by the model.", state),
			Raw:        string(raw),
		}
	case status < 200 || status > 299:
		log.Printf("[Prediction] Error: status %d (state=%s)", status, state)
		return nil, &UpstreamError{
			Service:    predictionService,
			StatusCode: status,
			Code:       CodeUpstreamStatus,
			Message:    fmt.Sprintf("Prediction service responded with status %d", status),
			Raw:        string(raw),
		}
	}

	var body predictResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &UpstreamError{
			Service:    predictionService,
			StatusCode: status,
			Code:       CodeUnexpectedResponse,
			Message:    fmt.Sprintf("failed to decode prediction: %v", err),
			Raw:        string(raw),
			Err:        err,
		}
	}
	if body.Error != "" {
		log.Printf("[Prediction] Error: %s (state=%s)", body.Error, state)
		return nil, &UpstreamError{
			Service:    predictionService,
			StatusCode: http.StatusNotFound,
			Code:       CodeUnknownState,
			Message:    body.Error,
			Raw:        string(raw),
		}
	}

	pred := model.Prediction{
		State:              body.State,
		NextMonth:          int(math.Round(body.NextMonth)),
		DaysInNextMonth:    int(math.Round(body.DaysInNextMonth)),
		PredictedRainyDays: int(math.Round(body.PredictedRainyDays)),
	}
	if pred.NextMonth < 1 || pred.NextMonth > 12 {
		return nil, &UpstreamError{
			Service:    predictionService,
			StatusCode: status,
			Code:       CodeUnexpectedResponse,
			Message:    fmt.Sprintf("prediction has next_month %d, want 1..12", pred.NextMonth),
			Raw:        string(raw),
		}
	}
	if pred.DaysInNextMonth <= 0 {
		return nil, &UpstreamError{
			Service:    predictionService,
			StatusCode: status,
			Code:       CodeUnexpectedResponse,
			Message:    "prediction is missing days_in_next_month",
			Raw:        string(raw),
		}
	}
	if pred.State == "" {
		pred.State = state
	}

	log.Printf("[Prediction] Success: state=%s month=%d rainy=%d/%d",
		pred.State, pred.NextMonth, pred.PredictedRainyDays, pred.DaysInNextMonth)
	return &pred, nil
}
