package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"solar-advisor/internal/api/models"
	"solar-advisor/internal/data"
	"solar-advisor/internal/forecast"
	"solar-advisor/internal/model"
	"solar-advisor/internal/render"

	"github.com/gin-gonic/gin"
)

// Advisor sends a submission to the advisory workflow.
// *data.WebhookClient implements it.
type Advisor interface {
	Advise(ctx context.Context, feature model.Feature, payload any) (*model.Advice, error)
}

// Forecaster predicts next month's rainy days for a state.
// *data.PredictionClient and *forecast.Predictor implement it.
type Forecaster interface {
	Predict(ctx context.Context, state string) (*model.Prediction, error)
}

// errorDetail maps err onto an HTTP status and the JSON error envelope.
func errorDetail(err error) (int, models.ErrorDetail) {
	var ve *model.ValidationError
	var ue *data.UpstreamError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, validationDetail(ve)
	case errors.As(err, &ue):
		status := http.StatusBadGateway
		switch ue.Code {
		case data.CodeNotConfigured:
			status = http.StatusServiceUnavailable
		case data.CodeUnknownState:
			status = http.StatusNotFound
		}
		details := map[string]interface{}{"service": ue.Service}
		if ue.StatusCode != 0 {
			details["status_code"] = ue.StatusCode
		}
		if ue.Raw != "" {
			details["raw"] = ue.Raw
		}
		return status, models.ErrorDetail{Code: ue.Code, Message: ue.Message, Details: details}
	case errors.Is(err, forecast.ErrUnknownState):
		return http.StatusNotFound, models.ErrorDetail{
			Code:    data.CodeUnknownState,
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		}
	}
}

// validationDetail reports missing fields first; non-finite numbers are
// listed under details.invalid.
func validationDetail(ve *model.ValidationError) models.ErrorDetail {
	var messages []string
	details := map[string]interface{}{}
	code := "INVALID_FIELDS"
	if len(ve.Fields) > 0 {
		code = "MISSING_FIELDS"
		messages = append(messages, "Please fill in: "+strings.Join(ve.Fields, ", "))
		details["fields"] = ve.Fields
	}
	if len(ve.Invalid) > 0 {
		messages = append(messages, "Please enter a valid number for: "+strings.Join(ve.Invalid, ", "))
		details["invalid"] = ve.Invalid
	}
	return models.ErrorDetail{Code: code, Message: strings.Join(messages, ". "), Details: details}
}

func writeError(c *gin.Context, err error, extra map[string]interface{}) {
	status, detail := errorDetail(err)
	for k, v := range extra {
		if detail.Details == nil {
			detail.Details = map[string]interface{}{}
		}
		detail.Details[k] = v
	}
	c.JSON(status, models.ErrorResponse{Error: detail})
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// pageError maps err onto an HTTP status and the error block of a result page.
func pageError(err error) (int, *render.PageError) {
	status, detail := errorDetail(err)
	pe := &render.PageError{Message: detail.Message, Fields: model.MissingFields(err)}
	var ue *data.UpstreamError
	if errors.As(err, &ue) {
		pe.Raw = ue.Raw
	}
	return status, pe
}

func bindPageError(err error) *render.PageError {
	return &render.PageError{Message: fmt.Sprintf("Invalid form input: %v", err)}
}
