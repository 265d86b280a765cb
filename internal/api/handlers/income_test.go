package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"solar-advisor/internal/api/models"
	"solar-advisor/internal/data"
	"solar-advisor/internal/forecast"
	"solar-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func november() *fakeForecaster {
	return &fakeForecaster{pred: &model.Prediction{NextMonth: 11, DaysInNextMonth: 30, PredictedRainyDays: 23}}
}

func TestIncomeProject(t *testing.T) {
	r := newRouter(t, &fakeAdvisor{}, november())

	w := postJSON(t, r, "/api/v1/solar-income", map[string]any{"state": "Kuala Lumpur", "panel_capacity": 4, "sell_rate": 0.5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SolarIncomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 23, resp.Prediction.PredictedRainyDays)
	assert.Equal(t, 7, resp.Projection.SunnyDays)
	assert.Equal(t, "20.00", resp.Projection.DailyProduction)
	// 20*7 + 20*0.3*23
	assert.Equal(t, "278.00", resp.Projection.MonthlyProduction)
	assert.Equal(t, "139.00", resp.Projection.MonthlyIncome)
}

func TestIncomeProjectErrors(t *testing.T) {
	tests := []struct {
		name       string
		forecaster *fakeForecaster
		body       map[string]any
		status     int
		code       string
	}{
		{
			name:       "missing fields",
			forecaster: november(),
			body:       map[string]any{"state": " "},
			status:     http.StatusBadRequest,
			code:       "MISSING_FIELDS",
		},
		{
			name:       "unknown state in process",
			forecaster: &fakeForecaster{err: fmt.Errorf("%w: %q", forecast.ErrUnknownState, "atlantis")},
			body:       map[string]any{"state": "atlantis", "panel_capacity": 4, "sell_rate": 0.5},
			status:     http.StatusNotFound,
			code:       data.CodeUnknownState,
		},
		{
			name:       "unknown state upstream",
			forecaster: &fakeForecaster{err: &data.UpstreamError{Service: "Prediction", StatusCode: 404, Code: data.CodeUnknownState, Message: "State 'atlantis' not recognized by the model."}},
			body:       map[string]any{"state": "atlantis", "panel_capacity": 4, "sell_rate": 0.5},
			status:     http.StatusNotFound,
			code:       data.CodeUnknownState,
		},
		{
			name:       "prediction service down",
			forecaster: &fakeForecaster{err: &data.UpstreamError{Service: "Prediction", Code: data.CodeUnreachable, Message: "Prediction could not be reached"}},
			body:       map[string]any{"state": "selangor", "panel_capacity": 4, "sell_rate": 0.5},
			status:     http.StatusBadGateway,
			code:       data.CodeUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t, &fakeAdvisor{}, tt.forecaster)
			w := postJSON(t, r, "/api/v1/solar-income", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestIncomeProjectForm(t *testing.T) {
	r := newRouter(t, &fakeAdvisor{}, november())

	form := url.Values{"state": {"selangor"}, "panel_capacity": {"4"}, "sell_rate": {"0.5"}}
	w, doc := postForm(t, r, "/solar-income", form)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Projected income for November: 139.00", doc.Find("#headline").Text())
	assert.Contains(t, doc.Find("#projection").Text(), "278.00")
	assert.Contains(t, doc.Find("#user-input").Text(), "selangor")
}

func TestIncomeProjectFormUnknownState(t *testing.T) {
	r := newRouter(t, &fakeAdvisor{}, &fakeForecaster{err: fmt.Errorf("%w: %q", forecast.ErrUnknownState, "atlantis")})

	form := url.Values{"state": {"atlantis"}, "panel_capacity": {"4"}, "sell_rate": {"0.5"}}
	w, doc := postForm(t, r, "/solar-income", form)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, doc.Find("#error").Text(), "atlantis")
	assert.Zero(t, doc.Find("#projection").Length())
}

func TestIncomeProjectFormNonFiniteInput(t *testing.T) {
	r := newRouter(t, &fakeAdvisor{}, november())

	form := url.Values{"state": {"selangor"}, "panel_capacity": {"Inf"}, "sell_rate": {"NaN"}}
	w, doc := postForm(t, r, "/solar-income", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, doc.Find("#error").Text(), "panel_capacity, sell_rate")
	assert.Zero(t, doc.Find("#projection").Length())
}
