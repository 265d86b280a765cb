package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"solar-advisor/internal/config"
	"solar-advisor/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct{}

func (stubAdvisor) Advise(context.Context, model.Feature, any) (*model.Advice, error) {
	return &model.Advice{Analysis: "ok", Recommendation: "ok"}, nil
}

type stubForecaster struct{}

func (stubForecaster) Predict(_ context.Context, state string) (*model.Prediction, error) {
	return &model.Prediction{State: state, NextMonth: 2, DaysInNextMonth: 28, PredictedRainyDays: 10}, nil
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(config.Default(), Deps{Advisor: stubAdvisor{}, Forecaster: stubForecaster{}, States: []string{"johor"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/", "").Code)

	w := serve(t, r, http.MethodGet, "/api/v1/states", "")
	assert.JSONEq(t, `{"states":["johor"]}`, w.Body.String())

	w = serve(t, r, http.MethodPost, "/api/v1/solar-income", `{"state":"johor","panel_capacity":2,"sell_rate":1}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, http.StatusNotFound, serve(t, r, http.MethodGet, "/missing", "").Code)
}

func TestNewPredictRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewPredictRouter(config.Default(), stubForecaster{})

	w := serve(t, r, http.MethodPost, "/predict", `{"state":"penang"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"penang","next_month":2,"days_in_next_month":28,"predicted_rainy_days":10}`, w.Body.String())

	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/health", "").Code)
}
