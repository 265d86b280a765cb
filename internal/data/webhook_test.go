package data

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solar-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookServer(t *testing.T, status int, body string, seen *map[string]any, header *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		if header != nil {
			*header = r.Header.Clone()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWebhookAdvise(t *testing.T) {
	var seen map[string]any
	var header http.Header
	srv := webhookServer(t, http.StatusOK, `{"analysis":"Good exposure","recommendation":"Install 8 kW"}`, &seen, &header)

	c := NewWebhookClient(srv.URL, time.Second, true)
	ctx := WithRequestID(context.Background(), "3f1c8a2e-0000-4000-8000-000000000001")
	in := model.EnergyInputs{PanelCapacity: 5, SellRate: 0.3, AvgUsage: 10}

	advice, err := c.Advise(ctx, model.FeatureEnergySelling, in)
	require.NoError(t, err)
	assert.Equal(t, "Good exposure", advice.Analysis)
	assert.Equal(t, "Install 8 kW", advice.Recommendation)

	assert.Equal(t, "energy_selling", seen["feature"])
	assert.Equal(t, 5.0, seen["panel_capacity"])
	assert.Equal(t, "3f1c8a2e-0000-4000-8000-000000000001", header.Get(RequestIDHeader))
}

func TestWebhookAdviseRepairsSyntax(t *testing.T) {
	body := `{"analysis": "Roof is shaded", "recommendation": "Trim trees",}`
	srv := webhookServer(t, http.StatusOK, body, nil, nil)

	advice, err := NewWebhookClient(srv.URL, time.Second, true).Advise(context.Background(), model.FeatureSolarPlanning, map[string]any{"Location": "Johor"})
	require.NoError(t, err)
	assert.Equal(t, "Trim trees", advice.Recommendation)

	_, err = NewWebhookClient(srv.URL, time.Second, false).Advise(context.Background(), model.FeatureSolarPlanning, map[string]any{"Location": "Johor"})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, CodeUnexpectedResponse, ue.Code)
	assert.Equal(t, body, ue.Raw)
}

func TestWebhookAdviseRepairsFencedBody(t *testing.T) {
	body := "```json\n{\"analysis\": \"A\", \"recommendation\": \"R\"}\n```"
	srv := webhookServer(t, http.StatusOK, body, nil, nil)

	advice, err := NewWebhookClient(srv.URL, time.Second, true).Advise(context.Background(), model.FeatureEnergySelling, model.EnergyInputs{})
	require.NoError(t, err)
	assert.Equal(t, model.Advice{Analysis: "A", Recommendation: "R"}, *advice)

	_, err = NewWebhookClient(srv.URL, time.Second, false).Advise(context.Background(), model.FeatureEnergySelling, model.EnergyInputs{})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, CodeUnexpectedResponse, ue.Code)
}

func TestWebhookAdviseErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "workflow crashed", code: CodeUpstreamStatus},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"no webhook"}`, code: CodeUpstreamStatus},
		{name: "wrong shape", status: http.StatusOK, body: `{"output":"hello"}`, code: CodeUnexpectedResponse},
		{name: "empty body", status: http.StatusOK, body: "", code: CodeUnexpectedResponse},
		{name: "empty fields", status: http.StatusOK, body: `{"analysis":"","recommendation":""}`, code: CodeUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := webhookServer(t, tt.status, tt.body, nil, nil)
			_, err := NewWebhookClient(srv.URL, time.Second, true).Advise(context.Background(), model.FeatureEnergySelling, model.EnergyInputs{})

			var ue *UpstreamError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, tt.code, ue.Code)
			assert.Equal(t, tt.status, ue.StatusCode)
			assert.Equal(t, tt.body, ue.Raw)
		})
	}
}

func TestWebhookNotConfigured(t *testing.T) {
	_, err := NewWebhookClient("", time.Second, true).Advise(context.Background(), model.FeatureSolarPlanning, map[string]any{})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, CodeNotConfigured, ue.Code)
}

func TestWebhookUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewWebhookClient(url, time.Second, true).Advise(context.Background(), model.FeatureSolarPlanning, map[string]any{})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, CodeUnreachable, ue.Code)
	assert.Zero(t, ue.StatusCode)
}

func TestWebhookRejectsNonObjectPayload(t *testing.T) {
	srv := webhookServer(t, http.StatusOK, `{"analysis":"a","recommendation":"b"}`, nil, nil)
	_, err := NewWebhookClient(srv.URL, time.Second, true).Advise(context.Background(), model.FeatureSolarPlanning, []int{1, 2})
	require.Error(t, err)
	var ue *UpstreamError
	assert.False(t, errors.As(err, &ue))
}
