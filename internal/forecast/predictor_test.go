package forecast

import (
	"context"
	"testing"
	"time"

	"solar-advisor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *model.RainModel {
	return &model.RainModel{States: map[string][]float64{
		"kuala_lumpur": {15.4, 13.2, 17.6, 20.1, 17.0, 12.5, 12.9, 14.2, 16.8, 20.6, 23.4, 19.5},
	}}
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 10, 0, 0, 0, time.UTC) }
}

func TestPredict(t *testing.T) {
	p := NewPredictor(testModel())
	p.Now = fixedClock(2026, time.October, 16)

	got, err := p.Predict(context.Background(), "Kuala Lumpur")
	require.NoError(t, err)
	assert.Equal(t, &model.Prediction{
		State:              "Kuala Lumpur",
		NextMonth:          11,
		DaysInNextMonth:    30,
		PredictedRainyDays: 23,
	}, got)
}

func TestPredictYearWrap(t *testing.T) {
	p := NewPredictor(testModel())
	p.Now = fixedClock(2026, time.December, 31)

	got, err := p.Predict(context.Background(), "kuala-lumpur")
	require.NoError(t, err)
	assert.Equal(t, 1, got.NextMonth)
	assert.Equal(t, 31, got.DaysInNextMonth)
	assert.Equal(t, 15, got.PredictedRainyDays)
}

func TestPredictUnknownState(t *testing.T) {
	p := NewPredictor(testModel())
	_, err := p.Predict(context.Background(), "atlantis")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestPredictCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPredictor(testModel()).Predict(ctx, "kuala_lumpur")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2025, time.February))
	assert.Equal(t, 31, DaysIn(2025, time.December))
	assert.Equal(t, 30, DaysIn(2025, time.April))
}

func TestNextMonth(t *testing.T) {
	y, m := NextMonth(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.February, m)
}
