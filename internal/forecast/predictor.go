package forecast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"solar-advisor/internal/model"
)

// ErrUnknownState is returned for states the model has no data for.
var ErrUnknownState = errors.New("state not recognized by the model")

// Predictor answers rainy-day predictions from a trained RainModel.
type Predictor struct {
	Model *model.RainModel
	// Now is the clock used to pick "next month". Defaults to time.Now.
	Now func() time.Time
}

func NewPredictor(m *model.RainModel) *Predictor {
	return &Predictor{Model: m, Now: time.Now}
}

// Predict returns the day count and rounded mean rainy days for the
// calendar month after Now() in state.
func (p *Predictor) Predict(ctx context.Context, state string) (*model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}
	year, month := NextMonth(now)

	mean, ok := p.Model.MeanRainyDays(state, month)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}

	days := DaysIn(year, month)
	rainy := int(math.Round(mean))
	if rainy > days {
		rainy = days
	}
	log.Printf("[Forecast] state=%s month=%d mean=%.2f rainy=%d/%d", model.NormalizeState(state), month, mean, rainy, days)

	return &model.Prediction{
		State:              state,
		NextMonth:          int(month),
		DaysInNextMonth:    days,
		PredictedRainyDays: rainy,
	}, nil
}

// NextMonth returns the year and month following t's month.
func NextMonth(t time.Time) (int, time.Month) {
	y, m, _ := t.Date()
	if m == time.December {
		return y + 1, time.January
	}
	return y, m + 1
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
