package analysis

import (
	"math"
	"sort"
	"time"

	"solar-advisor/internal/model"
)

// MonthlyRainyDays is the rainy-day count for one state in one calendar month of one year.
type MonthlyRainyDays struct {
	State     string
	Year      int
	Month     time.Month
	RainyDays int
	// ObservedDays is the number of days with at least one reading.
	ObservedDays int
}

type dayKey struct {
	State string
	Year  int
	Month time.Month
	Day   int
}

type monthKey struct {
	State string
	Year  int
	Month time.Month
}

// CountRainyDays aggregates readings into per-month rainy-day counts.
// A day is rainy if any reading on that day has precipitation > 0.
// Results are sorted by state, then chronologically.
func CountRainyDays(obs []model.Observation) []MonthlyRainyDays {
	days := make(map[dayKey]bool)
	for _, o := range obs {
		k := dayKey{State: o.State, Year: o.Time.Year(), Month: o.Time.Month(), Day: o.Time.Day()}
		days[k] = days[k] || o.Precipitation > 0
	}

	months := make(map[monthKey]*MonthlyRainyDays)
	for k, rainy := range days {
		mk := monthKey{State: k.State, Year: k.Year, Month: k.Month}
		m, ok := months[mk]
		if !ok {
			m = &MonthlyRainyDays{State: k.State, Year: k.Year, Month: k.Month}
			months[mk] = m
		}
		m.ObservedDays++
		if rainy {
			m.RainyDays++
		}
	}

	out := make([]MonthlyRainyDays, 0, len(months))
	for _, m := range months {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// BuildRainClimatology averages rainy-day counts per (state, calendar month).
// Calendar months with no data take the state's mean over the months that have data.
func BuildRainClimatology(obs []model.Observation) *model.RainModel {
	type acc struct {
		sum   float64
		count int
	}
	perState := map[string]*[12]acc{}
	for _, m := range CountRainyDays(obs) {
		a, ok := perState[m.State]
		if !ok {
			a = &[12]acc{}
			perState[m.State] = a
		}
		a[m.Month-1].sum += float64(m.RainyDays)
		a[m.Month-1].count++
	}

	out := &model.RainModel{States: make(map[string][]float64, len(perState))}
	for state, a := range perState {
		means := make([]float64, 12)
		total, filled := 0.0, 0
		for i := range a {
			if a[i].count > 0 {
				means[i] = a[i].sum / float64(a[i].count)
				total += means[i]
				filled++
			}
		}
		fallback := 0.0
		if filled > 0 {
			fallback = total / float64(filled)
		}
		for i := range a {
			if a[i].count == 0 {
				means[i] = fallback
			}
			means[i] = round2(means[i])
		}
		out.States[state] = means
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
