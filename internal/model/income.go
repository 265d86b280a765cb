package model

import (
	"math"
)

// Prediction is the rainy-day forecast for a state's next calendar month.
type Prediction struct {
	State              string `json:"state"`
	NextMonth          int    `json:"next_month"`
	DaysInNextMonth    int    `json:"days_in_next_month"`
	PredictedRainyDays int    `json:"predicted_rainy_days"`
}

// SolarIncomeInputs is the solar income form submission.
type SolarIncomeInputs struct {
	State         string  `json:"state" form:"state"`
	PanelCapacity float64 `json:"panel_capacity" form:"panel_capacity"` // kW
	SellRate      float64 `json:"sell_rate" form:"sell_rate"`           // currency per kWh
}

func (in SolarIncomeInputs) Validate() error {
	var c fieldCheck
	c.text("state", in.State)
	c.required("panel_capacity", in.PanelCapacity)
	c.required("sell_rate", in.SellRate)
	return c.err()
}

// SolarIncomeProjection is next month's expected production and income.
type SolarIncomeProjection struct {
	State             string
	NextMonth         int
	DaysInNextMonth   int
	RainyDays         int
	SunnyDays         int
	DailyProduction   float64
	MonthlyProduction float64
	MonthlyIncome     float64
}

// ProjectSolarIncome splits next month into sunny and rainy days and
// derates output on rainy days.
func ProjectSolarIncome(in SolarIncomeInputs, pred Prediction, p ProjectionParams) SolarIncomeProjection {
	days := pred.DaysInNextMonth
	if days < 0 {
		days = 0
	}
	rainy := pred.PredictedRainyDays
	if rainy < 0 {
		rainy = 0
	}
	if rainy > days {
		rainy = days
	}
	sunny := days - rainy

	daily := in.PanelCapacity * p.PeakSunHours
	derate := math.Min(math.Max(p.RainyDayDerate, 0), 1)
	monthly := daily*float64(sunny) + daily*derate*float64(rainy)

	return SolarIncomeProjection{
		State:             pred.State,
		NextMonth:         pred.NextMonth,
		DaysInNextMonth:   days,
		RainyDays:         rainy,
		SunnyDays:         sunny,
		DailyProduction:   daily,
		MonthlyProduction: monthly,
		MonthlyIncome:     monthly * in.SellRate,
	}
}

// SolarIncomeView is the display form of SolarIncomeProjection.
type SolarIncomeView struct {
	State             string `json:"state"`
	NextMonth         int    `json:"next_month"`
	DaysInNextMonth   int    `json:"days_in_next_month"`
	RainyDays         int    `json:"rainy_days"`
	SunnyDays         int    `json:"sunny_days"`
	DailyProduction   string `json:"daily_production"`
	MonthlyProduction string `json:"monthly_production"`
	MonthlyIncome     string `json:"monthly_income"`
}

func (p SolarIncomeProjection) Formatted() SolarIncomeView {
	return SolarIncomeView{
		State:             p.State,
		NextMonth:         p.NextMonth,
		DaysInNextMonth:   p.DaysInNextMonth,
		RainyDays:         p.RainyDays,
		SunnyDays:         p.SunnyDays,
		DailyProduction:   FormatAmount(p.DailyProduction),
		MonthlyProduction: FormatAmount(p.MonthlyProduction),
		MonthlyIncome:     FormatAmount(p.MonthlyIncome),
	}
}
