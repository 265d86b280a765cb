package model

import (
	"math"
)

const (
	DaysPerMonth  = 30
	DaysPerYear   = 365
	MonthsPerYear = 12
)

// ProjectionParams holds the fixed constants behind the local projections.
// Units:
// - PeakSunHours: average hours of full-rated output per day
// - InstallationCostPerKW: currency per kW of panel capacity
// - RainyDayDerate: fraction of a clear day's output produced on a rainy day (0..1)
type ProjectionParams struct {
	PeakSunHours          float64
	InstallationCostPerKW float64
	RainyDayDerate        float64
}

func DefaultProjectionParams() ProjectionParams {
	return ProjectionParams{
		PeakSunHours:          5,
		InstallationCostPerKW: 4000,
		RainyDayDerate:        0.3,
	}
}

// EnergyInputs is the energy-selling form submission.
// All values are non-negative by convention; nothing here enforces it.
type EnergyInputs struct {
	BatteryCapacity float64 `json:"battery_capacity" form:"battery_capacity"` // kWh
	PanelCapacity   float64 `json:"panel_capacity" form:"panel_capacity"`     // kW
	SellRate        float64 `json:"sell_rate" form:"sell_rate"`               // currency per kWh
	AvgUsage        float64 `json:"avg_usage" form:"avg_usage"`               // kWh per day
	GovIncentive    float64 `json:"gov_incentive" form:"gov_incentive"`       // currency per year
}

// Validate rejects submissions with a zero or absent panel_capacity,
// sell_rate or avg_usage, and any field that is not a finite number.
// Every failing field is reported at once.
func (in EnergyInputs) Validate() error {
	var c fieldCheck
	c.optional("battery_capacity", in.BatteryCapacity)
	c.required("panel_capacity", in.PanelCapacity)
	c.required("sell_rate", in.SellRate)
	c.required("avg_usage", in.AvgUsage)
	c.optional("gov_incentive", in.GovIncentive)
	return c.err()
}

// EnergyProjection is the derived financial/energy record for one submission.
// BatteryDays and PaybackYears are nil when they are not applicable.
type EnergyProjection struct {
	DailyProduction float64
	DailyExcess     float64
	MonthlyExcess   float64
	YearlyExcess    float64

	MonthlyRevenue float64
	YearlyRevenue  float64

	SelfConsumption               float64
	MonthlySelfConsumptionSavings float64
	YearlySelfConsumptionSavings  float64

	TotalMonthlyBenefit float64
	TotalYearlyBenefit  float64

	BatteryDays *float64

	EstimatedInstallationCost float64
	PaybackYears              *float64
}

// CalculateEnergySelling projects production, resale revenue and
// self-consumption savings for a rooftop system. It never returns NaN or
// Inf: divisions with a zero or negative denominator yield nil instead.
func CalculateEnergySelling(in EnergyInputs, p ProjectionParams) EnergyProjection {
	var out EnergyProjection

	out.DailyProduction = in.PanelCapacity * p.PeakSunHours
	out.DailyExcess = math.Max(0, out.DailyProduction-in.AvgUsage)
	out.MonthlyExcess = out.DailyExcess * DaysPerMonth
	out.YearlyExcess = out.DailyExcess * DaysPerYear

	out.MonthlyRevenue = out.MonthlyExcess * in.SellRate
	out.YearlyRevenue = out.YearlyExcess * in.SellRate

	out.SelfConsumption = math.Min(out.DailyProduction, in.AvgUsage)
	out.MonthlySelfConsumptionSavings = out.SelfConsumption * DaysPerMonth * in.SellRate
	out.YearlySelfConsumptionSavings = out.SelfConsumption * DaysPerYear * in.SellRate

	out.TotalMonthlyBenefit = out.MonthlyRevenue + out.MonthlySelfConsumptionSavings + in.GovIncentive/MonthsPerYear
	out.TotalYearlyBenefit = out.YearlyRevenue + out.YearlySelfConsumptionSavings + in.GovIncentive

	if in.BatteryCapacity > 0 {
		out.BatteryDays = ratio(in.BatteryCapacity, in.AvgUsage)
	}

	out.EstimatedInstallationCost = in.PanelCapacity * p.InstallationCostPerKW
	out.PaybackYears = ratio(out.EstimatedInstallationCost, out.TotalYearlyBenefit)

	return out
}

// ratio returns num/den, or nil when den is not positive or the result is not finite.
func ratio(num, den float64) *float64 {
	if !(den > 0) {
		return nil
	}
	v := num / den
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
