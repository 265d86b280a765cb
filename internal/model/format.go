package model

import (
	"github.com/shopspring/decimal"
)

// NotApplicable is rendered in place of values that cannot be computed.
const NotApplicable = "N/A"

// FormatAmount renders v as a fixed-point string with two decimals.
// NaN and ±Inf render as NotApplicable.
func FormatAmount(v float64) string {
	if !isFinite(v) {
		return NotApplicable
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatOptional renders nil as NotApplicable.
func FormatOptional(v *float64) string {
	if v == nil {
		return NotApplicable
	}
	return FormatAmount(*v)
}

// EnergyProjectionView is the display form of EnergyProjection.
type EnergyProjectionView struct {
	DailyProduction               string `json:"daily_production"`
	DailyExcess                   string `json:"daily_excess"`
	MonthlyExcess                 string `json:"monthly_excess"`
	YearlyExcess                  string `json:"yearly_excess"`
	MonthlyRevenue                string `json:"monthly_revenue"`
	YearlyRevenue                 string `json:"yearly_revenue"`
	SelfConsumption               string `json:"self_consumption"`
	MonthlySelfConsumptionSavings string `json:"monthly_self_consumption_savings"`
	YearlySelfConsumptionSavings  string `json:"yearly_self_consumption_savings"`
	TotalMonthlyBenefit           string `json:"total_monthly_benefit"`
	TotalYearlyBenefit            string `json:"total_yearly_benefit"`
	BatteryDays                   string `json:"battery_days"`
	EstimatedInstallationCost     string `json:"estimated_installation_cost"`
	PaybackYears                  string `json:"payback_years"`
}

func (p EnergyProjection) Formatted() EnergyProjectionView {
	return EnergyProjectionView{
		DailyProduction:               FormatAmount(p.DailyProduction),
		DailyExcess:                   FormatAmount(p.DailyExcess),
		MonthlyExcess:                 FormatAmount(p.MonthlyExcess),
		YearlyExcess:                  FormatAmount(p.YearlyExcess),
		MonthlyRevenue:                FormatAmount(p.MonthlyRevenue),
		YearlyRevenue:                 FormatAmount(p.YearlyRevenue),
		SelfConsumption:               FormatAmount(p.SelfConsumption),
		MonthlySelfConsumptionSavings: FormatAmount(p.MonthlySelfConsumptionSavings),
		YearlySelfConsumptionSavings:  FormatAmount(p.YearlySelfConsumptionSavings),
		TotalMonthlyBenefit:           FormatAmount(p.TotalMonthlyBenefit),
		TotalYearlyBenefit:            FormatAmount(p.TotalYearlyBenefit),
		BatteryDays:                   FormatOptional(p.BatteryDays),
		EstimatedInstallationCost:     FormatAmount(p.EstimatedInstallationCost),
		PaybackYears:                  FormatOptional(p.PaybackYears),
	}
}

// Rows lists the view as label/value pairs in display order.
func (v EnergyProjectionView) Rows() []Row {
	return []Row{
		{"Daily production (kWh)", v.DailyProduction},
		{"Daily excess (kWh)", v.DailyExcess},
		{"Monthly excess (kWh)", v.MonthlyExcess},
		{"Yearly excess (kWh)", v.YearlyExcess},
		{"Monthly revenue", v.MonthlyRevenue},
		{"Yearly revenue", v.YearlyRevenue},
		{"Self-consumption (kWh/day)", v.SelfConsumption},
		{"Monthly self-consumption savings", v.MonthlySelfConsumptionSavings},
		{"Yearly self-consumption savings", v.YearlySelfConsumptionSavings},
		{"Total monthly benefit", v.TotalMonthlyBenefit},
		{"Total yearly benefit", v.TotalYearlyBenefit},
		{"Battery backup (days)", v.BatteryDays},
		{"Estimated installation cost", v.EstimatedInstallationCost},
		{"Payback period (years)", v.PaybackYears},
	}
}

// Row is one labelled value on a results page or report.
type Row struct {
	Label string
	Value string
}
