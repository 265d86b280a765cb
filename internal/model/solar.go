package model

// SolarPlanningInput is the solar planning form submission.
type SolarPlanningInput struct {
	BuildingName          string  `json:"building_name" form:"building_name"`
	Location              string  `json:"location" form:"location"`
	RoofAreaM2            float64 `json:"roof_area_m2" form:"roof_area_m2"`
	RoofOrientation       string  `json:"roof_orientation" form:"roof_orientation"`
	MonthlyConsumptionKWh float64 `json:"monthly_consumption_kwh" form:"monthly_consumption_kwh"`
	InstallationCost      float64 `json:"installation_cost" form:"installation_cost"`
}

func (in SolarPlanningInput) Validate() error {
	var c fieldCheck
	c.text("location", in.Location)
	c.required("roof_area_m2", in.RoofAreaM2)
	c.required("monthly_consumption_kwh", in.MonthlyConsumptionKWh)
	c.optional("installation_cost", in.InstallationCost)
	return c.err()
}

// Rows lists the submitted values for the "User Input" section.
func (in SolarPlanningInput) Rows() []Row {
	return []Row{
		{"Building name", in.BuildingName},
		{"Location", in.Location},
		{"Roof area (m²)", FormatAmount(in.RoofAreaM2)},
		{"Roof orientation", in.RoofOrientation},
		{"Monthly consumption (kWh)", FormatAmount(in.MonthlyConsumptionKWh)},
		{"Installation cost", FormatAmount(in.InstallationCost)},
	}
}

// Rows lists the submitted values for the "User Input" section.
func (in EnergyInputs) Rows() []Row {
	return []Row{
		{"Battery capacity (kWh)", FormatAmount(in.BatteryCapacity)},
		{"Panel capacity (kW)", FormatAmount(in.PanelCapacity)},
		{"Sell rate (per kWh)", FormatAmount(in.SellRate)},
		{"Average usage (kWh/day)", FormatAmount(in.AvgUsage)},
		{"Government incentive (per year)", FormatAmount(in.GovIncentive)},
	}
}

// WebhookPayload is the planning submission keyed the way the advisory
// workflow's parser expects.
func (in SolarPlanningInput) WebhookPayload() map[string]any {
	return map[string]any{
		"Building_Name":           in.BuildingName,
		"Location":                in.Location,
		"Roof_Area_":              in.RoofAreaM2,
		"Roof_Orientation":        in.RoofOrientation,
		"Monthly_Consumption_kWh": in.MonthlyConsumptionKWh,
		"Installation_Cost":       in.InstallationCost,
	}
}
