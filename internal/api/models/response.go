package models

import "solar-advisor/internal/model"

// SolarPlanningResponse is returned by POST /api/v1/solar-planning.
type SolarPlanningResponse struct {
	Input  model.SolarPlanningInput `json:"input"`
	Advice model.Advice             `json:"advice"`
}

// EnergyProjectionResponse is returned by POST /api/v1/energy-selling/projection.
type EnergyProjectionResponse struct {
	Input      model.EnergyInputs         `json:"input"`
	Projection model.EnergyProjectionView `json:"projection"`
}

// EnergySellingResponse is returned by POST /api/v1/energy-selling.
type EnergySellingResponse struct {
	Input      model.EnergyInputs         `json:"input"`
	Projection model.EnergyProjectionView `json:"projection"`
	Advice     model.Advice               `json:"advice"`
}

// SolarIncomeResponse is returned by POST /api/v1/solar-income.
type SolarIncomeResponse struct {
	Input      model.SolarIncomeInputs `json:"input"`
	Prediction model.Prediction        `json:"prediction"`
	Projection model.SolarIncomeView   `json:"projection"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
