package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"solar-advisor/internal/api/models"
	"solar-advisor/internal/model"
	"solar-advisor/internal/render"

	"github.com/gin-gonic/gin"
)

const solarIncomeTitle = "Solar Income Next Month"

// IncomeHandler projects next month's solar income from a rainy-day prediction
type IncomeHandler struct {
	forecaster Forecaster
	params     model.ProjectionParams
}

// NewIncomeHandler creates a new solar income handler
func NewIncomeHandler(forecaster Forecaster, params model.ProjectionParams) *IncomeHandler {
	return &IncomeHandler{forecaster: forecaster, params: params}
}

// Project handles POST /api/v1/solar-income
func (h *IncomeHandler) Project(c *gin.Context) {
	var in model.SolarIncomeInputs
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(c, err, nil)
		return
	}

	pred, err := h.forecaster.Predict(c.Request.Context(), in.State)
	if err != nil {
		writeError(c, err, nil)
		return
	}

	projection := model.ProjectSolarIncome(in, *pred, h.params)
	c.JSON(http.StatusOK, models.SolarIncomeResponse{
		Input:      in,
		Prediction: *pred,
		Projection: projection.Formatted(),
	})
}

// ProjectForm handles POST /solar-income
func (h *IncomeHandler) ProjectForm(c *gin.Context) {
	page := render.Page{Title: solarIncomeTitle}

	var in model.SolarIncomeInputs
	if err := c.ShouldBind(&in); err != nil {
		page.Error = bindPageError(err)
		c.HTML(http.StatusBadRequest, "result.html", page)
		return
	}
	page.Inputs = []model.Row{
		{Label: "State", Value: in.State},
		{Label: "Panel capacity (kW)", Value: model.FormatAmount(in.PanelCapacity)},
		{Label: "Sell rate (per kWh)", Value: model.FormatAmount(in.SellRate)},
	}

	if err := in.Validate(); err != nil {
		status, pe := pageError(err)
		page.Error = pe
		c.HTML(status, "result.html", page)
		return
	}

	pred, err := h.forecaster.Predict(c.Request.Context(), in.State)
	if err != nil {
		log.Printf("IncomeHandler: predict failed: %v", err)
		status, pe := pageError(err)
		page.Error = pe
		c.HTML(status, "result.html", page)
		return
	}

	p := model.ProjectSolarIncome(in, *pred, h.params)
	v := p.Formatted()
	month := time.Month(p.NextMonth).String()
	page.Headline = fmt.Sprintf("Projected income for %s: %s", month, render.Number(p.MonthlyIncome))
	page.Projection = []model.Row{
		{Label: "Month", Value: month},
		{Label: "Days in month", Value: strconv.Itoa(v.DaysInNextMonth)},
		{Label: "Predicted rainy days", Value: strconv.Itoa(v.RainyDays)},
		{Label: "Sunny days", Value: strconv.Itoa(v.SunnyDays)},
		{Label: "Daily production on a sunny day (kWh)", Value: v.DailyProduction},
		{Label: "Monthly production (kWh)", Value: v.MonthlyProduction},
		{Label: "Monthly income", Value: v.MonthlyIncome},
	}
	c.HTML(http.StatusOK, "result.html", page)
}
