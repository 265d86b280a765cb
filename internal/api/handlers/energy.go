package handlers

import (
	"fmt"
	"log"
	"net/http"

	"solar-advisor/internal/api/models"
	"solar-advisor/internal/model"
	"solar-advisor/internal/render"

	"github.com/gin-gonic/gin"
)

const energySellingTitle = "Energy Selling"

// EnergyHandler handles energy-selling projections and submissions
type EnergyHandler struct {
	advisor Advisor
	params  model.ProjectionParams
}

// NewEnergyHandler creates a new energy-selling handler
func NewEnergyHandler(advisor Advisor, params model.ProjectionParams) *EnergyHandler {
	return &EnergyHandler{advisor: advisor, params: params}
}

// Projection handles POST /api/v1/energy-selling/projection (local calculation only)
func (h *EnergyHandler) Projection(c *gin.Context) {
	in, ok := h.bindJSON(c)
	if !ok {
		return
	}
	projection := model.CalculateEnergySelling(in, h.params)
	c.JSON(http.StatusOK, models.EnergyProjectionResponse{Input: in, Projection: projection.Formatted()})
}

// Submit handles POST /api/v1/energy-selling
func (h *EnergyHandler) Submit(c *gin.Context) {
	in, ok := h.bindJSON(c)
	if !ok {
		return
	}
	view := model.CalculateEnergySelling(in, h.params).Formatted()

	advice, err := h.advisor.Advise(c.Request.Context(), model.FeatureEnergySelling, in)
	if err != nil {
		// details.projection carries the local result alongside the upstream error.
		writeError(c, err, map[string]interface{}{"projection": view})
		return
	}

	c.JSON(http.StatusOK, models.EnergySellingResponse{Input: in, Projection: view, Advice: *advice})
}

// SubmitForm handles POST /energy-selling
func (h *EnergyHandler) SubmitForm(c *gin.Context) {
	page := render.Page{Title: energySellingTitle}

	var in model.EnergyInputs
	if err := c.ShouldBind(&in); err != nil {
		page.Error = bindPageError(err)
		c.HTML(http.StatusBadRequest, "result.html", page)
		return
	}
	page.Inputs = in.Rows()

	if err := in.Validate(); err != nil {
		status, pe := pageError(err)
		page.Error = pe
		c.HTML(status, "result.html", page)
		return
	}

	projection := model.CalculateEnergySelling(in, h.params)
	page.Projection = projection.Formatted().Rows()
	page.Headline = headline(projection)

	advice, err := h.advisor.Advise(c.Request.Context(), model.FeatureEnergySelling, in)
	if err != nil {
		log.Printf("EnergyHandler: advise failed: %v", err)
		status, pe := pageError(err)
		page.Error = pe
		c.HTML(status, "result.html", page)
		return
	}

	page.Advice = advice
	c.HTML(http.StatusOK, "result.html", page)
}

func (h *EnergyHandler) bindJSON(c *gin.Context) (model.EnergyInputs, bool) {
	var in model.EnergyInputs
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return in, false
	}
	if err := in.Validate(); err != nil {
		writeError(c, err, nil)
		return in, false
	}
	return in, true
}

func headline(p model.EnergyProjection) string {
	s := fmt.Sprintf("Estimated benefit of %s per year", render.Number(p.TotalYearlyBenefit))
	if p.PaybackYears != nil {
		s += fmt.Sprintf(", paying back the %s installation in %s years", render.Number(p.EstimatedInstallationCost), model.FormatAmount(*p.PaybackYears))
	}
	return s + "."
}
