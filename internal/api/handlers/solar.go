package handlers

import (
	"log"
	"net/http"

	"solar-advisor/internal/api/models"
	"solar-advisor/internal/model"
	"solar-advisor/internal/render"

	"github.com/gin-gonic/gin"
)

const solarPlanningTitle = "Solar Planning"

// SolarHandler handles solar planning submissions
type SolarHandler struct {
	advisor Advisor
}

// NewSolarHandler creates a new solar planning handler
func NewSolarHandler(advisor Advisor) *SolarHandler {
	return &SolarHandler{advisor: advisor}
}

// Submit handles POST /api/v1/solar-planning
func (h *SolarHandler) Submit(c *gin.Context) {
	var in model.SolarPlanningInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeBindError(c, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(c, err, nil)
		return
	}

	advice, err := h.advisor.Advise(c.Request.Context(), model.FeatureSolarPlanning, in.WebhookPayload())
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, models.SolarPlanningResponse{Input: in, Advice: *advice})
}

// SubmitForm handles POST /solar-planning
func (h *SolarHandler) SubmitForm(c *gin.Context) {
	page := render.Page{Title: solarPlanningTitle}

	var in model.SolarPlanningInput
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

	advice, err := h.advisor.Advise(c.Request.Context(), model.FeatureSolarPlanning, in.WebhookPayload())
	if err != nil {
		log.Printf("SolarHandler: advise failed: %v", err)
		status, pe := pageError(err)
		page.Error = pe
		c.HTML(status, "result.html", page)
		return
	}

	page.Advice = advice
	c.HTML(http.StatusOK, "result.html", page)
}
