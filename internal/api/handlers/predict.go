package handlers

import (
	"net/http"

	"solar-advisor/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PredictHandler serves rainy-day predictions
type PredictHandler struct {
	forecaster Forecaster
}

// NewPredictHandler creates a new prediction handler
func NewPredictHandler(forecaster Forecaster) *PredictHandler {
	return &PredictHandler{forecaster: forecaster}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	pred, err := h.forecaster.Predict(c.Request.Context(), req.State)
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, pred)
}
