package handlers

import (
	"net/http"

	"solar-advisor/internal/render"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the form page
type PageHandler struct {
	states []string
}

// NewPageHandler creates a page handler. states feeds the state picker.
func NewPageHandler(states []string) *PageHandler {
	return &PageHandler{states: states}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", render.Page{
		Title:        "Home",
		States:       h.states,
		Orientations: render.Orientations,
	})
}
