package render

import (
	"solar-advisor/internal/model"
)

// Page is the data passed to the index and result templates.
type Page struct {
	Title string

	// index
	States       []string
	Orientations []string

	// result
	Inputs     []model.Row
	Headline   string
	Projection []model.Row
	Advice     *model.Advice
	Error      *PageError
}

// PageError is shown at the top of a result page.
type PageError struct {
	Message string
	Fields  []string
	Raw     string
}

// Orientations lists the roof orientations offered by the planning form.
var Orientations = []string{"North", "North-East", "East", "South-East", "South", "South-West", "West", "North-West", "Flat"}
