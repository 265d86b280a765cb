package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"solar-advisor/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	got := string(Markdown("**Install** 12 panels\n\n- face south\n- tilt 10°"))
	assert.Contains(t, got, "<strong>Install</strong>")
	assert.Contains(t, got, "<li>face south</li>")

	got = string(Markdown("<script>alert(1)</script>"))
	assert.NotContains(t, got, "<script>")

	assert.Empty(t, Markdown(""))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "2,857.50", Number(2857.5))
	assert.Equal(t, "0.00", Number(0))
	assert.Equal(t, "1,234,567.89", Number(1234567.891))
	assert.Equal(t, model.NotApplicable, Number(math.Inf(1)))
}

func execute(t *testing.T, name string, page Page) *goquery.Document {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestIndexTemplate(t *testing.T) {
	doc := execute(t, "index.html", Page{Title: "Home", States: []string{"kuala_lumpur", "penang"}, Orientations: Orientations})

	assert.Equal(t, 3, doc.Find("form").Length())
	assert.Equal(t, "/energy-selling", doc.Find("#energySellingForm").AttrOr("action", ""))
	assert.Equal(t, 2, doc.Find("#states option").Length())
	assert.Equal(t, "Home · Solar Advisor", doc.Find("title").Text())
}

func TestResultTemplate(t *testing.T) {
	doc := execute(t, "result.html", Page{
		Title:      "Energy Selling",
		Inputs:     []model.Row{{Label: "Panel capacity (kW)", Value: "5.00"}},
		Projection: []model.Row{{Label: "Total monthly benefit", Value: "235.00"}},
		Advice:     &model.Advice{Analysis: "Good *yield*."},
	})

	assert.Equal(t, 0, doc.Find("#error").Length())
	assert.Contains(t, doc.Find("#user-input").Text(), "Panel capacity (kW): 5.00")
	assert.Equal(t, "235.00", doc.Find("#projection td").First().Text())
	assert.Equal(t, "yield", doc.Find("#analysis em").Text())
	assert.Equal(t, "N/A", strings.TrimSpace(doc.Find("#recommendation").Text()))
}

func TestResultTemplateError(t *testing.T) {
	doc := execute(t, "result.html", Page{
		Title: "Solar Planning",
		Error: &PageError{Message: "unexpected webhook response", Raw: `{"output": "<b>x</b>"}`},
	})

	assert.Contains(t, doc.Find("#error").Text(), "unexpected webhook response")
	assert.Equal(t, `{"output": "<b>x</b>"}`, doc.Find("#raw-response").Text())
	assert.Equal(t, 0, doc.Find("#analysis").Length())
}
