package render

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"math"

	"solar-advisor/internal/model"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	md = goldmark.New(goldmark.WithExtensions(extension.GFM))

	printer = message.NewPrinter(language.English)
)

// Templates parses the embedded page templates with the helper funcs.
func Templates() (*template.Template, error) {
	return template.New("pages").Funcs(template.FuncMap{
		"markdown": Markdown,
		"number":   Number,
	}).ParseFS(templateFS, "templates/*.html")
}

// Markdown converts advice text to HTML. Raw HTML in the source is escaped,
// so the result is safe to embed.
func Markdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		log.Printf("[Render] markdown conversion failed: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// Number formats v with two decimals and thousands grouping (12,345.60).
// NaN and ±Inf render as N/A.
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return model.NotApplicable
	}
	return printer.Sprintf("%.2f", v)
}
