package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TemplateEngine renders the station's document templates with
// business data. It uses Go's html/template package with custom
// formatting functions.
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine creates a template engine with the built-in
// document templates parsed.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"formatMoney":    formatMoney,
		"formatDecimal":  formatDecimal,
		"formatDate":     formatDate,
		"formatDateTime": formatDateTime,
		"upper":          strings.ToUpper,
		"title":          titleCase,
	}

	root := template.New("documents").Funcs(funcMap)
	for name, content := range defaultTemplates {
		if _, err := root.New(name).Parse(content); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}

	return &TemplateEngine{templates: root}, nil
}

// Render executes the named template with the given data
func (e *TemplateEngine) Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatMoney(currency string, d decimal.Decimal) string {
	return currency + " " + d.StringFixed(2)
}

func formatDecimal(places int, d decimal.Decimal) string {
	return d.StringFixed(int32(places))
}

func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func formatDateTime(t time.Time) string {
	return t.Format("02 Jan 2006 15:04")
}

// titleCase converts a string to title case with Unicode-aware casing,
// used to render fuel type names like "premium_petrol" on documents.
func titleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(s, "_", " "))
}
