// Package panel implements the ROI configuration panel: the form where an
// initiative is described and submitted for projection.
package panel

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/roivolution/roivolution/internal/services/web/routepath"
	"github.com/roivolution/roivolution/internal/services/web/templates"
)

// field describes one numeric input of the configuration form.
type field struct {
	name     string
	labelKey string
	min      string
	max      string
	step     string
}

var numericFields = []field{
	{name: "project_budget", labelKey: "panel.field.project_budget", min: "1", step: "0.01"},
	{name: "employee_impact", labelKey: "panel.field.employee_impact", min: "1", step: "1"},
	{name: "project_duration", labelKey: "panel.field.project_duration", min: "1", step: "1"},
	{name: "average_salary", labelKey: "panel.field.average_salary", min: "1", step: "0.01"},
	{name: "previous_success", labelKey: "panel.field.previous_success", min: "0", max: "100", step: "1"},
	{name: "leadership_alignment", labelKey: "panel.field.leadership_alignment", min: "0", max: "5", step: "1"},
	{name: "employee_readiness", labelKey: "panel.field.employee_readiness", min: "0", max: "5", step: "1"},
	{name: "communication_plan", labelKey: "panel.field.communication_plan", min: "0", max: "5", step: "1"},
	{name: "training_budget", labelKey: "panel.field.training_budget", min: "0", step: "0.01"},
}

var riskLevels = []string{"low", "medium", "high"}

var industries = []string{
	"finance",
	"healthcare",
	"manufacturing",
	"retail",
	"technology",
	"other",
}

// New returns the configuration panel as a zero-argument renderable.
// The component is assembled once at composition time and holds no
// request-scoped state.
func New(loc templates.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="config-panel" data-submit-url="%s"><h1>%s</h1><p>%s</p><form id="roi-form">`,
			routepath.APICalculateROI,
			html.EscapeString(templates.T(loc, "panel.heading")),
			html.EscapeString(templates.T(loc, "panel.description")),
		); err != nil {
			return err
		}

		for _, f := range numericFields {
			if err := writeNumberInput(w, f, loc); err != nil {
				return err
			}
		}
		if err := writeSelect(w, "risk_level", "panel.field.risk_level", riskLevels, loc); err != nil {
			return err
		}
		if err := writeSelect(w, "industry_type", "panel.field.industry_type", industries, loc); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w,
			`<button type="submit">%s</button></form><div id="roi-result" hidden></div></section>`+
				`<script src="%spanel.js"></script>`,
			html.EscapeString(templates.T(loc, "panel.submit")),
			routepath.StaticPrefix,
		)
		return err
	})
}

func writeNumberInput(w io.Writer, f field, loc templates.Localizer) error {
	attrs := ""
	if f.min != "" {
		attrs += fmt.Sprintf(` min="%s"`, f.min)
	}
	if f.max != "" {
		attrs += fmt.Sprintf(` max="%s"`, f.max)
	}
	if f.step != "" {
		attrs += fmt.Sprintf(` step="%s"`, f.step)
	}
	_, err := fmt.Fprintf(w,
		`<label for="%s">%s</label><input type="number" id="%s" name="%s" required%s>`,
		f.name,
		html.EscapeString(templates.T(loc, f.labelKey)),
		f.name,
		f.name,
		attrs,
	)
	return err
}

func writeSelect(w io.Writer, name string, labelKey string, options []string, loc templates.Localizer) error {
	if _, err := fmt.Fprintf(w,
		`<label for="%s">%s</label><select id="%s" name="%s">`,
		name,
		html.EscapeString(templates.T(loc, labelKey)),
		name,
		name,
	); err != nil {
		return err
	}
	for _, option := range options {
		if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`, option, html.EscapeString(option)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>`)
	return err
}
