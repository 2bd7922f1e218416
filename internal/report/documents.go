package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"saas-forecast/internal/model"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Document is one exported page, authored as Markdown.
type Document struct {
	FileName string
	Title    string
	Subtitle string
	Metrics  []string
	Markdown string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

var briefTemplate = texttemplate.Must(texttemplate.New("brief").Parse(`# {{ .Title }}

_{{ .Subtitle }}_

{{ range .Metrics }}- {{ . }}
{{ end }}
{{- if .Insight }}
> {{ .Insight }}
{{ end }}
{{- range .Charts }}
{{ . }}
{{ end }}`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { margin: 0; font-family: Helvetica, Arial, sans-serif; color: #1f3b70; background: #ffffff; }
header { background: #1f3b70; color: #ffffff; padding: 24px 50px; }
header h1 { margin: 0; font-size: 22px; }
main { padding: 16px 60px; font-size: 14px; line-height: 1.55; }
main h1 { display: none; }
blockquote { background: #f4f7fb; border-radius: 12px; margin: 16px 0; padding: 12px 20px; }
footer { padding: 8px 60px; color: #6f6e69; font-size: 11px; }
</style>
</head>
<body>
<header><h1>{{ .Title }}</h1></header>
<main>
{{ .Body }}
</main>
<footer>Run {{ .RunID }} &middot; seed {{ .Seed }} &middot; generated {{ .Generated }}</footer>
</body>
</html>
`))

// InvestorBrief builds the forecast summary for investors.
func InvestorBrief(result *model.ForecastResult, brand string) Document {
	s := result.Summary
	return Document{
		FileName: "investor_brief.html",
		Title:    strings.TrimSpace(brand + " Forecast Summary"),
		Subtitle: "Forecast Summary — Hybrid SaaS Video Optimization",
		Metrics: []string{
			"Starting MRR: " + FormatCurrency(s.StartingMRR),
			fmt.Sprintf("%d-Month Projected MRR: %s", s.Months, FormatCurrency(s.EndingMRR)),
			"Annual Run-Rate: " + FormatCurrency(s.AnnualRunRate),
			"Stochastic Uplift: " + FormatUplift(s.UpliftPct),
		},
	}
}

// PartnerSalesSheet builds the one-pager aimed at SaaS partners.
func PartnerSalesSheet(result *model.ForecastResult, brand string) Document {
	s := result.Summary
	title := "Scale Your SaaS Clients"
	if brand != "" {
		title += " with " + brand
	}
	return Document{
		FileName: "partner_sales_sheet.html",
		Title:    title,
		Subtitle: "We produce and test multiple video variants weekly using data-driven iteration.",
		Metrics: []string{
			"Growth Rate: " + FormatRate(s.GrowthRatePct),
			"Churn: " + FormatRate(s.ChurnRatePct),
			fmt.Sprintf("%d-Month ARR: %s", s.Months, FormatCurrency(s.AnnualRunRate)),
			"Engagement Uplift: " + FormatUplift(s.UpliftPct),
		},
	}
}

// RenderMarkdown fills the document's Markdown source. Charts are appended verbatim.
func (d *Document) RenderMarkdown(insight string, charts []string) error {
	var buf bytes.Buffer
	err := briefTemplate.Execute(&buf, map[string]any{
		"Title":    d.Title,
		"Subtitle": d.Subtitle,
		"Metrics":  d.Metrics,
		"Insight":  insight,
		"Charts":   charts,
	})
	if err != nil {
		return fmt.Errorf("rendering %s markdown: %w", d.FileName, err)
	}
	d.Markdown = buf.String()
	return nil
}

// RenderHTML converts the Markdown into a standalone page.
func (d *Document) RenderHTML(result *model.ForecastResult) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(d.Markdown), &body); err != nil {
		return nil, fmt.Errorf("converting %s markdown: %w", d.FileName, err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, map[string]any{
		"Title":     d.Title,
		"Body":      template.HTML(body.String()),
		"RunID":     result.RunID,
		"Seed":      result.Seed,
		"Generated": result.GeneratedAt.Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s page: %w", d.FileName, err)
	}
	return page.Bytes(), nil
}
