// Package report exports a forecast as investor and partner documents, a chart page
// and a ZIP bundle.
package report

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"saas-forecast/internal/model"
	"saas-forecast/internal/visuals"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// Bundle lists the files written by an export.
type Bundle struct {
	Dir            string `json:"dir"`
	InvestorBrief  string `json:"investor_brief"`
	PartnerSheet   string `json:"partner_sheet"`
	ChartsPage     string `json:"charts_page"`
	ChartsMarkdown string `json:"charts_markdown,omitempty"`
	Archive        string `json:"archive"`
}

// Exporter renders forecast results to disk.
type Exporter struct {
	Brand         string
	MermaidCharts bool
}

// NewExporter creates an exporter for the given brand.
func NewExporter(brand string, mermaid bool) *Exporter {
	return &Exporter{Brand: brand, MermaidCharts: mermaid}
}

// Export writes every document for result into dir and bundles the briefs into a ZIP.
func (e *Exporter) Export(ctx context.Context, result *model.ForecastResult, dir string) (Bundle, error) {
	if result == nil {
		return Bundle{}, fmt.Errorf("no forecast result to export")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Bundle{}, fmt.Errorf("creating report dir: %w", err)
	}

	var charts []string
	if e.MermaidCharts {
		charts = e.mermaidCharts(result)
	}

	bundle := Bundle{Dir: dir}
	docs := []Document{InvestorBrief(result, e.Brand), PartnerSalesSheet(result, e.Brand)}
	written := make([]string, 0, len(docs)+1)

	for i := range docs {
		if err := ctx.Err(); err != nil {
			return Bundle{}, err
		}
		doc := &docs[i]
		// Only the investor brief carries the headline insight and charts.
		insight, docCharts := "", []string(nil)
		if i == 0 {
			insight, docCharts = result.Insight, charts
		}
		if err := doc.RenderMarkdown(insight, docCharts); err != nil {
			return Bundle{}, err
		}
		page, err := doc.RenderHTML(result)
		if err != nil {
			return Bundle{}, err
		}
		path := filepath.Join(dir, doc.FileName)
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return Bundle{}, fmt.Errorf("writing %s: %w", doc.FileName, err)
		}
		written = append(written, path)
	}
	bundle.InvestorBrief, bundle.PartnerSheet = written[0], written[1]

	page, err := RenderChartsPage(result, docs[0].Title)
	if err != nil {
		return Bundle{}, err
	}
	bundle.ChartsPage = filepath.Join(dir, "forecast_charts.html")
	if err := os.WriteFile(bundle.ChartsPage, page, 0o644); err != nil {
		return Bundle{}, fmt.Errorf("writing charts page: %w", err)
	}

	if len(charts) > 0 {
		bundle.ChartsMarkdown = filepath.Join(dir, "forecast_charts.md")
		content := strings.Join(charts, "\n\n") + "\n"
		if err := os.WriteFile(bundle.ChartsMarkdown, []byte(content), 0o644); err != nil {
			return Bundle{}, fmt.Errorf("writing charts markdown: %w", err)
		}
		written = append(written, bundle.ChartsMarkdown)
	}

	bundle.Archive = filepath.Join(dir, ArchiveName(e.Brand))
	if err := writeArchive(bundle.Archive, written); err != nil {
		return Bundle{}, err
	}

	log.Info().
		Str("runId", result.RunID).
		Str("archive", bundle.Archive).
		Msg("Forecast deck exported")

	return bundle, nil
}

func (e *Exporter) mermaidCharts(result *model.ForecastResult) []string {
	var charts []string
	for _, c := range []string{
		visuals.GenerateRevenueChart(result),
		visuals.GenerateCumulativeChart(result),
		visuals.GenerateEndingDistributionChart(result.Stochastic.Ending),
	} {
		if c != "" {
			charts = append(charts, c)
		}
	}
	return charts
}

// writeArchive stores files flat (base names only) in a new ZIP at path.
func writeArchive(path string, files []string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing archive: %w", cerr)
		}
	}()

	zw := zip.NewWriter(out)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("reading %s for archive: %w", f, err)
		}
		w, err := zw.Create(filepath.Base(f))
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", f, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing %s to archive: %w", f, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// Open shows a generated page in the default browser.
func Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}
