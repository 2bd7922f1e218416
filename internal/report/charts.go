package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"saas-forecast/internal/model"

	"github.com/evanw/esbuild/pkg/api"
)

//go:embed assets/chart.js
var chartScript string

const chartsHeight = 360

var (
	minifyOnce sync.Once
	minified   string
	minifyErr  error
	chartsPage = template.Must(template.New("charts").Parse(chartsPageSource))
)

const chartsPageSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #1f3b70; margin: 24px; }
.charts { display: flex; flex-wrap: wrap; gap: 24px; }
.insight { background: #f4f7fb; border-radius: 12px; padding: 12px 20px; max-width: 1240px; }
</style>
</head>
<body>
<h2>{{ .Title }}</h2>
<div class="charts">
<canvas id="mrr-chart" width="600" height="{{ .Height }}"></canvas>
<canvas id="cumulative-chart" width="600" height="{{ .Height }}"></canvas>
</div>
<h4>Insight</h4>
<p class="insight">{{ .Insight }}</p>
<script type="application/json" id="forecast-data">{{ .Data }}</script>
<script>{{ .Script }}</script>
</body>
</html>
`

type chartData struct {
	Deterministic  model.MonthlySeries `json:"deterministic"`
	Cumulative     model.MonthlySeries `json:"cumulative"`
	Mean           model.MonthlySeries `json:"mean"`
	Low            model.MonthlySeries `json:"p10"`
	High           model.MonthlySeries `json:"p90"`
	CumulativeMean model.MonthlySeries `json:"cumulative_mean"`
}

// MinifiedChartScript returns the embedded chart renderer, minified once with esbuild.
func MinifiedChartScript() (string, error) {
	minifyOnce.Do(func() {
		res := api.Transform(chartScript, api.TransformOptions{
			Loader:            api.LoaderJS,
			Target:            api.ES2015,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
		})
		if len(res.Errors) > 0 {
			msgs := make([]string, 0, len(res.Errors))
			for _, m := range res.Errors {
				msgs = append(msgs, m.Text)
			}
			minifyErr = fmt.Errorf("minifying chart script: %s", strings.Join(msgs, "; "))
			return
		}
		minified = string(res.Code)
	})
	return minified, minifyErr
}

// RenderChartsPage builds the interactive chart page for a result.
func RenderChartsPage(result *model.ForecastResult, title string) ([]byte, error) {
	script, err := MinifiedChartScript()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(chartData{
		Deterministic:  result.Baseline.Revenue,
		Cumulative:     result.Baseline.Cumulative,
		Mean:           result.Stochastic.Mean,
		Low:            result.Stochastic.Low,
		High:           result.Stochastic.High,
		CumulativeMean: result.Stochastic.CumulativeMean,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding chart data: %w", err)
	}

	var buf bytes.Buffer
	err = chartsPage.Execute(&buf, map[string]any{
		"Title":   title,
		"Height":  chartsHeight,
		"Insight": result.Insight,
		// Trusted content: our own JSON and our own minified script.
		"Data":   template.JS(data),
		"Script": template.JS(script),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering charts page: %w", err)
	}
	return buf.Bytes(), nil
}
