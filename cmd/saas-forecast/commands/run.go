package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"saas-forecast/internal/cli"
	"saas-forecast/internal/config"
	"saas-forecast/internal/forecast"
	"saas-forecast/internal/model"
	"saas-forecast/internal/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var output struct {
	seed    uint64
	workers int
	outDir  string
	save    string
	export  bool
	open    bool
	asJSON  bool
	strict  bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a forecast from flags, a parameter file or a scenario",
	Example: `  saas-forecast run --start-clients 5 --subscription-price 500 --merchants-per-client 20 --upsell-per-merchant 15
  saas-forecast run --scenario aggressive --seed 42 --export
  saas-forecast run --params plan.toml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := resolveParameters(cmd)
		if err != nil {
			return err
		}
		return runForecast(cmd, params)
	},
}

func addOutputFlags(flags *pflag.FlagSet) {
	flags.Uint64Var(&output.seed, "seed", 0, "seed for a reproducible run (default: FORECAST_SEED or the clock)")
	flags.IntVar(&output.workers, "workers", 0, "parallel simulation workers (default: FORECAST_WORKERS or GOMAXPROCS)")
	flags.StringVar(&output.outDir, "out", "", "report directory (default: REPORT_DIR/<run id>)")
	flags.StringVar(&output.save, "save", "", "write the resolved parameters to a TOML file")
	flags.BoolVar(&output.export, "export", false, "write the investor brief, partner sheet, chart page and ZIP bundle")
	flags.BoolVar(&output.open, "open", false, "open the chart page in the browser (implies --export)")
	flags.BoolVar(&output.asJSON, "json", false, "print the full result as JSON instead of tables")
	flags.BoolVar(&output.strict, "strict", false, "reject options outside the form ranges instead of warning")
}

func init() {
	addParameterFlags(runCmd.Flags())
	addSourceFlags(runCmd.Flags())
	addOutputFlags(runCmd.Flags())
}

// runForecast executes one forecast and renders or exports it as the output flags ask.
func runForecast(cmd *cobra.Command, params model.ForecastParameters) error {
	if output.strict {
		if err := model.CheckSchema(params); err != nil {
			return err
		}
	}

	if output.save != "" {
		if err := config.SaveParameters(output.save, params); err != nil {
			return err
		}
		log.Info().Str("path", output.save).Msg("Parameters saved")
	}

	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = output.workers
	}
	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		seed = &output.seed
	}

	svc := forecast.NewService(forecast.Options{
		Brand:   cfg.Brand,
		Workers: workers,
		Bins:    cfg.HistogramBins,
	})
	result, err := svc.Run(cmd.Context(), forecast.Request{Parameters: params, Seed: seed})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else {
		fmt.Fprintln(out, cli.RenderSummary(result))
		fmt.Fprint(out, cli.RenderMonthlyTable(result))
	}

	if !output.export && !output.open {
		return nil
	}

	dir := output.outDir
	if dir == "" {
		dir = filepath.Join(cfg.ReportDir, result.RunID)
	}
	bundle, err := report.NewExporter(cfg.Brand, cfg.EnableMermaidCharts).Export(cmd.Context(), result, dir)
	if err != nil {
		return err
	}
	log.Info().
		Str("dir", bundle.Dir).
		Str("archive", bundle.Archive).
		Msg("Report exported")

	if output.open {
		return report.Open(bundle.ChartsPage)
	}
	return nil
}
