package commands

import (
	"saas-forecast/internal/config"
	"saas-forecast/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "saas-forecast",
	Short: "Hybrid deterministic and Monte Carlo revenue forecaster for SaaS platforms",
	Long: `Projects monthly recurring revenue for a platform selling subscriptions plus per-merchant
upsell. A closed-form baseline is compared with a Monte Carlo ensemble under random demand
shocks, and the uplift feeds investor and partner documents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			log.Warn().Err(err).Msg("File logging disabled")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("saas-forecast starting")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(runCmd, formCmd, serveCmd, scenariosCmd, versionCmd)
}
