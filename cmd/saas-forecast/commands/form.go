package commands

import (
	"errors"

	"saas-forecast/internal/form"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Enter the parameters interactively, then run the forecast",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		initial, err := resolveParameters(cmd)
		if err != nil {
			return err
		}

		params, err := form.Run(initial)
		if errors.Is(err, huh.ErrUserAborted) {
			log.Info().Msg("Forecast cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		return runForecast(cmd, params)
	},
}

func init() {
	addSourceFlags(formCmd.Flags())
	addOutputFlags(formCmd.Flags())
}
