package commands

import (
	"fmt"

	"saas-forecast/internal/cli"
	"saas-forecast/internal/scenario"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the named parameter presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), cli.RenderScenarios(scenario.All()))
	},
}
