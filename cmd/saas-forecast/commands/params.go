package commands

import (
	"saas-forecast/internal/config"
	"saas-forecast/internal/model"
	"saas-forecast/internal/scenario"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagParams receives the per-option flags; only flags the user set are applied.
var flagParams model.ForecastParameters

var paramsFile, scenarioName string

func addParameterFlags(flags *pflag.FlagSet) {
	d := model.DefaultParameters()
	flags.Float64Var(&flagParams.StartClients, "start-clients", d.StartClients, "paying clients at the start")
	flags.IntVar(&flagParams.Months, "months", d.Months, "forecast horizon in months")
	flags.Float64Var(&flagParams.SubscriptionPrice, "subscription-price", d.SubscriptionPrice, "monthly subscription price per client")
	flags.Float64Var(&flagParams.MerchantsPerClient, "merchants-per-client", d.MerchantsPerClient, "merchants per client")
	flags.Float64Var(&flagParams.UpsellPerMerchant, "upsell-per-merchant", d.UpsellPerMerchant, "monthly upsell revenue per merchant")
	flags.Float64Var(&flagParams.GrowthRatePct, "growth-rate", d.GrowthRatePct, "monthly client growth (%)")
	flags.Float64Var(&flagParams.ChurnRatePct, "churn-rate", d.ChurnRatePct, "monthly client churn (%)")
	flags.Float64Var(&flagParams.ShockSensitivity, "shock-sensitivity", d.ShockSensitivity, "scale of the random demand shock")
	flags.IntVar(&flagParams.SimulationCount, "simulations", d.SimulationCount, "number of Monte Carlo trials")
}

func addSourceFlags(flags *pflag.FlagSet) {
	flags.StringVar(&paramsFile, "params", "", "parameter file (.toml, .yaml, .json or .hjson)")
	flags.StringVar(&scenarioName, "scenario", "", "start from a named preset (see 'scenarios')")
}

// resolveParameters layers form defaults, scenario, parameter file and explicit flags.
func resolveParameters(cmd *cobra.Command) (model.ForecastParameters, error) {
	p := model.DefaultParameters()

	if scenarioName != "" {
		preset, err := scenario.Get(scenarioName)
		if err != nil {
			return p, err
		}
		p = preset.Parameters
	}

	if paramsFile != "" {
		var err error
		p, err = config.LoadParameters(paramsFile, p)
		if err != nil {
			return p, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("start-clients") {
		p.StartClients = flagParams.StartClients
	}
	if flags.Changed("months") {
		p.Months = flagParams.Months
	}
	if flags.Changed("subscription-price") {
		p.SubscriptionPrice = flagParams.SubscriptionPrice
	}
	if flags.Changed("merchants-per-client") {
		p.MerchantsPerClient = flagParams.MerchantsPerClient
	}
	if flags.Changed("upsell-per-merchant") {
		p.UpsellPerMerchant = flagParams.UpsellPerMerchant
	}
	if flags.Changed("growth-rate") {
		p.GrowthRatePct = flagParams.GrowthRatePct
	}
	if flags.Changed("churn-rate") {
		p.ChurnRatePct = flagParams.ChurnRatePct
	}
	if flags.Changed("shock-sensitivity") {
		p.ShockSensitivity = flagParams.ShockSensitivity
	}
	if flags.Changed("simulations") {
		p.SimulationCount = flagParams.SimulationCount
	}

	return p, nil
}
