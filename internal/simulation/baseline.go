package simulation

import "saas-forecast/internal/model"

// ProjectBaseline computes the deterministic compounding trajectory.
// The client count is not clamped: it mirrors the idealized scenario the ensemble is compared against.
func ProjectBaseline(p model.ForecastParameters) model.Baseline {
	rpc := p.RevenuePerClient()
	multiplier := 1 + p.NetRate()

	revenue := make(model.MonthlySeries, p.Months)
	cumulative := make(model.MonthlySeries, p.Months)
	clients := make([]float64, p.Months+1)

	clients[0] = p.StartClients
	running := 0.0
	for t := 0; t < p.Months; t++ {
		revenue[t] = clients[t] * rpc
		running += revenue[t]
		cumulative[t] = running
		clients[t+1] = clients[t] * multiplier
	}

	return model.Baseline{
		Revenue:    revenue,
		Cumulative: cumulative,
		Clients:    clients,
	}
}
