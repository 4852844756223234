package search

import (
	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/model"
)

// ExtractPlan walks every region and emits a Move for each whose server
// differs from its initial assignment (spec §4.5). Order is unspecified;
// callers must treat the result as a set.
func ExtractPlan(m *model.ClusterModel) api.Plan {
	var plan api.Plan
	for r := 0; r < m.NumRegions(); r++ {
		from := m.InitialRegionToServer(r)
		to := m.RegionToServer(r)
		if from == to {
			continue
		}
		move := api.Move{Region: m.RegionIDAt(r)}
		if from >= 0 {
			move.From = m.ServerIDAt(from)
		}
		if to >= 0 {
			move.To = m.ServerIDAt(to)
		}
		plan = append(plan, move)
	}
	return plan
}
