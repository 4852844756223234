package costs

import "github.com/clusterbalance/balancer/pkg/api"

// DefaultSet builds the eleven cost functions of spec §4.2 from cfg, in
// the table's order. A function whose configured multiplier is <= 0 is
// still constructed (so observability reporting can name it) but will be
// skipped by the search driver per the Multiplier() <= 0 contract.
func DefaultSet(cfg api.Config) []Function {
	w := cfg.Weights
	return []Function{
		NewRegionCountSkew(w.RegionCountSkew),
		NewPrimaryRegionCountSkew(w.PrimaryRegionCountSkew),
		NewMoveCost(w.MoveCost, cfg.MaxMovePercent),
		NewLocality(w.Locality),
		NewTableSkew(w.TableSkew, cfg.MaxTableSkewWeight),
		NewRegionReplicaHost(w.RegionReplicaHost),
		NewRegionReplicaRack(w.RegionReplicaRack),
		NewSampleCost("ReadRequest", w.ReadRequest, true, func(s api.LoadSample) float64 { return float64(s.ReadRequestsCount) }),
		NewSampleCost("WriteRequest", w.WriteRequest, true, func(s api.LoadSample) float64 { return float64(s.WriteRequestsCount) }),
		NewSampleCost("MemstoreSize", w.MemstoreSize, true, func(s api.LoadSample) float64 { return float64(s.MemStoreSizeMB) }),
		NewSampleCost("StoreFileSize", w.StoreFileSize, false, func(s api.LoadSample) float64 { return float64(s.StorefileSizeMB) }),
	}
}
