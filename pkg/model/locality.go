package model

import "github.com/clusterbalance/balancer/pkg/api"

// locationsOf returns region r's servers ranked by descending locality,
// querying the oracle on first use and caching the result for the
// lifetime of the model (spec §4.1).
func (m *ClusterModel) locationsOf(r int) []int {
	if m.regionLocationsSet[r] {
		return m.regionLocations[r]
	}
	m.regionLocationsSet[r] = true
	if m.oracle == nil {
		return nil
	}
	entries := m.oracle(m.regionID[r])
	ranked := make([]int, 0, len(entries))
	for _, e := range entries {
		s, ok := m.serverIDIndex[e.Server]
		if !ok {
			continue
		}
		ranked = append(ranked, s)
		m.localityCache[localityKey{region: r, server: s}] = e.Fraction
	}
	m.regionLocations[r] = ranked
	return ranked
}

// LocalityOf returns the fraction of region r's data blocks local to
// server s, in [0, 1]. Unknown locality (no oracle, or server absent from
// the oracle's response) reports 0.
func (m *ClusterModel) LocalityOf(r, s int) float64 {
	m.locationsOf(r) // ensure the cache for r is populated
	return m.localityCache[localityKey{region: r, server: s}]
}

// HasLocationData reports whether the oracle returned any ranked servers
// for region r.
func (m *ClusterModel) HasLocationData(r int) bool {
	return len(m.locationsOf(r)) > 0
}

// LeastLoadedServerWithLocalityFor scans region r's ranked locations in
// order and returns the first server (other than excluding) whose region
// count is below the cluster mean, or -1 if none qualify.
func (m *ClusterModel) LeastLoadedServerWithLocalityFor(r, excluding int) int {
	locations := m.locationsOf(r)
	if len(locations) == 0 || m.numServers == 0 {
		return -1
	}
	mean := float64(m.numRegions) / float64(m.numServers)
	for _, s := range locations {
		if s == excluding {
			continue
		}
		if float64(len(m.regionsPerServer[s])) < mean {
			return s
		}
	}
	return -1
}

// LowestLocalityRegionOn returns the region on server s with the smallest
// LocalityOf(r, s), or -1 if s has no regions.
func (m *ClusterModel) LowestLocalityRegionOn(s int) int {
	regions := m.regionsPerServer[s]
	if len(regions) == 0 {
		return -1
	}
	best := regions[0]
	bestLocality := m.LocalityOf(best, s)
	for _, r := range regions[1:] {
		l := m.LocalityOf(r, s)
		if l < bestLocality {
			best = r
			bestLocality = l
		}
	}
	return best
}

// RegionLoadHistory returns the bounded sample history for region r,
// oldest first.
func (m *ClusterModel) RegionLoadHistory(r int) []api.LoadSample {
	return m.regionLoadHistory[r]
}

func (m *ClusterModel) loadLoadHistory(inv api.Invocation) {
	cap := m.loadHistoryCap
	if cap <= 0 {
		cap = 1
	}
	for id, samples := range inv.LoadHistory {
		r, ok := m.regionIDIndex[id]
		if !ok {
			continue
		}
		if len(samples) > cap {
			samples = samples[len(samples)-cap:]
		}
		m.regionLoadHistory[r] = append([]api.LoadSample(nil), samples...)
	}
}
