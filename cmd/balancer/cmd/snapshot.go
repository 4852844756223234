package cmd

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/clusterbalance/balancer/pkg/api"
)

// Snapshot is the on-disk (YAML or JSON) representation of one balance
// invocation's inputs: the server inventory, region inventory, current
// assignment, and per-region load history (spec §6 "Inputs per
// invocation"). It has no locality oracle or rack resolver of its own —
// those are live external collaborators, out of scope for a file format.
type Snapshot struct {
	Servers     []api.ServerInfo                `json:"servers"`
	Regions     []api.RegionInfo                `json:"regions"`
	Assignment  map[api.ServerID][]api.RegionID  `json:"assignment"`
	LoadHistory map[api.RegionID][]api.LoadSample `json:"loadHistory,omitempty"`
}

// LoadSnapshot reads and parses a Snapshot file at path.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Invocation converts the snapshot into an api.Invocation, ready for the
// search driver. The caller supplies the live locality oracle and rack
// resolver, since neither belongs in a static file.
func (s Snapshot) Invocation(locality api.LocalityOracle, racks api.RackResolver) api.Invocation {
	servers := make(map[api.ServerID]api.ServerInfo, len(s.Servers))
	for _, info := range s.Servers {
		servers[info.ID] = info
	}
	regions := make(map[api.RegionID]api.RegionInfo, len(s.Regions))
	for _, info := range s.Regions {
		regions[info.ID] = info
	}
	return api.Invocation{
		Assignment:  s.Assignment,
		Regions:     regions,
		Servers:     servers,
		LoadHistory: s.LoadHistory,
		Locality:    locality,
		Racks:       racks,
	}
}
