package costs_test

import (
	"fmt"
	"testing"

	"k8s.io/klog/v2"

	"github.com/clusterbalance/balancer/pkg/api"
	"github.com/clusterbalance/balancer/pkg/model"
)

// buildModel constructs a ClusterModel from a compact description: each
// entry in serverSpec is (serverID, host, rack); each entry in regionSpec
// is (regionID, table, primaryOf-or-empty); assignment maps server to the
// regions it initially holds.
func buildModel(t *testing.T, serverSpec [][3]string, regionSpec [][3]string, assignment map[string][]string, cfg api.Config) *model.ClusterModel {
	t.Helper()

	servers := map[api.ServerID]api.ServerInfo{}
	for _, s := range serverSpec {
		id := api.ServerID(s[0])
		servers[id] = api.ServerInfo{ID: id, Host: s[1], Rack: s[2]}
	}

	regions := map[api.RegionID]api.RegionInfo{}
	for _, r := range regionSpec {
		id := api.RegionID(r[0])
		regions[id] = api.RegionInfo{ID: id, Table: api.TableID(r[1]), PrimaryOf: api.RegionID(r[2])}
	}

	assign := map[api.ServerID][]api.RegionID{}
	for s, rs := range assignment {
		ids := make([]api.RegionID, len(rs))
		for i, r := range rs {
			ids[i] = api.RegionID(r)
		}
		assign[api.ServerID(s)] = ids
	}

	inv := api.Invocation{Assignment: assign, Regions: regions, Servers: servers}
	m, err := model.New(inv, cfg, klog.Background())
	if err != nil {
		t.Fatalf("model.New() error: %v", err)
	}
	return m
}

// evenServers builds n single-host, single-rack servers named s0..sN-1.
func evenServers(n int) [][3]string {
	out := make([][3]string, n)
	for i := range out {
		name := serverID(i)
		out[i] = [3]string{name, name + "-host", name + "-rack"}
	}
	return out
}

func serverID(i int) string { return fmt.Sprintf("s%d", i) }
func regionID(i int) string { return fmt.Sprintf("r%d", i) }

// evenRegions builds n regions of table "t0", each its own primary.
func evenRegions(n int) [][3]string {
	out := make([][3]string, n)
	for i := range out {
		out[i] = [3]string{regionID(i), "t0", ""}
	}
	return out
}
