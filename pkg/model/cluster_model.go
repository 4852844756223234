// Package model implements the in-memory cluster model: the mutable
// region/server/table/host/rack assignment snapshot that the search loop
// mutates and every cost function reads. All hot operations are either
// O(1) or a sorted-array scan/binary-insertion over small per-group
// slices (spec §9 "sorted-array-with-binary-insertion").
package model

import (
	"fmt"
	"sort"

	"github.com/clusterbalance/balancer/pkg/api"
	"k8s.io/klog/v2"
)

// ClusterModel is created at the start of one balance invocation, mutated
// only by the search driver, and discarded at the end — it is never shared
// across invocations (spec §3 invariant 5).
type ClusterModel struct {
	logger klog.Logger

	numRegions int
	numServers int
	numTables  int
	numHosts   int
	numRacks   int

	regionID []api.RegionID
	serverID []api.ServerID

	regionIDIndex map[api.RegionID]int
	serverIDIndex map[api.ServerID]int
	tableIndex    map[api.TableID]int
	hostIndex     map[string]int
	rackIndex     map[string]int

	// regionTable[r] is the table index of region r.
	regionTable []int
	// regionPrimary[r] is the region index of the primary replica sharing
	// r's primary index (== r itself when r is the primary).
	regionPrimary []int

	serverHost []int
	serverRack []int

	regionToServer        []int
	initialRegionToServer []int

	regionsPerServer [][]int
	regionsPerHost   [][]int
	regionsPerRack   [][]int

	primariesPerServer [][]int
	primariesPerHost   [][]int
	primariesPerRack   [][]int

	// regionCountPerServerPerTable[s][t]
	regionCountPerServerPerTable [][]int

	// regionLocations[r] ranks server indices by descending locality,
	// populated lazily from the oracle and cached for the model's lifetime.
	regionLocations    [][]int
	regionLocationsSet []bool

	localityCache map[localityKey]float64
	oracle        api.LocalityOracle

	regionLoadHistory [][]api.LoadSample
	loadHistoryCap    int

	sortedServersByCount      []int
	sortedServersByCountValid bool
}

type localityKey struct {
	region, server int
}

// New builds a ClusterModel from one invocation's inputs. It performs the
// initial ASSIGN of every region named in inv.Assignment; regions with an
// unknown server are rejected rather than silently dropped, since the
// spec places initial placement of unassigned regions out of THE CORE's
// scope (§1).
func New(inv api.Invocation, cfg api.Config, logger klog.Logger) (*ClusterModel, error) {
	m := &ClusterModel{
		logger:         logger,
		regionIDIndex:  map[api.RegionID]int{},
		serverIDIndex:  map[api.ServerID]int{},
		tableIndex:     map[api.TableID]int{},
		hostIndex:      map[string]int{},
		rackIndex:      map[string]int{},
		localityCache:  map[localityKey]float64{},
		oracle:         inv.Locality,
		loadHistoryCap: cfg.NumRegionLoadsToRemember,
	}

	if err := m.indexServers(inv); err != nil {
		return nil, err
	}
	if err := m.indexRegions(inv); err != nil {
		return nil, err
	}

	m.regionToServer = make([]int, m.numRegions)
	for i := range m.regionToServer {
		m.regionToServer[i] = -1
	}

	m.regionsPerServer = make([][]int, m.numServers)
	m.regionsPerHost = make([][]int, m.numHosts)
	m.regionsPerRack = make([][]int, m.numRacks)
	m.primariesPerServer = make([][]int, m.numServers)
	m.primariesPerHost = make([][]int, m.numHosts)
	m.primariesPerRack = make([][]int, m.numRacks)

	m.regionCountPerServerPerTable = make([][]int, m.numServers)
	for s := range m.regionCountPerServerPerTable {
		m.regionCountPerServerPerTable[s] = make([]int, m.numTables)
	}

	m.regionLocations = make([][]int, m.numRegions)
	m.regionLocationsSet = make([]bool, m.numRegions)
	m.regionLoadHistory = make([][]api.LoadSample, m.numRegions)

	if err := m.assignInitial(inv); err != nil {
		return nil, err
	}

	m.initialRegionToServer = append([]int(nil), m.regionToServer...)
	m.loadLoadHistory(inv)

	return m, nil
}

func (m *ClusterModel) indexServers(inv api.Invocation) error {
	serverIDs := make([]api.ServerID, 0, len(inv.Servers))
	for id := range inv.Servers {
		serverIDs = append(serverIDs, id)
	}
	sort.Slice(serverIDs, func(i, j int) bool { return serverIDs[i] < serverIDs[j] })

	m.serverID = make([]api.ServerID, 0, len(serverIDs))
	m.serverHost = make([]int, 0, len(serverIDs))
	m.serverRack = make([]int, 0, len(serverIDs))

	for _, id := range serverIDs {
		info := inv.Servers[id]
		rack := info.Rack
		if rack == "" && inv.Racks != nil {
			rack = inv.Racks(id)
		}
		hostIdx, ok := m.hostIndex[info.Host]
		if !ok {
			hostIdx = m.numHosts
			m.hostIndex[info.Host] = hostIdx
			m.numHosts++
		}
		rackIdx, ok := m.rackIndex[rack]
		if !ok {
			rackIdx = m.numRacks
			m.rackIndex[rack] = rackIdx
			m.numRacks++
		}

		idx := len(m.serverID)
		m.serverIDIndex[id] = idx
		m.serverID = append(m.serverID, id)
		m.serverHost = append(m.serverHost, hostIdx)
		m.serverRack = append(m.serverRack, rackIdx)
	}
	m.numServers = len(m.serverID)
	return nil
}

func (m *ClusterModel) indexRegions(inv api.Invocation) error {
	regionIDs := make([]api.RegionID, 0, len(inv.Regions))
	for id := range inv.Regions {
		regionIDs = append(regionIDs, id)
	}
	sort.Slice(regionIDs, func(i, j int) bool { return regionIDs[i] < regionIDs[j] })

	m.regionID = make([]api.RegionID, 0, len(regionIDs))
	m.regionTable = make([]int, 0, len(regionIDs))
	primaryOf := make([]api.RegionID, 0, len(regionIDs))

	for _, id := range regionIDs {
		info := inv.Regions[id]
		tableIdx, ok := m.tableIndex[info.Table]
		if !ok {
			tableIdx = m.numTables
			m.tableIndex[info.Table] = tableIdx
			m.numTables++
		}
		idx := len(m.regionID)
		m.regionIDIndex[id] = idx
		m.regionID = append(m.regionID, id)
		m.regionTable = append(m.regionTable, tableIdx)
		po := info.PrimaryOf
		if po == "" {
			po = id
		}
		primaryOf = append(primaryOf, po)
	}
	m.numRegions = len(m.regionID)

	m.regionPrimary = make([]int, m.numRegions)
	for r, po := range primaryOf {
		pidx, ok := m.regionIDIndex[po]
		if !ok {
			return fmt.Errorf("region %q names unknown primary %q", m.regionID[r], po)
		}
		m.regionPrimary[r] = pidx
	}
	return nil
}

func (m *ClusterModel) assignInitial(inv api.Invocation) error {
	for serverID, regions := range inv.Assignment {
		s, ok := m.serverIDIndex[serverID]
		if !ok {
			return fmt.Errorf("assignment names unknown server %q", serverID)
		}
		for _, regionID := range regions {
			r, ok := m.regionIDIndex[regionID]
			if !ok {
				return fmt.Errorf("assignment names unknown region %q", regionID)
			}
			m.Apply(NewAssign(r, s))
		}
	}
	return nil
}

// NumRegions returns the total region count.
func (m *ClusterModel) NumRegions() int { return m.numRegions }

// NumServers returns the total server count.
func (m *ClusterModel) NumServers() int { return m.numServers }

// NumTables returns the total table count.
func (m *ClusterModel) NumTables() int { return m.numTables }

// NumHosts returns the total host count.
func (m *ClusterModel) NumHosts() int { return m.numHosts }

// NumRacks returns the total rack count.
func (m *ClusterModel) NumRacks() int { return m.numRacks }

// RegionIDAt returns the opaque id of region index r.
func (m *ClusterModel) RegionIDAt(r int) api.RegionID { return m.regionID[r] }

// ServerIDAt returns the opaque id of server index s.
func (m *ClusterModel) ServerIDAt(s int) api.ServerID { return m.serverID[s] }

// RegionToServer returns region r's current server index, or -1 if unassigned.
func (m *ClusterModel) RegionToServer(r int) int { return m.regionToServer[r] }

// InitialRegionToServer returns region r's server index at construction time.
func (m *ClusterModel) InitialRegionToServer(r int) int { return m.initialRegionToServer[r] }

// RegionTable returns region r's table index.
func (m *ClusterModel) RegionTable(r int) int { return m.regionTable[r] }

// ServerHost returns server s's host index.
func (m *ClusterModel) ServerHost(s int) int { return m.serverHost[s] }

// ServerRack returns server s's rack index.
func (m *ClusterModel) ServerRack(s int) int { return m.serverRack[s] }

// RegionsOfTable returns the number of regions belonging to table t.
func (m *ClusterModel) RegionsOfTable(t int) int {
	n := 0
	for _, rt := range m.regionTable {
		if rt == t {
			n++
		}
	}
	return n
}

// NumRegionsOnServer returns the number of regions currently on server s.
func (m *ClusterModel) NumRegionsOnServer(s int) int { return len(m.regionsPerServer[s]) }

// NumRegionsOnServerOfTable returns the number of regions of table t on server s.
func (m *ClusterModel) NumRegionsOnServerOfTable(s, t int) int {
	return m.regionCountPerServerPerTable[s][t]
}

// RegionsPerServer returns the sorted region indices currently on server s.
// The returned slice is owned by the model; callers must not mutate it.
func (m *ClusterModel) RegionsPerServer(s int) []int { return m.regionsPerServer[s] }

// RegionsPerHost returns the sorted region indices currently on host h.
func (m *ClusterModel) RegionsPerHost(h int) []int { return m.regionsPerHost[h] }

// RegionsPerRack returns the sorted region indices currently on rack k.
func (m *ClusterModel) RegionsPerRack(k int) []int { return m.regionsPerRack[k] }

// PrimariesPerServer returns the sorted primary-region indices of the
// regions assigned to server s (spec §4.1 replica-colocation trick).
func (m *ClusterModel) PrimariesPerServer(s int) []int { return m.primariesPerServer[s] }

// PrimariesPerHost is the host-level analogue of PrimariesPerServer.
func (m *ClusterModel) PrimariesPerHost(h int) []int { return m.primariesPerHost[h] }

// PrimariesPerRack is the rack-level analogue of PrimariesPerServer.
func (m *ClusterModel) PrimariesPerRack(k int) []int { return m.primariesPerRack[k] }

// IsPrimary reports whether region r is itself a primary (not a secondary
// replica of some other region).
func (m *ClusterModel) IsPrimary(r int) bool { return m.regionPrimary[r] == r }

// PrimaryOf returns the region index of r's primary replica.
func (m *ClusterModel) PrimaryOf(r int) int { return m.regionPrimary[r] }

// SortedServersByRegionCount returns server indices sorted ascending by
// current region count; lazily computed and invalidated on every Apply.
func (m *ClusterModel) SortedServersByRegionCount() []int {
	if m.sortedServersByCountValid {
		return m.sortedServersByCount
	}
	servers := make([]int, m.numServers)
	for s := range servers {
		servers[s] = s
	}
	sort.Slice(servers, func(i, j int) bool {
		return len(m.regionsPerServer[servers[i]]) < len(m.regionsPerServer[servers[j]])
	})
	m.sortedServersByCount = servers
	m.sortedServersByCountValid = true
	return servers
}

// MinRegionsIfEvenlyDistributed returns floor(numRegionsOfTable(t) / numServers).
func (m *ClusterModel) MinRegionsIfEvenlyDistributed(t int) int {
	if m.numServers == 0 {
		return 0
	}
	return m.RegionsOfTable(t) / m.numServers
}

// MaxRegionsIfEvenlyDistributed returns ceil(numRegionsOfTable(t) / numServers).
func (m *ClusterModel) MaxRegionsIfEvenlyDistributed(t int) int {
	if m.numServers == 0 {
		return 0
	}
	n := m.RegionsOfTable(t)
	return (n + m.numServers - 1) / m.numServers
}

// NumServersWithMaxRegionsIfEvenlyDistributed returns numRegionsOfTable(t) mod
// numServers, or numServers when that remainder is zero.
func (m *ClusterModel) NumServersWithMaxRegionsIfEvenlyDistributed(t int) int {
	if m.numServers == 0 {
		return 0
	}
	rem := m.RegionsOfTable(t) % m.numServers
	if rem == 0 {
		return m.numServers
	}
	return rem
}
