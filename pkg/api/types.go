// Package api defines the external surface of the cluster balancer: the
// inputs a caller hands in, the plan it gets back, and the collaborators
// (locality oracle, rack resolver) it must supply. Nothing in this package
// mutates a ClusterModel directly — it is the wire format between a caller
// and pkg/search.
package api

// RegionID identifies a region by its stable, opaque name.
type RegionID string

// ServerID identifies a server as host:port:startcode.
type ServerID string

// TableID identifies the table a region belongs to.
type TableID string

// RegionInfo describes one region's static identity.
type RegionInfo struct {
	ID RegionID `json:"id"`
	// Table is the table this region belongs to.
	Table TableID `json:"table"`
	// PrimaryOf is the RegionID of the primary replica sharing this
	// region's primary index. It is empty, or equal to ID, for a primary
	// region.
	PrimaryOf RegionID `json:"primaryOf,omitempty"`
}

// ServerInfo describes one server's static identity.
type ServerInfo struct {
	ID   ServerID `json:"id"`
	Host string   `json:"host"`
	Rack string   `json:"rack,omitempty"`
}

// LoadSample is a single historical observation for a region.
type LoadSample struct {
	ReadRequestsCount  int64 `json:"readRequestsCount"`
	WriteRequestsCount int64 `json:"writeRequestsCount"`
	MemStoreSizeMB     int32 `json:"memStoreSizeMB"`
	StorefileSizeMB    int32 `json:"storefileSizeMB"`
}

// LocalityOracle reports, for a region, the servers holding its data
// blocks ranked by locality fraction, most-local first. A nil oracle
// means locality information is unavailable; the Locality cost function
// downgrades to its documented fallback rather than failing.
type LocalityOracle func(region RegionID) []ServerLocality

// ServerLocality is one entry of a LocalityOracle response.
type ServerLocality struct {
	Server   ServerID
	Fraction float64 // in [0, 1]
}

// RackResolver maps a server to the rack it lives in.
type RackResolver func(server ServerID) string

// Move is one emitted plan entry.
type Move struct {
	Region RegionID `json:"region"`
	From   ServerID `json:"from"`
	To     ServerID `json:"to"`
}

// Plan is the result of a balance invocation. A nil or empty Plan means
// no improving movement was found.
type Plan []Move

// Invocation bundles every input a caller hands to a single balance
// invocation (spec §6 "Inputs per invocation").
type Invocation struct {
	// Assignment is the current placement: each server -> the regions it holds.
	Assignment map[ServerID][]RegionID
	// Regions carries per-region static identity (table, replica group).
	Regions map[RegionID]RegionInfo
	// Servers carries per-server static identity (host, rack). RackResolver
	// is consulted only when a ServerInfo.Rack is empty.
	Servers map[ServerID]ServerInfo
	// LoadHistory is the bounded per-region sample history, oldest first.
	LoadHistory map[RegionID][]LoadSample
	// Locality is optional. With nil, the Locality cost charges its maximum
	// penalty (1) for every region and the Locality candidate generator
	// always returns a Null action.
	Locality LocalityOracle
	// Racks resolves a server's rack when ServerInfo.Rack is unset.
	Racks RackResolver
}
