package api

import "fmt"

// Config holds every overridable balancer setting (spec §6 "Configuration
// keys"). Zero-valued fields are filled in by SetDefaults_Config.
type Config struct {
	MaxSteps                 int     `json:"maxSteps,omitempty"`
	StepsPerRegion           int     `json:"stepsPerRegion,omitempty"`
	MaxRunningTimeMillis     int64   `json:"maxRunningTimeMillis,omitempty"`
	NumRegionLoadsToRemember int     `json:"numRegionLoadsToRemember,omitempty"`
	MinCostNeedBalance       float64 `json:"minCostNeedBalance,omitempty"`
	MaxMovePercent           float64 `json:"maxMovePercent,omitempty"`
	MaxTableSkewWeight       float64 `json:"maxTableSkewWeight,omitempty"`
	MinServerBalance         int     `json:"minServerBalance,omitempty"`

	Weights WeightConfig `json:"weights,omitempty"`
}

// WeightConfig holds the per-cost-function multipliers (spec §4.2 table).
// A multiplier <= 0 disables that cost function entirely. SetDefaults_Config
// replaces a zero multiplier with its default, so in a defaulted Config (such
// as one returned by LoadConfig) only a negative multiplier disables one.
type WeightConfig struct {
	RegionCountSkew        float64 `json:"regionCountSkew,omitempty"`
	PrimaryRegionCountSkew float64 `json:"primaryRegionCountSkew,omitempty"`
	MoveCost               float64 `json:"moveCost,omitempty"`
	Locality               float64 `json:"locality,omitempty"`
	TableSkew              float64 `json:"tableSkew,omitempty"`
	RegionReplicaHost      float64 `json:"regionReplicaHost,omitempty"`
	RegionReplicaRack      float64 `json:"regionReplicaRack,omitempty"`
	ReadRequest            float64 `json:"readRequest,omitempty"`
	WriteRequest           float64 `json:"writeRequest,omitempty"`
	MemstoreSize           float64 `json:"memstoreSize,omitempty"`
	StoreFileSize          float64 `json:"storeFileSize,omitempty"`
}

// Default values, spec §6.
const (
	DefaultMaxSteps                 = 1_000_000
	DefaultStepsPerRegion           = 800
	DefaultMaxRunningTimeMillis     = 30_000
	DefaultNumRegionLoadsToRemember = 15
	DefaultMinCostNeedBalance       = 0.05
	DefaultMaxMovePercent           = 0.25
	DefaultMaxTableSkewWeight       = 0.0
	DefaultMinServerBalance         = 2

	DefaultWeightRegionCountSkew        = 500
	DefaultWeightPrimaryRegionCountSkew = 500
	DefaultWeightMoveCost               = 7
	DefaultWeightLocality               = 25
	DefaultWeightTableSkew              = 35
	DefaultWeightRegionReplicaHost      = 100000
	DefaultWeightRegionReplicaRack      = 10000
	DefaultWeightReadRequest            = 5
	DefaultWeightWriteRequest           = 5
	DefaultWeightMemstoreSize           = 5
	DefaultWeightStoreFileSize          = 5
)

// DefaultConfig returns a Config with every field set to its spec default.
func DefaultConfig() Config {
	cfg := Config{}
	SetDefaults_Config(&cfg)
	return cfg
}

// SetDefaults_Config fills in zero-valued fields of cfg with spec defaults,
// mirroring the teacher's SetDefaults_MultiObjectiveArgs: only a field that
// was left at its zero value is touched. An explicit zero cannot be told
// apart from an unset field, so it is replaced by the default as well;
// MaxTableSkewWeight, whose default is 0, is the only field that keeps a
// zero value.
func SetDefaults_Config(cfg *Config) {
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.StepsPerRegion == 0 {
		cfg.StepsPerRegion = DefaultStepsPerRegion
	}
	if cfg.MaxRunningTimeMillis == 0 {
		cfg.MaxRunningTimeMillis = DefaultMaxRunningTimeMillis
	}
	if cfg.NumRegionLoadsToRemember == 0 {
		cfg.NumRegionLoadsToRemember = DefaultNumRegionLoadsToRemember
	}
	if cfg.MinCostNeedBalance == 0 {
		cfg.MinCostNeedBalance = DefaultMinCostNeedBalance
	}
	if cfg.MaxMovePercent == 0 {
		cfg.MaxMovePercent = DefaultMaxMovePercent
	}
	if cfg.MinServerBalance == 0 {
		cfg.MinServerBalance = DefaultMinServerBalance
	}
	// MaxTableSkewWeight defaults to 0, nothing to fill in.

	w := &cfg.Weights
	setDefaultWeight(&w.RegionCountSkew, DefaultWeightRegionCountSkew)
	setDefaultWeight(&w.PrimaryRegionCountSkew, DefaultWeightPrimaryRegionCountSkew)
	setDefaultWeight(&w.MoveCost, DefaultWeightMoveCost)
	setDefaultWeight(&w.Locality, DefaultWeightLocality)
	setDefaultWeight(&w.TableSkew, DefaultWeightTableSkew)
	setDefaultWeight(&w.RegionReplicaHost, DefaultWeightRegionReplicaHost)
	setDefaultWeight(&w.RegionReplicaRack, DefaultWeightRegionReplicaRack)
	setDefaultWeight(&w.ReadRequest, DefaultWeightReadRequest)
	setDefaultWeight(&w.WriteRequest, DefaultWeightWriteRequest)
	setDefaultWeight(&w.MemstoreSize, DefaultWeightMemstoreSize)
	setDefaultWeight(&w.StoreFileSize, DefaultWeightStoreFileSize)
}

func setDefaultWeight(field *float64, def float64) {
	if *field == 0 {
		*field = def
	}
}

// ValidateConfig checks Config for internally consistent values.
func ValidateConfig(cfg Config) error {
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("maxSteps must be >= 0, got %d", cfg.MaxSteps)
	}
	if cfg.StepsPerRegion < 0 {
		return fmt.Errorf("stepsPerRegion must be >= 0, got %d", cfg.StepsPerRegion)
	}
	if cfg.MaxRunningTimeMillis < 0 {
		return fmt.Errorf("maxRunningTimeMillis must be >= 0, got %d", cfg.MaxRunningTimeMillis)
	}
	if cfg.MinCostNeedBalance < 0 || cfg.MinCostNeedBalance > 1 {
		return fmt.Errorf("minCostNeedBalance must be in [0,1], got %v", cfg.MinCostNeedBalance)
	}
	if cfg.MaxMovePercent < 0 || cfg.MaxMovePercent > 1 {
		return fmt.Errorf("maxMovePercent must be in [0,1], got %v", cfg.MaxMovePercent)
	}
	if cfg.MaxTableSkewWeight < 0 || cfg.MaxTableSkewWeight > 1 {
		return fmt.Errorf("maxTableSkewWeight must be in [0,1], got %v", cfg.MaxTableSkewWeight)
	}
	if cfg.MinServerBalance < 1 {
		return fmt.Errorf("minServerBalance must be >= 1, got %d", cfg.MinServerBalance)
	}
	return nil
}
