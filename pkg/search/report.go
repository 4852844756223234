package search

import "time"

// Report is the observability surface of one balance invocation (spec §6):
// overall cost before and after, each cost function's contribution
// fraction, the step count reached, and the wall-clock elapsed.
type Report struct {
	InitialCost  float64
	FinalCost    float64
	Contributions map[string]float64
	Steps        int
	Elapsed      time.Duration
	Skipped      bool // true when needsBalance short-circuited the loop
}
