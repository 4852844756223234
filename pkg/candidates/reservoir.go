package candidates

import "golang.org/x/exp/rand"

// reservoirPickRun walks a sorted array of primary-region indices and
// reservoir-samples one run of length > 1 (a colocated-replica group),
// giving every such run equal selection probability regardless of its
// length (spec §4.3 "Reservoir selection"). It returns the run's shared
// value and true, or (-1, false) if no run of length > 1 exists.
func reservoirPickRun(sorted []int, rng *rand.Rand) (int, bool) {
	picked := -1
	found := false
	runningMax := 0.0

	i := 0
	for i < len(sorted) {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > 1 {
			draw := rng.Float64()
			if !found || draw > runningMax {
				runningMax = draw
				picked = sorted[i]
				found = true
			}
		}
		i = j
	}
	return picked, found
}
