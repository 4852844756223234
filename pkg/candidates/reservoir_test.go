package candidates

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestReservoirPickRunIgnoresSingletons(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, ok := reservoirPickRun([]int{1, 2, 3}, rng); ok {
		t.Fatalf("expected no pick when every run has length 1")
	}
}

func TestReservoirPickRunFindsTheOnlyGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v, ok := reservoirPickRun([]int{1, 2, 2, 2, 3}, rng)
	if !ok || v != 2 {
		t.Fatalf("reservoirPickRun = (%d, %v), want (2, true)", v, ok)
	}
}

func TestReservoirPickRunDistributesAcrossGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := map[int]int{}
	for i := 0; i < 2000; i++ {
		v, ok := reservoirPickRun([]int{1, 1, 2, 2, 3, 3}, rng)
		if !ok {
			t.Fatalf("expected a pick among three equal-length runs")
		}
		counts[v]++
	}
	for _, v := range []int{1, 2, 3} {
		if counts[v] < 500 {
			t.Fatalf("group %d picked only %d/2000 times, expected roughly uniform selection", v, counts[v])
		}
	}
}
