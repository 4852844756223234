package model

import "testing"

func TestApplyPanicsOnWrongSourceServer(t *testing.T) {
	m := fixture(t, 3, 9)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic moving a region off a server it isn't on")
		}
	}()
	wrong := (m.RegionToServer(0) + 1) % 3
	m.Apply(NewMove(0, wrong, (wrong+1)%3))
}

func TestApplyPanicsOnDoubleAssign(t *testing.T) {
	m := fixture(t, 3, 9)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic assigning an already-assigned region")
		}
	}()
	m.Apply(NewAssign(0, 1))
}

func TestApplyPanicsOnSwapSameServer(t *testing.T) {
	m := fixture(t, 3, 9)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic swapping two regions already on the same server")
		}
	}()
	// Regions 0 and 3 both land on server 0 (round-robin over 3 servers).
	m.Apply(NewSwap(0, m.RegionToServer(0), 3, m.RegionToServer(3)))
}

func TestApplyMoveUpdatesHostAndRackIndices(t *testing.T) {
	m := fixture(t, 3, 9)
	from := m.RegionToServer(0)
	to := (from + 1) % 3
	host := m.ServerHost(to)
	rack := m.ServerRack(to)

	m.Apply(NewMove(0, from, to))

	found := false
	for _, r := range m.RegionsPerHost(host) {
		if r == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("region 0 not present in RegionsPerHost(%d) after move", host)
	}

	found = false
	for _, r := range m.RegionsPerRack(rack) {
		if r == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("region 0 not present in RegionsPerRack(%d) after move", rack)
	}
}
