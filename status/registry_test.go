package status

import "testing"

func TestRegistry_SnapshotAndCachedPointers(t *testing.T) {
	r := NewRegistry()
	fired := r.Ints.Get(KeyShipFired)
	fired.Add(3)
	r.Floats.Get(KeyTickDuration).Set(1.5)

	if r.Ints.Get(KeyShipFired) != fired {
		t.Error("Expected Get to return the cached pointer")
	}

	snap := r.Snapshot()
	if snap[KeyShipFired] != int64(3) {
		t.Errorf("Expected 3 fired, got %v", snap[KeyShipFired])
	}
	if snap[KeyTickDuration] != 1.5 {
		t.Errorf("Expected 1.5 tick ms, got %v", snap[KeyTickDuration])
	}
	if r.TotalCount() != 2 {
		t.Errorf("Expected 2 metrics, got %d", r.TotalCount())
	}
}

func TestMetricMap_KeysSorted(t *testing.T) {
	m := NewMetricMap[Gauge]()
	m.Get("b").Set(2)
	m.Get("a").Set(1)
	m.Get("c").Add(0.5)
	m.Get("a")

	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Expected [a b c], got %v", keys)
	}

	sum := 0.0
	m.Range(func(_ string, g *Gauge) { sum += g.Get() })
	if sum != 3.5 {
		t.Errorf("Expected sum 3.5, got %v", sum)
	}
}
