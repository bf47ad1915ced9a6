package arena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := NewWithCapacity[int64](4)

	// Test initial state
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 1 {
		t.Errorf("Initial NumChunks = %d, want 1", a.NumChunks())
	}
	if a.Capacity() != 4 {
		t.Errorf("Initial Capacity = %d, want 4", a.Capacity())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	a.Alloc(1)
	a.Alloc(2)

	if a.SizeInUse() != 16 {
		t.Errorf("SizeInUse = %d, want 16", a.SizeInUse())
	}
	if a.Utilization() != 0.5 {
		t.Errorf("Utilization = %f, want 0.5", a.Utilization())
	}

	// Force chunk growth
	a.Alloc(3)
	a.Alloc(4)
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}
	if a.Capacity() != 12 {
		t.Errorf("Capacity after growth = %d, want 12", a.Capacity())
	}

	// Test metrics snapshot
	metrics := a.Metrics()
	want := ArenaMetrics{
		Len:         4,
		Capacity:    12,
		NumChunks:   2,
		CurrentLen:  0,
		CurrentCap:  8,
		SizeInUse:   32,
		Utilization: 4.0 / 12.0,
	}
	if metrics != want {
		t.Errorf("Metrics() = %+v, want %+v", metrics, want)
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := NewWithCapacity[int](2)
	a.Alloc(1)
	a.Release()

	if m := a.Metrics(); m != (ArenaMetrics{}) {
		t.Errorf("Metrics after Release = %+v, want zero", m)
	}
}

func TestArenaMetricsDuringReservation(t *testing.T) {
	a := NewWithCapacity[int](2)
	r := a.Reserve()
	if a.Len() != 1 {
		t.Errorf("Len with pending reservation = %d, want 1", a.Len())
	}
	r.Abandon()
	if a.Len() != 0 || a.NumChunks() != 1 {
		t.Errorf("after Abandon: len=%d chunks=%d, want 0, 1", a.Len(), a.NumChunks())
	}
}
