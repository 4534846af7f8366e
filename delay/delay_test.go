package delay

import "testing"

func TestCalibration(t *testing.T) {
	cases := map[uint32]uint32{
		12_000_000:  12,
		204_000_000: 204,
		999_999:     0,
		0:           0,
	}
	for osc, want := range cases {
		if got := New(osc).CyclesPerMicro(); got != want {
			t.Fatalf("New(%d).CyclesPerMicro()=%d want %d", osc, got, want)
		}
	}
}

func TestZeroDelaySpinsNothing(t *testing.T) {
	if n := spin(0, 12); n != 0 {
		t.Fatalf("spin(0)=%d iterations", n)
	}
	if n := spin(1000, 0); n != 0 {
		t.Fatalf("uncalibrated spin ran %d iterations", n)
	}
}

func TestSpinCountIsAtLeastRequestedAndMonotonic(t *testing.T) {
	const cpm = 12
	var prev uint64
	for us := uint32(1); us <= 500; us++ {
		n := spin(us, cpm)
		if n < uint64(us)*cpm {
			t.Fatalf("spin(%d)=%d < %d", us, n, uint64(us)*cpm)
		}
		if n < prev {
			t.Fatalf("spin(%d)=%d fewer than spin(%d)=%d", us, n, us-1, prev)
		}
		prev = n
	}
}

func TestPublicEntryPointsReturn(t *testing.T) {
	tm := New(12_000_000)
	before := sink
	tm.Microseconds(10)
	if sink-before != 120 {
		t.Fatalf("Microseconds(10) burnt %d iterations", sink-before)
	}
	before = sink
	tm.Duration(-5)
	tm.Duration(0)
	if sink != before {
		t.Fatalf("non-positive Duration spun")
	}
	tm.Duration(1500) // 1.5us rounds up to 2us
	if sink-before != 24 {
		t.Fatalf("Duration(1.5us) burnt %d iterations", sink-before)
	}
}
