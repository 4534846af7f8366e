// Package delay provides a calibrated spin-loop delay for bring-up code
// that runs before any timer or interrupt is available.
package delay

import (
	"time"

	"ciaa-go/x/mathx"
)

// sink keeps the spin loop from being optimised away.
var sink uint32

// Timer burns CPU for approximate microsecond delays. It is calibrated once
// from the oscillator rate and never yields.
type Timer struct {
	cyclesPerMicro uint32
}

// New calibrates a Timer for an oscillator running at oscHz.
func New(oscHz uint32) Timer {
	return Timer{cyclesPerMicro: oscHz / 1_000_000}
}

// CyclesPerMicro returns the loop iterations burnt per microsecond.
func (t Timer) CyclesPerMicro() uint32 { return t.cyclesPerMicro }

// Microseconds spins for about us microseconds. us == 0 returns at once.
func (t Timer) Microseconds(us uint32) {
	spin(us, t.cyclesPerMicro)
}

// Duration spins for about d, rounded up to whole microseconds. Negative
// durations return at once.
func (t Timer) Duration(d time.Duration) {
	if d <= 0 {
		return
	}
	us := mathx.CeilDiv(uint64(d), uint64(time.Microsecond))
	for us > 0 {
		chunk := mathx.Min(us, 1<<32-1)
		spin(uint32(chunk), t.cyclesPerMicro)
		us -= chunk
	}
}

// spin burns us*cpm iterations and returns how many it ran.
func spin(us, cpm uint32) uint64 {
	var n uint64
	for ; us > 0; us-- {
		for i := uint32(0); i < cpm; i++ {
			sink++
			n++
		}
	}
	return n
}
