package pinmux

import "ciaa-go/chip"

// Pair is the TX/RX routing of one serial block.
type Pair struct {
	TX, RX Descriptor
}

// Triple is the MISO/MOSI/SCK routing of one SSP block.
type Triple struct {
	MISO, MOSI, SCK Descriptor
}

// CIAA-NXP wiring. USART2 goes straight to the FT2232 debug bridge.
var (
	usart2Pins = Pair{
		TX: MustNew(7, 1, Func6, Inactive),
		RX: MustNew(7, 2, Func6, Inactive|InputBuffer),
	}

	ssp1Pins = Triple{
		MISO: MustNew(0x1, 3, Func5, Inactive|InputBuffer|GlitchFilterDisable),
		MOSI: MustNew(0x1, 4, Func5, Inactive|InputBuffer|GlitchFilterDisable),
		SCK:  MustNew(0xF, 4, Func0, FastIO),
	}

	// USB1VBus is the USB1 VBUS enable pin, P2_5 as GPIO5[5].
	USB1VBus = MustNew(2, 5, Func4, PullUp|InputBuffer|GlitchFilterDisable)
)

// USB1 VBUS GPIO location.
const (
	USB1VBusGPIOPort uint8 = 5
	USB1VBusGPIOBit  uint8 = 5
)

// UARTPins returns the board routing for a serial block. Only USART2 is
// wired on this board; any other block reports false.
func UARTPins(b chip.Block) (Pair, bool) {
	switch b {
	case chip.USART2:
		return usart2Pins, true
	default:
		return Pair{}, false
	}
}

// SSPPins returns the board routing for an SSP block. Only SSP1 is wired;
// any other block reports false.
func SSPPins(b chip.Block) (Triple, bool) {
	switch b {
	case chip.SSP1:
		return ssp1Pins, true
	default:
		return Triple{}, false
	}
}

// ApplyUART routes the pins of serial block b. Unwired blocks are a silent
// no-op.
func (a Applier) ApplyUART(b chip.Block) {
	p, ok := UARTPins(b)
	if !ok {
		return
	}
	a.Apply(p.TX)
	a.Apply(p.RX)
}

// ApplySSP routes the pins of SSP block b. Unwired blocks are a silent no-op.
func (a Applier) ApplySSP(b chip.Block) {
	t, ok := SSPPins(b)
	if !ok {
		return
	}
	a.Apply(t.MISO)
	a.Apply(t.MOSI)
	a.Apply(t.SCK)
}
