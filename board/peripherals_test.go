package board

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"ciaa-go/chip"
)

func TestSSPInitOnlySSP1(t *testing.T) {
	c := qt.New(t)
	b, h := newTestBoard()

	b.SSPInit(chip.SSP0)
	c.Assert(h.Calls(), qt.HasLen, 0)

	b.SSPInit(chip.SSP1)
	c.Assert(h.CallsOf(chip.OpPinMuxSet), qt.HasLen, 3)
	c.Assert(h.PinMux(1, 3), qt.Equals, uint16(0xD5))
	c.Assert(h.PinMux(1, 4), qt.Equals, uint16(0xD5))
	c.Assert(h.PinMux(0xF, 4), qt.Equals, uint16(0xF0))
}

func TestUARTInitOnlyRoutesPins(t *testing.T) {
	c := qt.New(t)
	b, h := newTestBoard()

	b.UARTInit(chip.USART3)
	c.Assert(h.Calls(), qt.HasLen, 0)

	b.UARTInit(chip.USART2)
	calls := h.Calls()
	c.Assert(calls, qt.HasLen, 2)
	for _, call := range calls {
		c.Assert(call.Op, qt.Equals, chip.OpPinMuxSet)
	}
}

func TestI2CFastPlusToggle(t *testing.T) {
	c := qt.New(t)
	b, h := newTestBoard()
	b.I2CEnableFastPlus()
	c.Assert(h.I2C0Mode(), qt.Equals, chip.I2C0FastModePlus)
	b.I2CDisableFastPlus()
	c.Assert(h.I2C0Mode(), qt.Equals, chip.I2C0StandardFastMode)
}

func TestUSB1VBusIsActiveLow(t *testing.T) {
	c := qt.New(t)
	b, h := newTestBoard()

	b.USB1EnableVBus()
	out, high := h.GPIOPin(5, 5)
	c.Assert(out, qt.IsTrue)
	c.Assert(high, qt.IsFalse)
	c.Assert(h.PinMux(2, 5), qt.Equals, uint16(0xC4))

	b.USB1DisableVBus()
	_, high = h.GPIOPin(5, 5)
	c.Assert(high, qt.IsTrue)
}

func TestDACAndADCInit(t *testing.T) {
	c := qt.New(t)
	b, h := newTestBoard()
	b.ADCInit()
	c.Assert(h.Calls(), qt.HasLen, 0)
	b.DACInit()
	_, _, dac := h.Enabled()
	c.Assert(dac, qt.IsTrue)
}
