// Package pinmux describes LPC43xx pin function selection and pushes it to
// the SCU.
package pinmux

import (
	"ciaa-go/chip"
	"ciaa-go/errcode"
	"ciaa-go/x/fmtx"
)

// Function selects one of the eight SCU alternate functions of a pin.
type Function uint8

const (
	Func0 Function = iota
	Func1
	Func2
	Func3
	Func4
	Func5
	Func6
	Func7
)

// Mode holds the electrical attribute bits of an SFS register.
type Mode uint16

const (
	PullDownEnable      Mode = 1 << 3
	PullUpDisable       Mode = 1 << 4
	HighSpeedSlew       Mode = 1 << 5
	InputBuffer         Mode = 1 << 6
	GlitchFilterDisable Mode = 1 << 7

	// Named pull settings (EPD/EPUN pairs).
	PullUp   Mode = 0
	Inactive Mode = PullUpDisable
	Repeater Mode = PullDownEnable
	PullDown Mode = PullDownEnable | PullUpDisable

	// FastIO is the high-speed setting used for SPI clocks and similar.
	FastIO Mode = PullUpDisable | HighSpeedSlew | InputBuffer | GlitchFilterDisable

	modeMask Mode = 0xF8
)

// Descriptor is one pin's desired function and electrical configuration.
type Descriptor struct {
	Port uint8
	Pin  uint8
	Func Function
	Mode Mode
}

// pinsPerPort is the LPC43xx pin count for SCU ports 0x0..0xF.
var pinsPerPort = [16]uint8{2, 21, 14, 9, 11, 8, 13, 8, 9, 7, 5, 7, 15, 17, 16, 12}

// Exists reports whether port/pin names a pin present on the LPC43xx.
func Exists(port, pin uint8) bool {
	return int(port) < len(pinsPerPort) && pin < pinsPerPort[port]
}

// New builds a validated descriptor.
func New(port, pin uint8, fn Function, mode Mode) (Descriptor, error) {
	if !Exists(port, pin) {
		return Descriptor{}, errcode.New(errcode.UnknownPin, "pinmux.New",
			fmtx.Sprintf("P%X_%d", port, pin))
	}
	if fn > Func7 {
		return Descriptor{}, errcode.New(errcode.InvalidFunction, "pinmux.New",
			fmtx.Sprintf("func%d", fn))
	}
	if mode&^modeMask != 0 {
		return Descriptor{}, errcode.New(errcode.InvalidParams, "pinmux.New",
			fmtx.Sprintf("mode %#x", uint16(mode)))
	}
	return Descriptor{Port: port, Pin: pin, Func: fn, Mode: mode}, nil
}

// MustNew is New for fixed board tables; it panics on a bad descriptor.
func MustNew(port, pin uint8, fn Function, mode Mode) Descriptor {
	d, err := New(port, pin, fn, mode)
	if err != nil {
		panic(err)
	}
	return d
}

// Raw builds a descriptor with no checks, for register-level use.
func Raw(port, pin uint8, fn Function, mode Mode) Descriptor {
	return Descriptor{Port: port, Pin: pin, Func: fn, Mode: mode}
}

// Encode returns the SFS register value for d.
func (d Descriptor) Encode() uint16 {
	return uint16(d.Mode) | uint16(d.Func&0x7)
}

func (d Descriptor) String() string {
	return fmtx.Sprintf("P%X_%d func%d mode=%#02x", d.Port, d.Pin, d.Func, uint16(d.Mode))
}

// Applier pushes descriptors to the SCU. Each SFS register belongs to a
// single pin, so applying different pins never touches shared state.
type Applier struct {
	SCU chip.SCU
}

// Apply issues exactly one SFS store for d. There is no acknowledgement
// path; a descriptor naming a missing pin is undefined at the hardware.
func (a Applier) Apply(d Descriptor) {
	a.SCU.PinMuxSet(d.Port, d.Pin, d.Encode())
}

// ApplyAll applies ds in order.
func (a Applier) ApplyAll(ds ...Descriptor) {
	for _, d := range ds {
		a.Apply(d)
	}
}
