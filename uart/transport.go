// Package uart is the polled debug serial transport: one hardware UART
// block at a fixed 8N1 frame, one byte at a time, no interrupts.
package uart

import (
	"sync"

	"ciaa-go/chip"
	"ciaa-go/errcode"
	"ciaa-go/pinmux"

	"tinygo.org/x/drivers"
)

// EOF is the no-data value returned by GetCharInt.
const EOF = -1

// Register values programmed by Init.
const (
	FrameFormat = chip.LCRWLen8 | chip.LCRSBS1Bit | chip.LCRParityDis
	FIFOSetup   = chip.FCRFIFOEn | chip.FCRRXReset | chip.FCRTXReset | chip.FCRTrigLev0 | chip.FCRDMAModeSel
)

// State of a Transport. There is no way back from Ready.
type State uint8

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Config selects the block and rates of a Transport.
type Config struct {
	Block   chip.Block
	PClkHz  uint32
	Baud    uint32
	Enabled bool // false turns every operation into a no-op

	// SpinLimit bounds the THRE poll per byte; 0 waits forever. A byte that
	// hits the limit is dropped.
	SpinLimit uint32
}

// Transport is a polled UART. Operations before Init, or on a disabled
// transport, do nothing and report no data.
type Transport struct {
	mu    sync.Mutex // serialises access to the UART block
	hw    chip.UART
	mux   pinmux.Applier
	cfg   Config
	state State
	div   Divisor
}

var _ drivers.UART = (*Transport)(nil)

// New returns an uninitialized transport over hw, routing pins through scu.
func New(cfg Config, hw chip.UART, scu chip.SCU) *Transport {
	return &Transport{hw: hw, mux: pinmux.Applier{SCU: scu}, cfg: cfg}
}

// Init routes the pins, programs 8N1 at the configured baud, resets and
// enables the FIFOs and enables the transmitter.
func (t *Transport) Init() {
	if !t.cfg.Enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	b := t.cfg.Block
	t.mux.ApplyUART(b)
	t.hw.UARTInit(b)
	t.div = BaudDivisor(t.cfg.PClkHz, t.cfg.Baud)
	t.hw.SetDivisorLatch(b, t.div.DL)
	t.hw.SetFractional(b, t.div.Mul, t.div.DivAdd)
	t.hw.ConfigData(b, FrameFormat)
	t.hw.SetupFIFOs(b, FIFOSetup)
	t.hw.TXEnable(b)
	t.state = Ready
}

// State reports whether Init has run.
func (t *Transport) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Divisor returns the divisor programmed by Init.
func (t *Transport) Divisor() Divisor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.div
}

// ActualBaud returns the rate the programmed divisor achieves.
func (t *Transport) ActualBaud() uint32 {
	return t.Divisor().Rate(t.cfg.PClkHz)
}

// caller holds lock
func (t *Transport) ready() bool { return t.cfg.Enabled && t.state == Ready }

// caller holds lock; false means the spin limit dropped the byte.
func (t *Transport) put(c byte) bool {
	b := t.cfg.Block
	limit := t.cfg.SpinLimit
	for polls := uint32(0); t.hw.LineStatus(b)&chip.LSRTHRE == 0; {
		if limit == 0 {
			continue
		}
		if polls++; polls >= limit {
			return false
		}
	}
	t.hw.SendByte(b, c)
	return true
}

// PutChar waits for the transmit holding register to empty, then writes c.
// With no spin limit a stuck line blocks here forever.
func (t *Transport) PutChar(c byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready() {
		return
	}
	t.put(c)
}

// GetChar checks the receiver once and returns a byte if one is ready.
func (t *Transport) GetChar() (byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready() {
		return 0, false
	}
	if t.hw.LineStatus(t.cfg.Block)&chip.LSRRDR == 0 {
		return 0, false
	}
	return t.hw.ReadByte(t.cfg.Block), true
}

// GetCharInt is GetChar with EOF as the no-data value.
func (t *Transport) GetCharInt() int {
	c, ok := t.GetChar()
	if !ok {
		return EOF
	}
	return int(c)
}

// PutString sends s byte by byte up to the first NUL. Bytes from other
// writers may interleave between characters.
func (t *Transport) PutString(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		t.PutChar(s[i])
	}
}

// Write sends p in order. It fails only when a spin limit is configured and
// the transmitter stays busy past it.
func (t *Transport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready() {
		return len(p), nil
	}
	for i, c := range p {
		if !t.put(c) {
			return i, errcode.New(errcode.Timeout, "uart.Write", "transmitter busy")
		}
	}
	return len(p), nil
}

// Read drains whatever bytes are ready without waiting. It returns 0, nil
// when nothing has arrived.
func (t *Transport) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready() {
		return 0, nil
	}
	n := 0
	for n < len(p) && t.hw.LineStatus(t.cfg.Block)&chip.LSRRDR != 0 {
		p[n] = t.hw.ReadByte(t.cfg.Block)
		n++
	}
	return n, nil
}

// Buffered reports 1 when the receiver holds data. The FIFO depth is not
// visible through the line status register.
func (t *Transport) Buffered() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready() || t.hw.LineStatus(t.cfg.Block)&chip.LSRRDR == 0 {
		return 0
	}
	return 1
}
