// Package board brings up the CIAA-NXP: debug UART, GPIO and Ethernet RMII,
// plus the small per-peripheral pin setups the board file provides.
package board

import (
	"ciaa-go/chip"
	"ciaa-go/config"
	"ciaa-go/delay"
	"ciaa-go/pinmux"
	"ciaa-go/uart"
	"ciaa-go/x/fmtx"
)

// Board owns the board-level view of one chip. Everything it holds is fixed
// at construction.
type Board struct {
	cfg   config.Board
	hw    chip.Chip
	mux   pinmux.Applier
	debug *uart.Transport
	delay delay.Timer
}

// New wires a Board over hw. The debug UART is clocked from the oscillator.
func New(cfg config.Board, hw chip.Chip) *Board {
	return &Board{
		cfg: cfg,
		hw:  hw,
		mux: pinmux.Applier{SCU: hw},
		debug: uart.New(uart.Config{
			Block:     cfg.DebugBlock,
			PClkHz:    cfg.OscRateHz,
			Baud:      cfg.DebugBaud,
			Enabled:   cfg.DebugUART,
			SpinLimit: cfg.TxSpinLimit,
		}, hw, hw),
		delay: delay.New(cfg.OscRateHz),
	}
}

// Init brings the board up: debug UART first so later steps may log, then
// the GPIO block, then Ethernet in RMII mode. It is meant to run once;
// running it again reapplies the same configuration.
func (b *Board) Init() {
	b.DebugInit()
	b.hw.GPIOInit(chip.GPIOPort)
	b.hw.RMIIEnable(chip.Ethernet)
}

// DebugInit initializes the debug UART. A build without the debug UART
// leaves it inert.
func (b *Board) DebugInit() { b.debug.Init() }

// Debug returns the debug transport.
func (b *Board) Debug() *uart.Transport { return b.debug }

// Delay returns the busy-wait timer calibrated for this board.
func (b *Board) Delay() delay.Timer { return b.delay }

// Config returns the configuration the board was built with.
func (b *Board) Config() config.Board { return b.cfg }

// Retarget sends fmtx.Print/Printf output to the debug UART.
func (b *Board) Retarget() { fmtx.DefaultOutput = b.debug }

// Printf formats onto the debug UART.
func (b *Board) Printf(format string, a ...any) {
	_, _ = fmtx.Fprintf(b.debug, format, a...)
}

// MACAddress copies the board MAC address into dst and returns the number
// of bytes copied.
func (b *Board) MACAddress(dst []byte) int { return copy(dst, b.cfg.MAC[:]) }

// MAC returns the board MAC address.
func (b *Board) MAC() [6]byte { return b.cfg.MAC }
