// Package config holds the compiled-in operating parameters of the board.
// Wiring lives in pinmux; this package only carries rates and identities.
package config

import (
	"ciaa-go/chip"
	"ciaa-go/errcode"
)

// Board name and Ethernet PHY wiring.
const (
	BoardName   = "CIAA_NXP"
	ENETPHYAddr = 1
	ENETUseRMII = true
)

// Board is the operating configuration of one board build.
type Board struct {
	OscRateHz uint32 // external crystal, drives every timing derivation
	ExtRateHz uint32 // external clock input, 0 when absent

	DebugUART  bool       // false compiles the debug transport to no-ops
	DebugBlock chip.Block // serial block wired to the debug bridge
	DebugBaud  uint32

	// TxSpinLimit bounds the THRE poll in PutChar. 0 waits forever.
	TxSpinLimit uint32

	MAC [6]byte
}

// Default returns the CIAA-NXP configuration.
func Default() Board {
	return Board{
		OscRateHz:  12_000_000,
		ExtRateHz:  0,
		DebugUART:  DebugUARTEnabled,
		DebugBlock: chip.USART2,
		DebugBaud:  115200,
		MAC:        [6]byte{0x00, 0x60, 0x37, 0x12, 0x34, 0x56},
	}
}

// Validate rejects configurations no timing derivation can use.
func (b Board) Validate() error {
	if b.OscRateHz == 0 {
		return errcode.New(errcode.InvalidParams, "config", "zero oscillator rate")
	}
	if b.OscRateHz < 1_000_000 {
		return errcode.New(errcode.InvalidParams, "config", "oscillator below 1 MHz")
	}
	if b.DebugUART && b.DebugBaud == 0 {
		return errcode.New(errcode.InvalidParams, "config", "zero debug baud")
	}
	if b.DebugUART && uint64(b.DebugBaud)*16 > uint64(b.OscRateHz) {
		return errcode.New(errcode.InvalidParams, "config", "debug baud above pclk/16")
	}
	return nil
}
