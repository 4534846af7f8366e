//go:build tinygo && lpc43xx

// Command ciaa is the CIAA-NXP bring-up firmware: it initializes the board
// and serves the debug console on USART2.
package main

import (
	"ciaa-go/board"
	"ciaa-go/chip"
	"ciaa-go/config"
	"ciaa-go/monitor"
	"ciaa-go/x/fmtx"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		println("config:", err.Error())
		return
	}

	b := board.New(cfg, chip.MMIO{})
	b.Init()
	b.Retarget()

	m := b.MAC()
	fmtx.Printf("\r\n%s up, mac %02x:%02x:%02x:%02x:%02x:%02x, %d baud\r\n",
		config.BoardName, m[0], m[1], m[2], m[3], m[4], m[5], b.Debug().ActualBaud())

	con := monitor.New(b)
	con.Prompt()
	for {
		if !con.Poll() {
			b.Delay().Microseconds(100)
		}
	}
}
