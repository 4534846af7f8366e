//go:build !tinygo

// Command debugterm is a minimal terminal for the board's debug UART.
// Ctrl-] quits.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	tty "github.com/mattn/go-tty"

	"ciaa-go/config"
	"ciaa-go/hostlink"
	"ciaa-go/x/fmtx"
)

func main() {
	dev := flag.String("dev", "/dev/ttyUSB1", "serial device of the FT2232 debug channel")
	baud := flag.Uint("baud", uint(config.Default().DebugBaud), "debug UART baud rate")
	flag.Parse()

	b := config.Default()
	b.DebugBaud = uint32(*baud)

	pc, err := hostlink.PortConfig(b, *dev, 100*time.Millisecond)
	if err != nil {
		fmtx.Fprintf(os.Stderr, "debugterm: %v\n", err)
		os.Exit(2)
	}
	port, err := hostlink.Open(pc)
	if err != nil {
		fmtx.Fprintf(os.Stderr, "debugterm: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	keys, err := tty.Open()
	if err != nil {
		fmtx.Fprintf(os.Stderr, "debugterm: tty: %v\n", err)
		os.Exit(1)
	}
	defer keys.Close()

	fmtx.Fprintf(os.Stderr, "[debugterm] %s %d 8N1, Ctrl-] to quit\r\n", pc.Name, pc.Baud)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := hostlink.Output(ctx, port, os.Stdout); err != nil && ctx.Err() == nil {
			fmtx.Fprintf(os.Stderr, "\r\n[debugterm] read: %v\r\n", err)
			cancel()
		}
	}()

	if err := hostlink.Keys(ctx, keys, port); err != nil && ctx.Err() == nil {
		fmtx.Fprintf(os.Stderr, "\r\n[debugterm] %v\r\n", err)
	}
	fmtx.Fprintf(os.Stderr, "\r\n[debugterm] bye\r\n")
}
