// Package hostlink is the PC side of the board's debug UART: the FT2232
// bridge shows up as a serial device on the host.
package hostlink

import (
	"context"
	"errors"
	"io"
	"time"
	"unicode/utf8"

	"github.com/tarm/serial"

	"ciaa-go/config"
	"ciaa-go/errcode"
	"ciaa-go/x/fmtx"
)

// Escape (Ctrl-]) ends a terminal session.
const Escape = 0x1D

// PortConfig builds the host serial settings matching the board's debug
// UART frame: configured baud, 8 data bits, no parity, one stop bit.
func PortConfig(b config.Board, device string, readTimeout time.Duration) (*serial.Config, error) {
	if device == "" {
		return nil, errcode.New(errcode.InvalidParams, "hostlink", "no serial device")
	}
	if b.DebugBaud == 0 {
		return nil, errcode.New(errcode.InvalidParams, "hostlink", "zero baud")
	}
	return &serial.Config{
		Name:        device,
		Baud:        int(b.DebugBaud),
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: readTimeout,
	}, nil
}

// Open opens the host end of the debug link.
func Open(c *serial.Config) (io.ReadWriteCloser, error) {
	p, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmtx.Errorf("open %s: %w", c.Name, err)
	}
	return p, nil
}

// RuneReader is a keyboard source such as *tty.TTY.
type RuneReader interface {
	ReadRune() (rune, error)
}

// Keys forwards keystrokes to port until Escape is read or ctx ends.
func Keys(ctx context.Context, keys RuneReader, port io.Writer) error {
	var buf [utf8.UTFMax]byte
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := keys.ReadRune()
		if err != nil {
			return err
		}
		if r == Escape {
			return nil
		}
		n := utf8.EncodeRune(buf[:], r)
		if _, err := port.Write(buf[:n]); err != nil {
			return err
		}
	}
}

// Output copies board output to w until ctx ends or the port fails. Read
// timeouts on an idle line surface as empty reads or io.EOF and are skipped.
func Output(ctx context.Context, port io.Reader, w io.Writer) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := port.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
}
