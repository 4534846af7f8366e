package hostlink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/tarm/serial"

	"ciaa-go/config"
	"ciaa-go/errcode"
)

func TestPortConfigMatchesDebugFrame(t *testing.T) {
	c, err := PortConfig(config.Default(), "/dev/ttyUSB1", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("PortConfig: %v", err)
	}
	if c.Name != "/dev/ttyUSB1" || c.Baud != 115200 || c.Size != 8 {
		t.Fatalf("config=%+v", c)
	}
	if c.Parity != serial.ParityNone || c.StopBits != serial.Stop1 {
		t.Fatalf("frame parity=%v stop=%v", c.Parity, c.StopBits)
	}
	if c.ReadTimeout != 100*time.Millisecond {
		t.Fatalf("timeout=%v", c.ReadTimeout)
	}
}

func TestPortConfigRejects(t *testing.T) {
	if _, err := PortConfig(config.Default(), "", 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("empty device err=%v", err)
	}
	b := config.Default()
	b.DebugBaud = 0
	if _, err := PortConfig(b, "/dev/null", 0); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("zero baud err=%v", err)
	}
}

type runes struct {
	rs  []rune
	err error
}

func (r *runes) ReadRune() (rune, error) {
	if len(r.rs) == 0 {
		return 0, r.err
	}
	c := r.rs[0]
	r.rs = r.rs[1:]
	return c, nil
}

func TestKeysStopsAtEscape(t *testing.T) {
	var port bytes.Buffer
	k := &runes{rs: []rune{'m', 'a', 'c', '\r', 'é', Escape, 'x'}}
	if err := Keys(context.Background(), k, &port); err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if got := port.String(); got != "mac\ré" {
		t.Fatalf("sent %q", got)
	}
}

func TestKeysReportsReaderError(t *testing.T) {
	boom := errors.New("tty gone")
	err := Keys(context.Background(), &runes{err: boom}, io.Discard)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
}

func TestKeysHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Keys(ctx, &runes{rs: []rune{'a'}}, io.Discard); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v", err)
	}
}

type scripted struct {
	chunks []string
	final  error
}

func (s *scripted) Read(p []byte) (int, error) {
	if len(s.chunks) == 0 {
		return 0, s.final
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	if c == "" {
		return 0, io.EOF // idle timeout
	}
	return copy(p, c), nil
}

func TestOutputSkipsIdleTimeouts(t *testing.T) {
	boom := errors.New("unplugged")
	var out bytes.Buffer
	port := &scripted{chunks: []string{"boot\r\n", "", "> "}, final: boom}
	if err := Output(context.Background(), port, &out); !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	if out.String() != "boot\r\n> " {
		t.Fatalf("out=%q", out.String())
	}
}
