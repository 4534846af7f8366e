// Package monitor is a polled line console on the debug UART. It never
// blocks on input: each Poll consumes at most one received byte.
package monitor

import (
	"strconv"

	"github.com/google/shlex"

	"ciaa-go/board"
	"ciaa-go/chip"
	"ciaa-go/errcode"
	"ciaa-go/pinmux"
)

const (
	maxLine = 80
	prompt  = "> "
)

// Console reads a line at a time from the board's debug UART and runs
// commands against the board.
type Console struct {
	b    *board.Board
	line []byte
}

// New returns a console bound to b. The debug UART must be initialized for
// input to arrive.
func New(b *board.Board) *Console {
	return &Console{b: b, line: make([]byte, 0, maxLine)}
}

// Prompt prints the input prompt.
func (c *Console) Prompt() { c.b.Debug().PutString(prompt) }

// Poll handles at most one received byte and reports whether one arrived.
func (c *Console) Poll() bool {
	ch, ok := c.b.Debug().GetChar()
	if !ok {
		return false
	}
	t := c.b.Debug()
	switch ch {
	case '\r', '\n':
		t.PutString("\r\n")
		if len(c.line) > 0 {
			c.Exec(string(c.line))
			c.line = c.line[:0]
		}
		c.Prompt()
	case 0x08, 0x7F:
		if len(c.line) > 0 {
			c.line = c.line[:len(c.line)-1]
			t.PutString("\b \b")
		}
	default:
		if ch < ' ' || len(c.line) >= maxLine {
			return true
		}
		c.line = append(c.line, ch)
		t.PutChar(ch)
	}
	return true
}

// Exec tokenizes and runs one command line, printing the result or error.
func (c *Console) Exec(line string) {
	if err := c.run(line); err != nil {
		c.b.Printf("error: %v\r\n", err)
	}
}

func (c *Console) run(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return errcode.New(errcode.InvalidParams, "monitor", err.Error())
	}
	if len(args) == 0 {
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(c, args[1:])
		}
	}
	return errcode.New(errcode.UnknownCommand, "monitor", args[0])
}

type command struct {
	name, usage string
	run         func(c *Console, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"help", "help", cmdHelp},
		{"mac", "mac", cmdMAC},
		{"baud", "baud", cmdBaud},
		{"delay", "delay <us>", cmdDelay},
		{"pinmux", "pinmux <port> <pin> <func> [mode]", cmdPinMux},
		{"vbus", "vbus on|off", cmdVBus},
		{"ssp", "ssp <0|1>", cmdSSP},
	}
}

func usage(name string) error {
	for _, cmd := range commands {
		if cmd.name == name {
			return errcode.New(errcode.InvalidParams, name, "usage: "+cmd.usage)
		}
	}
	return errcode.InvalidParams
}

func cmdHelp(c *Console, _ []string) error {
	for _, cmd := range commands {
		c.b.Printf("  %s\r\n", cmd.usage)
	}
	return nil
}

func cmdMAC(c *Console, _ []string) error {
	m := c.b.MAC()
	c.b.Printf("%02x:%02x:%02x:%02x:%02x:%02x\r\n", m[0], m[1], m[2], m[3], m[4], m[5])
	return nil
}

func cmdBaud(c *Console, _ []string) error {
	t := c.b.Debug()
	d := t.Divisor()
	c.b.Printf("%d baud (dl=%d mul=%d divadd=%d)\r\n", t.ActualBaud(), d.DL, d.Mul, d.DivAdd)
	return nil
}

func cmdDelay(c *Console, args []string) error {
	if len(args) != 1 {
		return usage("delay")
	}
	us, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		return usage("delay")
	}
	c.b.Delay().Microseconds(uint32(us))
	c.b.Printf("ok\r\n")
	return nil
}

func parseU8(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 0, 8)
	return uint8(v), err == nil
}

func cmdPinMux(c *Console, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return usage("pinmux")
	}
	port, ok1 := parseU8(args[0])
	pin, ok2 := parseU8(args[1])
	fn, ok3 := parseU8(args[2])
	if !ok1 || !ok2 || !ok3 {
		return usage("pinmux")
	}
	mode := pinmux.Inactive
	if len(args) == 4 {
		m, err := strconv.ParseUint(args[3], 0, 16)
		if err != nil {
			return usage("pinmux")
		}
		mode = pinmux.Mode(m)
	}
	d, err := pinmux.New(port, pin, pinmux.Function(fn), mode)
	if err != nil {
		return err
	}
	c.b.ApplyPin(d)
	c.b.Printf("%v\r\n", d)
	return nil
}

func cmdVBus(c *Console, args []string) error {
	if len(args) != 1 {
		return usage("vbus")
	}
	switch args[0] {
	case "on":
		c.b.USB1EnableVBus()
	case "off":
		c.b.USB1DisableVBus()
	default:
		return usage("vbus")
	}
	c.b.Printf("vbus %s\r\n", args[0])
	return nil
}

func cmdSSP(c *Console, args []string) error {
	if len(args) != 1 {
		return usage("ssp")
	}
	var blk chip.Block
	switch args[0] {
	case "0":
		blk = chip.SSP0
	case "1":
		blk = chip.SSP1
	default:
		return usage("ssp")
	}
	if _, wired := pinmux.SSPPins(blk); !wired {
		c.b.Printf("%v not wired\r\n", blk)
		return nil
	}
	c.b.SSPInit(blk)
	c.b.Printf("%v pins routed\r\n", blk)
	return nil
}
