//go:build !(tinygo && lpc43xx)

package chip

import "sync"

// Op names a recorded capability call.
type Op string

const (
	OpPinMuxSet       Op = "scu.pinmux"
	OpI2C0PinConfig   Op = "scu.i2c0"
	OpDACAnalog       Op = "scu.dac"
	OpUARTInit        Op = "uart.init"
	OpSetDivisorLatch Op = "uart.dl"
	OpSetFractional   Op = "uart.fdr"
	OpConfigData      Op = "uart.lcr"
	OpSetupFIFOs      Op = "uart.fcr"
	OpTXEnable        Op = "uart.ter"
	OpLineStatus      Op = "uart.lsr"
	OpSendByte        Op = "uart.thr"
	OpReadByte        Op = "uart.rbr"
	OpGPIOInit        Op = "gpio.init"
	OpGPIODirOut      Op = "gpio.dir"
	OpGPIOLow         Op = "gpio.clr"
	OpGPIOHigh        Op = "gpio.set"
	OpRMIIEnable      Op = "enet.rmii"
)

// Call is one recorded capability invocation. Args hold the scalar
// arguments in declaration order; for OpLineStatus Args[0] is the value
// returned.
type Call struct {
	Op    Op
	Block Block
	Args  [3]uint32
}

type hostUART struct {
	lcr, fcr    uint8
	dl          uint16
	mul, divAdd uint8
	txEnabled   bool
	inited      bool
	busyPolls   int // per byte; < 0 never ready
	busyLeft    int
	rx          []byte
	tx          []byte
}

// Host is an in-memory LPC43xx register file for host builds and tests.
// It records every call and lets tests script the UART status flags.
type Host struct {
	mu    sync.Mutex
	calls []Call

	sfs     [16][32]uint16
	i2c0    uint32
	dac     bool
	uarts   map[Block]*hostUART
	gpioOn  bool
	gpioDir map[uint8]uint32
	gpioOut map[uint8]uint32
	rmii    bool
}

var _ Chip = (*Host)(nil)

// NewHost returns an empty register file with every UART idle.
func NewHost() *Host {
	return &Host{
		uarts:   make(map[Block]*hostUART),
		gpioDir: make(map[uint8]uint32),
		gpioOut: make(map[uint8]uint32),
	}
}

// caller holds lock
func (h *Host) record(op Op, b Block, args ...uint32) {
	c := Call{Op: op, Block: b}
	copy(c.Args[:], args)
	h.calls = append(h.calls, c)
}

// caller holds lock
func (h *Host) uart(b Block) *hostUART {
	u, ok := h.uarts[b]
	if !ok {
		u = &hostUART{}
		h.uarts[b] = u
	}
	return u
}

// ---- SCU ----

func (h *Host) PinMuxSet(port, pin uint8, modefunc uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpPinMuxSet, 0, uint32(port), uint32(pin), uint32(modefunc))
	h.sfs[port&0xF][pin&0x1F] = modefunc
}

func (h *Host) I2C0PinConfig(mode uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpI2C0PinConfig, 0, mode)
	h.i2c0 = mode
}

func (h *Host) DACAnalogConfig() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpDACAnalog, 0)
	h.dac = true
}

// ---- UART ----

func (h *Host) UARTInit(b Block) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpUARTInit, b)
	u := h.uart(b)
	u.inited = true
	u.mul = 1
}

func (h *Host) SetDivisorLatch(b Block, dl uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpSetDivisorLatch, b, uint32(dl))
	h.uart(b).dl = dl
}

func (h *Host) SetFractional(b Block, mul, divAdd uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpSetFractional, b, uint32(mul), uint32(divAdd))
	u := h.uart(b)
	u.mul, u.divAdd = mul, divAdd
}

func (h *Host) ConfigData(b Block, lcr uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpConfigData, b, uint32(lcr))
	h.uart(b).lcr = lcr
}

func (h *Host) SetupFIFOs(b Block, fcr uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpSetupFIFOs, b, uint32(fcr))
	u := h.uart(b)
	u.fcr = fcr
	if fcr&FCRRXReset != 0 {
		u.rx = u.rx[:0]
	}
}

func (h *Host) TXEnable(b Block) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpTXEnable, b)
	h.uart(b).txEnabled = true
}

func (h *Host) LineStatus(b Block) uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	u := h.uart(b)
	var lsr uint8
	switch {
	case u.busyPolls < 0:
	case u.busyLeft > 0:
		u.busyLeft--
	default:
		lsr |= LSRTHRE | LSRTEMT
	}
	if len(u.rx) > 0 {
		lsr |= LSRRDR
	}
	h.record(OpLineStatus, b, uint32(lsr))
	return lsr
}

func (h *Host) SendByte(b Block, c byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpSendByte, b, uint32(c))
	u := h.uart(b)
	u.tx = append(u.tx, c)
	u.busyLeft = u.busyPolls
}

func (h *Host) ReadByte(b Block) byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	u := h.uart(b)
	var c byte
	if len(u.rx) > 0 {
		c = u.rx[0]
		u.rx = u.rx[1:]
	}
	h.record(OpReadByte, b, uint32(c))
	return c
}

// ---- GPIO ----

func (h *Host) GPIOInit(b Block) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpGPIOInit, b)
	h.gpioOn = true
}

func (h *Host) SetPinDIROutput(b Block, port, bit uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpGPIODirOut, b, uint32(port), uint32(bit))
	h.gpioDir[port] |= 1 << bit
}

func (h *Host) SetPinOutLow(b Block, port, bit uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpGPIOLow, b, uint32(port), uint32(bit))
	h.gpioOut[port] &^= 1 << bit
}

func (h *Host) SetPinOutHigh(b Block, port, bit uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpGPIOHigh, b, uint32(port), uint32(bit))
	h.gpioOut[port] |= 1 << bit
}

// ---- ENET ----

func (h *Host) RMIIEnable(b Block) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(OpRMIIEnable, b)
	h.rmii = true
}

// ---- Test scripting and inspection ----

// Receive queues bytes on the UART receive side; RDR stays set until they
// are read.
func (h *Host) Receive(b Block, p ...byte) {
	h.mu.Lock()
	u := h.uart(b)
	u.rx = append(u.rx, p...)
	h.mu.Unlock()
}

// SetTxBusyPolls makes THRE read clear for n status polls after every sent
// byte (and before the first one). n < 0 leaves THRE clear forever.
func (h *Host) SetTxBusyPolls(b Block, n int) {
	h.mu.Lock()
	u := h.uart(b)
	u.busyPolls = n
	u.busyLeft = n
	h.mu.Unlock()
}

// Calls returns a copy of the recorded call log.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// CallsOf returns the recorded calls with the given op, in order.
func (h *Host) CallsOf(op Op) []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []Call
	for _, c := range h.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the call log but keeps register state.
func (h *Host) Reset() {
	h.mu.Lock()
	h.calls = h.calls[:0]
	h.mu.Unlock()
}

// PinMux returns the last SFS value stored for port/pin.
func (h *Host) PinMux(port, pin uint8) uint16 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sfs[port&0xF][pin&0x1F]
}

// UARTState is a snapshot of one UART block's programmed registers.
type UARTState struct {
	Inited    bool
	LCR, FCR  uint8
	DL        uint16
	Mul       uint8
	DivAdd    uint8
	TXEnabled bool
	Sent      []byte
	Pending   int
}

// UART returns a snapshot of block b.
func (h *Host) UART(b Block) UARTState {
	h.mu.Lock()
	defer h.mu.Unlock()
	u := h.uart(b)
	return UARTState{
		Inited:    u.inited,
		LCR:       u.lcr,
		FCR:       u.fcr,
		DL:        u.dl,
		Mul:       u.mul,
		DivAdd:    u.divAdd,
		TXEnabled: u.txEnabled,
		Sent:      append([]byte(nil), u.tx...),
		Pending:   len(u.rx),
	}
}

// GPIOPin reports direction (true = output) and output level of port/bit.
func (h *Host) GPIOPin(port, bit uint8) (out, high bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gpioDir[port]&(1<<bit) != 0, h.gpioOut[port]&(1<<bit) != 0
}

// I2C0Mode returns the last SFSI2C0 value.
func (h *Host) I2C0Mode() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.i2c0
}

// Enabled reports which one-shot blocks have been brought up.
func (h *Host) Enabled() (gpio, rmii, dac bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.gpioOn, h.rmii, h.dac
}
