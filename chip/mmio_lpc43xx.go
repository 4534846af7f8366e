//go:build tinygo && lpc43xx

package chip

import (
	"runtime/volatile"
	"unsafe"
)

const (
	scuBase   uintptr = 0x4008_6000
	cregBase  uintptr = 0x4004_3000
	ccu1Base  uintptr = 0x4005_1000
	sfsI2C0   uintptr = scuBase + 0xC84
	enaio2    uintptr = scuBase + 0xC90
	creg6     uintptr = cregBase + 0x12C
	ccuGPIO   uintptr = ccu1Base + 0x410
	ethModeMk uint32  = 0x7
	ethRMII   uint32  = 0x4
)

// UART register offsets (USART layout; UART1 keeps TER at 0x30).
const (
	offRBR = 0x00
	offDLM = 0x04
	offIER = 0x04
	offFCR = 0x08
	offLCR = 0x0C
	offLSR = 0x14
	offFDR = 0x28
	offTER = 0x5C
	offTE1 = 0x30
)

// GPIO port register offsets.
const (
	offDIR = 0x2000
	offSET = 0x2200
	offCLR = 0x2280
)

func reg(addr uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// MMIO drives the real LPC43xx registers.
type MMIO struct{}

var _ Chip = MMIO{}

func (MMIO) PinMuxSet(port, pin uint8, modefunc uint16) {
	reg(scuBase + uintptr(port)*0x80 + uintptr(pin)*4).Set(uint32(modefunc))
}

func (MMIO) I2C0PinConfig(mode uint32) { reg(sfsI2C0).Set(mode) }

func (MMIO) DACAnalogConfig() { reg(enaio2).SetBits(1) }

// UARTInit leaves the branch clock as reset configured it (on, IRC base)
// and puts the block in a known 8N1, FIFO-reset, interrupt-free state.
func (MMIO) UARTInit(b Block) {
	base := uintptr(b)
	reg(base + offFCR).Set(uint32(FCRFIFOEn | FCRRXReset | FCRTXReset))
	reg(base + offLCR).Set(uint32(LCRWLen8))
	reg(base + offIER).Set(0)
	reg(base + offFDR).Set(0x10)
}

func (MMIO) SetDivisorLatch(b Block, dl uint16) {
	base := uintptr(b)
	lcr := reg(base + offLCR)
	lcr.SetBits(uint32(LCRDLAB))
	reg(base + offRBR).Set(uint32(dl & 0xFF))
	reg(base + offDLM).Set(uint32(dl >> 8))
	lcr.ClearBits(uint32(LCRDLAB))
}

func (MMIO) SetFractional(b Block, mul, divAdd uint8) {
	reg(uintptr(b) + offFDR).Set(uint32(mul&0xF)<<4 | uint32(divAdd&0xF))
}

func (MMIO) ConfigData(b Block, lcr uint8) {
	r := reg(uintptr(b) + offLCR)
	r.Set(r.Get()&uint32(LCRDLAB) | uint32(lcr&^LCRDLAB))
}

func (MMIO) SetupFIFOs(b Block, fcr uint8) { reg(uintptr(b) + offFCR).Set(uint32(fcr)) }

func (MMIO) TXEnable(b Block) {
	if b == UART1 {
		reg(uintptr(b) + offTE1).Set(1 << 7)
		return
	}
	reg(uintptr(b) + offTER).Set(1)
}

func (MMIO) LineStatus(b Block) uint8 { return uint8(reg(uintptr(b) + offLSR).Get()) }

func (MMIO) SendByte(b Block, c byte) { reg(uintptr(b) + offRBR).Set(uint32(c)) }

func (MMIO) ReadByte(b Block) byte { return byte(reg(uintptr(b) + offRBR).Get()) }

func (MMIO) GPIOInit(Block) { reg(ccuGPIO).SetBits(1) }

func (MMIO) SetPinDIROutput(b Block, port, bit uint8) {
	reg(uintptr(b) + offDIR + uintptr(port)*4).SetBits(1 << bit)
}

func (MMIO) SetPinOutLow(b Block, port, bit uint8) {
	reg(uintptr(b) + offCLR + uintptr(port)*4).Set(1 << bit)
}

func (MMIO) SetPinOutHigh(b Block, port, bit uint8) {
	reg(uintptr(b) + offSET + uintptr(port)*4).Set(1 << bit)
}

func (MMIO) RMIIEnable(Block) {
	r := reg(creg6)
	r.Set(r.Get()&^ethModeMk | ethRMII)
}
