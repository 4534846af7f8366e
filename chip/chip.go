// Package chip is the register-access seam for the LPC43xx.
//
// Board code never touches registers directly. It calls the capability
// interfaces below, which are satisfied by volatile MMIO on the target
// (build tags tinygo && lpc43xx) and by the recording Host register file
// everywhere else.
package chip

import "ciaa-go/x/fmtx"

// Block is the base address of a fixed peripheral register block. Blocks
// are never allocated or released; they are valid while the chip is powered.
type Block uintptr

const (
	Ethernet Block = 0x4001_0000
	USART0   Block = 0x4008_1000
	UART1    Block = 0x4008_2000
	SSP0     Block = 0x4008_3000
	USART2   Block = 0x400C_1000
	USART3   Block = 0x400C_2000
	SSP1     Block = 0x400C_5000
	GPIOPort Block = 0x400F_4000
)

func (b Block) String() string {
	switch b {
	case Ethernet:
		return "ethernet"
	case USART0:
		return "usart0"
	case UART1:
		return "uart1"
	case SSP0:
		return "ssp0"
	case USART2:
		return "usart2"
	case USART3:
		return "usart3"
	case SSP1:
		return "ssp1"
	case GPIOPort:
		return "gpio"
	default:
		return fmtx.Sprintf("block@%#x", uintptr(b))
	}
}

// Line control register bits.
const (
	LCRWLen8     uint8 = 3 << 0
	LCRSBS1Bit   uint8 = 0 << 2
	LCRSBS2Bit   uint8 = 1 << 2
	LCRParityEn  uint8 = 1 << 3
	LCRParityDis uint8 = 0 << 3
	LCRDLAB      uint8 = 1 << 7
)

// FIFO control register bits.
const (
	FCRFIFOEn     uint8 = 1 << 0
	FCRRXReset    uint8 = 1 << 1
	FCRTXReset    uint8 = 1 << 2
	FCRDMAModeSel uint8 = 1 << 3
	FCRTrigLev0   uint8 = 0 << 6
)

// Line status register bits.
const (
	LSRRDR  uint8 = 1 << 0
	LSROE   uint8 = 1 << 1
	LSRTHRE uint8 = 1 << 5
	LSRTEMT uint8 = 1 << 6
)

// I2C0 pin modes for SCU.SFSI2C0.
const (
	I2C0StandardFastMode uint32 = 1<<3 | 1<<11
	I2C0FastModePlus     uint32 = 2<<1 | 1<<3 | 1<<7 | 1<<10 | 1<<11
)

// SCU is the system control unit: pin multiplexing and pad configuration.
type SCU interface {
	// PinMuxSet stores modefunc into the SFS register of port/pin.
	PinMuxSet(port, pin uint8, modefunc uint16)
	I2C0PinConfig(mode uint32)
	DACAnalogConfig()
}

// UART covers the 16550-style USART/UART blocks.
type UART interface {
	UARTInit(b Block)
	SetDivisorLatch(b Block, dl uint16)
	SetFractional(b Block, mul, divAdd uint8)
	ConfigData(b Block, lcr uint8)
	SetupFIFOs(b Block, fcr uint8)
	TXEnable(b Block)
	LineStatus(b Block) uint8
	SendByte(b Block, c byte)
	ReadByte(b Block) byte
}

// GPIO covers the GPIO port block.
type GPIO interface {
	GPIOInit(b Block)
	SetPinDIROutput(b Block, port, bit uint8)
	SetPinOutLow(b Block, port, bit uint8)
	SetPinOutHigh(b Block, port, bit uint8)
}

// ENET covers the Ethernet MAC mode selection.
type ENET interface {
	RMIIEnable(b Block)
}

// Chip is every capability the board layer uses.
type Chip interface {
	SCU
	UART
	GPIO
	ENET
}
