package board

import (
	"ciaa-go/chip"
	"ciaa-go/pinmux"
)

// UARTInit routes the pins of serial block u. Only USART2 is wired; other
// blocks are left alone.
func (b *Board) UARTInit(u chip.Block) { b.mux.ApplyUART(u) }

// SSPInit routes the pins of SSP block s. Only SSP1 is wired; other blocks
// are left alone.
func (b *Board) SSPInit(s chip.Block) { b.mux.ApplySSP(s) }

// DACInit enables the analog DAC function on its pin.
func (b *Board) DACInit() { b.hw.DACAnalogConfig() }

// ADCInit has nothing to set up on this board.
func (b *Board) ADCInit() {}

// I2CEnableFastPlus switches the I2C0 pads to Fast-mode Plus. Call before
// programming bus rates above 400 kHz; only I2C0 supports it.
func (b *Board) I2CEnableFastPlus() { b.hw.I2C0PinConfig(chip.I2C0FastModePlus) }

// I2CDisableFastPlus restores the standard/fast I2C0 pad mode.
func (b *Board) I2CDisableFastPlus() { b.hw.I2C0PinConfig(chip.I2C0StandardFastMode) }

// USB1EnableVBus drives the active-low VBUS enable for USB1 host mode.
func (b *Board) USB1EnableVBus() {
	b.mux.Apply(pinmux.USB1VBus)
	b.hw.SetPinDIROutput(chip.GPIOPort, pinmux.USB1VBusGPIOPort, pinmux.USB1VBusGPIOBit)
	b.hw.SetPinOutLow(chip.GPIOPort, pinmux.USB1VBusGPIOPort, pinmux.USB1VBusGPIOBit)
}

// USB1DisableVBus removes VBUS from USB1.
func (b *Board) USB1DisableVBus() {
	b.mux.Apply(pinmux.USB1VBus)
	b.hw.SetPinDIROutput(chip.GPIOPort, pinmux.USB1VBusGPIOPort, pinmux.USB1VBusGPIOBit)
	b.hw.SetPinOutHigh(chip.GPIOPort, pinmux.USB1VBusGPIOPort, pinmux.USB1VBusGPIOBit)
}

// ApplyPin pushes one pin descriptor to the SCU.
func (b *Board) ApplyPin(d pinmux.Descriptor) { b.mux.Apply(d) }
