//go:build !(tinygo && lpc43xx)

package chip

import "testing"

func TestHostLineStatusScripting(t *testing.T) {
	h := NewHost()

	if lsr := h.LineStatus(USART2); lsr&LSRTHRE == 0 || lsr&LSRRDR != 0 {
		t.Fatalf("idle lsr=%#02x", lsr)
	}

	h.SetTxBusyPolls(USART2, 2)
	for i := 0; i < 2; i++ {
		if lsr := h.LineStatus(USART2); lsr&LSRTHRE != 0 {
			t.Fatalf("poll %d: THRE set while busy", i)
		}
	}
	if lsr := h.LineStatus(USART2); lsr&LSRTHRE == 0 {
		t.Fatalf("THRE not set after busy polls")
	}
	h.SendByte(USART2, 'x')
	if lsr := h.LineStatus(USART2); lsr&LSRTHRE != 0 {
		t.Fatalf("THRE set right after send")
	}

	h.Receive(USART2, 0x41)
	if lsr := h.LineStatus(USART2); lsr&LSRRDR == 0 {
		t.Fatalf("RDR not set with pending byte")
	}
	if c := h.ReadByte(USART2); c != 0x41 {
		t.Fatalf("ReadByte=%#02x", c)
	}
	if lsr := h.LineStatus(USART2); lsr&LSRRDR != 0 {
		t.Fatalf("RDR still set after read")
	}
}

func TestHostStuckTransmitter(t *testing.T) {
	h := NewHost()
	h.SetTxBusyPolls(USART2, -1)
	for i := 0; i < 100; i++ {
		if h.LineStatus(USART2)&LSRTHRE != 0 {
			t.Fatalf("stuck transmitter reported THRE")
		}
	}
}

func TestHostRecordsPinMuxAndGPIO(t *testing.T) {
	h := NewHost()
	h.PinMuxSet(7, 1, 0x16)
	h.SetPinDIROutput(GPIOPort, 5, 5)
	h.SetPinOutHigh(GPIOPort, 5, 5)

	if v := h.PinMux(7, 1); v != 0x16 {
		t.Fatalf("PinMux(7,1)=%#x", v)
	}
	if out, high := h.GPIOPin(5, 5); !out || !high {
		t.Fatalf("GPIO 5[5] out=%v high=%v", out, high)
	}
	calls := h.CallsOf(OpPinMuxSet)
	if len(calls) != 1 || calls[0].Args != [3]uint32{7, 1, 0x16} {
		t.Fatalf("pinmux calls=%+v", calls)
	}
	h.Reset()
	if n := len(h.Calls()); n != 0 {
		t.Fatalf("Reset left %d calls", n)
	}
}

func TestFIFOResetDropsPendingRX(t *testing.T) {
	h := NewHost()
	h.Receive(USART2, 1, 2, 3)
	h.SetupFIFOs(USART2, FCRFIFOEn|FCRRXReset)
	if st := h.UART(USART2); st.Pending != 0 {
		t.Fatalf("pending=%d after RX reset", st.Pending)
	}
}

func TestBlockString(t *testing.T) {
	if USART2.String() != "usart2" || SSP1.String() != "ssp1" {
		t.Fatalf("known block names wrong")
	}
	if got := Block(0x1234).String(); got != "block@0x1234" {
		t.Fatalf("unknown block=%q", got)
	}
}
