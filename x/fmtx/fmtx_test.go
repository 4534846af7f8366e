package fmtx

import (
	"bytes"
	"testing"
)

func TestPrintGoesToDefaultOutput(t *testing.T) {
	old := DefaultOutput
	defer func() { DefaultOutput = old }()

	var buf bytes.Buffer
	DefaultOutput = &buf
	if _, err := Printf("mac %02x:%02x", 0x00, 0x60); err != nil {
		t.Fatalf("Printf: %v", err)
	}
	if _, err := Print("!"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if got, want := buf.String(), "mac 00:60!"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestDiscardByDefault(t *testing.T) {
	n, err := discard{}.Write([]byte("abc"))
	if n != 3 || err != nil {
		t.Fatalf("discard wrote %d, %v", n, err)
	}
}
