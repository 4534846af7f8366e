package fmtx

import (
	"fmt"
	"io"
)

// DefaultOutput is used by Print/Printf. Board bring-up points it at the
// debug UART; until then output is discarded.
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func Sprintf(format string, a ...any) string                    { return fmt.Sprintf(format, a...) }
func Fprintf(w io.Writer, format string, a ...any) (int, error) { return fmt.Fprintf(w, format, a...) }
func Errorf(format string, a ...any) error                      { return fmt.Errorf(format, a...) }
func Sprint(a ...any) string                                    { return fmt.Sprint(a...) }
func Fprint(w io.Writer, a ...any) (int, error)                 { return fmt.Fprint(w, a...) }

func Printf(format string, a ...any) (int, error) { return Fprintf(DefaultOutput, format, a...) }
func Print(a ...any) (int, error)                 { return Fprint(DefaultOutput, a...) }
