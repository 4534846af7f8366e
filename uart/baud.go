package uart

import "ciaa-go/x/mathx"

// Divisor is the integer latch plus fractional divider of a 16550-style
// UART with the LPC43xx FDR extension:
//
//	baud = pclk / (16 * DL * (1 + DivAdd/Mul))
type Divisor struct {
	DL     uint16
	DivAdd uint8 // 0..14, < Mul
	Mul    uint8 // 1..15
}

// Rate returns the baud rate d produces from pclk.
func (d Divisor) Rate(pclk uint32) uint32 {
	if d.DL == 0 || d.Mul == 0 {
		return 0
	}
	num := uint64(pclk) * uint64(d.Mul)
	den := 16 * uint64(d.DL) * uint64(d.Mul+d.DivAdd)
	return uint32(num / den)
}

// BaudDivisor picks the divisor whose rate is closest to baud. Candidates
// are scanned Mul 1..15, DivAdd 0..Mul-1 with DL rounded to nearest; the
// first best candidate wins. DL must be at least 3 when the fractional
// divider is in use.
func BaudDivisor(pclk, baud uint32) Divisor {
	best := Divisor{DL: 1, Mul: 1}
	if baud == 0 {
		return best
	}
	bestErr := ^uint64(0)
	for mul := uint64(1); mul <= 15; mul++ {
		for div := uint64(0); div < mul; div++ {
			den := 16 * uint64(baud) * (mul + div)
			dl := mathx.RoundDiv(uint64(pclk)*mul, den)
			if dl == 0 || dl > 0xFFFF || (div > 0 && dl < 3) {
				continue
			}
			d := Divisor{DL: uint16(dl), DivAdd: uint8(div), Mul: uint8(mul)}
			if e := mathx.AbsDiff(uint64(d.Rate(pclk)), uint64(baud)); e < bestErr {
				best, bestErr = d, e
			}
		}
	}
	return best
}
