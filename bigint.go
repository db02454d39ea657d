package bigint

import (
	"math"

	"fortio.org/safecast"
)

const (
	// GroupDigits is the number of decimal digits per magnitude group.
	GroupDigits = 7

	// GroupBase is the radix of one magnitude group, 10^GroupDigits.
	GroupBase = 10_000_000
)

// maxExactFloat is the largest magnitude for which a float64 represents
// every integer exactly.
const maxExactFloat = 1 << 53

// Int is a signed integer of arbitrary size. The zero value is the number
// zero and is ready to use.
type Int struct {
	neg bool     // sign; never set for zero
	mag []uint32 // base-GroupBase groups, least significant first
}

// New returns the Int equal to x.
func New(x int64) Int {
	neg := x < 0
	ux := uint64(x)
	if neg {
		ux = -ux
	}

	var mag []uint32
	for ux > 0 {
		mag = append(mag, uint32(ux%GroupBase))
		ux /= GroupBase
	}
	if len(mag) == 0 {
		return Int{}
	}

	return Int{neg: neg, mag: mag}
}

// FromFloat64 returns the Int equal to x. It fails with ErrInvalidInput
// unless x is a finite integer whose magnitude is at most 2^53, the range
// in which a float64 represents every integer exactly. Parse has no such
// ceiling and is the way in for larger values.
func FromFloat64(x float64) (_ Int, err error) {
	defer Error.WrapP(&err)

	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return Int{}, ErrInvalidInput.New("%v is not finite", x)
	case math.Abs(x) > maxExactFloat:
		return Int{}, ErrInvalidInput.New("magnitude of %g exceeds the float64 exact integer range", x)
	}

	i, cerr := safecast.Convert[int64](x)
	if cerr != nil {
		return Int{}, ErrInvalidInput.New("%v is not an integer", x)
	}

	return New(i), nil
}

// Copy returns a deep copy of x sharing no state with it.
func (x Int) Copy() Int {
	if len(x.mag) == 0 {
		return Int{}
	}

	mag := make([]uint32, len(x.mag))
	copy(mag, x.mag)

	return Int{neg: x.neg, mag: mag}
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x Int) Sign() int {
	if len(x.mag) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}

	return 1
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool {
	return len(x.mag) == 0
}

// Neg returns -x. The negation of zero is zero.
func (x Int) Neg() Int {
	if len(x.mag) == 0 {
		return Int{}
	}

	return Int{neg: !x.neg, mag: x.mag}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if len(x.mag) == 0 {
		return Int{}
	}

	return Int{mag: x.mag}
}

// normal assembles a canonical Int from a sign and a magnitude: leading
// zero groups are trimmed and an empty magnitude loses its sign.
func normal(neg bool, mag []uint32) Int {
	mag = trim(mag)
	if len(mag) == 0 {
		return Int{}
	}

	return Int{neg: neg, mag: mag}
}

// trim drops leading (high order) zero groups.
func trim(mag []uint32) []uint32 {
	i := len(mag)
	for i > 0 && mag[i-1] == 0 {
		i--
	}

	return mag[:i]
}
