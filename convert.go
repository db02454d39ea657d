package bigint

import (
	"math"
	"strconv"

	"fortio.org/safecast"
)

// Parse returns the Int denoted by s. The accepted grammar is an optional
// leading minus followed by one or more decimal digits:
//
//	-?[0-9]+
//
// Anything else fails with ErrParse. Redundant leading zeros are dropped
// and "-0" parses to canonical zero.
func Parse(s string) (_ Int, err error) {
	defer Error.WrapP(&err)

	digits := s
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return Int{}, ErrParse.New("%q: no digits", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Int{}, ErrParse.New("%q: invalid character %q", s, digits[i])
		}
	}

	// Group GroupDigits digits at a time from the least significant end.
	mag := make([]uint32, 0, (len(digits)+GroupDigits-1)/GroupDigits)
	for end := len(digits); end > 0; end -= GroupDigits {
		start := end - GroupDigits
		if start < 0 {
			start = 0
		}
		var g uint32
		for _, c := range []byte(digits[start:end]) {
			g = g*10 + uint32(c-'0')
		}
		mag = append(mag, g)
	}

	return normal(neg, mag), nil
}

// MustParse is Parse panicking on failure. It is intended for literals in
// tests and initialization.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// String returns the canonical decimal form of x: an optional minus, the
// most significant group without padding, and every remaining group zero
// padded to exactly GroupDigits digits. The result always parses back to
// an equal value.
func (x Int) String() string {
	return string(x.Append(nil))
}

// Append appends the canonical decimal form of x to buf and returns the
// extended buffer.
func (x Int) Append(buf []byte) []byte {
	if len(x.mag) == 0 {
		return append(buf, '0')
	}

	if x.neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, uint64(x.mag[len(x.mag)-1]), 10)
	for i := len(x.mag) - 2; i >= 0; i-- {
		buf = appendPadded(buf, x.mag[i])
	}

	return buf
}

// appendPadded appends g zero-padded to exactly GroupDigits digits.
func appendPadded(buf []byte, g uint32) []byte {
	for p := uint32(GroupBase / 10); p > 1 && g < p; p /= 10 {
		buf = append(buf, '0')
	}

	return strconv.AppendUint(buf, uint64(g), 10)
}

// Float64 returns the nearest float64 to x. The conversion is exact only
// while |x| stays within the float64 exact integer range; beyond that it
// is an approximation and callers must treat it as advisory. No operation
// in this package consumes it.
func (x Int) Float64() float64 {
	var f float64
	for i := len(x.mag) - 1; i >= 0; i-- {
		f = f*GroupBase + float64(x.mag[i])
	}
	if x.neg {
		f = -f
	}

	return f
}

// Int64 returns x as an int64. It fails with ErrInvalidInput when x does
// not fit; a successful conversion is exact.
func (x Int) Int64() (_ int64, err error) {
	defer Error.WrapP(&err)

	var v uint64
	for i := len(x.mag) - 1; i >= 0; i-- {
		g := uint64(x.mag[i])
		if v > (math.MaxUint64-g)/GroupBase {
			return 0, ErrInvalidInput.New("%s does not fit in an int64", x)
		}
		v = v*GroupBase + g
	}

	if x.neg {
		if v == 1<<63 {
			return math.MinInt64, nil
		}
		i, cerr := safecast.Conv[int64](v)
		if cerr != nil {
			return 0, ErrInvalidInput.New("%s does not fit in an int64", x)
		}
		return -i, nil
	}

	i, cerr := safecast.Conv[int64](v)
	if cerr != nil {
		return 0, ErrInvalidInput.New("%s does not fit in an int64", x)
	}

	return i, nil
}
