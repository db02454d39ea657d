// Package bigint implements arbitrary-precision signed integer arithmetic.
//
// Representation
//
// A value is a sign plus a magnitude. The magnitude is a sequence of digit
// groups in base 10^7, least significant group first:
//
//	x = mag[n-1]*10^(7*(n-1)) + ... + mag[1]*10^7 + mag[0]
//
// The base is 10^7 so that the product of any two groups (< 10^14) fits a
// uint64 exactly. The most significant group of a non-zero value is never
// zero, and zero itself has the unique form of an empty magnitude with a
// positive sign. Every operation returns a value in this canonical form.
//
// Values are immutable: no operation writes through a shared magnitude, so
// an Int may be copied and used from multiple goroutines freely.
//
// Strings
//
// Parse accepts an optional leading minus followed by one or more decimal
// digits and nothing else:
//
//	-?[0-9]+
//
// String renders the sign, the most significant group without padding, and
// every remaining group zero-padded to exactly 7 digits, so values round
// trip exactly:
//
//	bigint.MustParse("99999999999999999999999999").String()
//
// The decimal string is the interchange format: MarshalText and the msgpack
// codec both use it. MarshalBinary provides a compact fixed-width group
// encoding for callers that want one.
//
// Errors
//
// Failures are classed: ErrInvalidInput (unrepresentable native numbers,
// malformed binary data), ErrParse (bad decimal strings), and
// ErrDivisionByZero. Every failure is detected at the boundary of the
// operation that received the bad input; no partial result escapes.
package bigint
