package bigint

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return normal(x.neg, addMag(x.mag, y.mag))
	}

	switch cmpMag(x.mag, y.mag) {
	case 0:
		return Int{}
	case 1:
		return normal(x.neg, subMag(x.mag, y.mag))
	default:
		return normal(y.neg, subMag(y.mag, x.mag))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if len(x.mag) == 0 || len(y.mag) == 0 {
		return Int{}
	}

	neg := x.neg != y.neg

	// Multiplying by ±1 is a sign-adjusted copy.
	if isOne(x.mag) {
		return normal(neg, copyMag(y.mag))
	}
	if isOne(y.mag) {
		return normal(neg, copyMag(x.mag))
	}

	return normal(neg, mulMag(x.mag, y.mag))
}

// Div returns the quotient x / y truncated toward zero. The remainder is
// not exposed. Div fails with ErrDivisionByZero when y is zero.
func (x Int) Div(y Int) (_ Int, err error) {
	defer Error.WrapP(&err)

	if len(y.mag) == 0 {
		return Int{}, ErrDivisionByZero.Wrap(errDivisionByZero)
	}

	neg := x.neg != y.neg

	switch cmpMag(x.mag, y.mag) {
	case -1:
		return Int{}, nil
	case 0:
		return normal(neg, []uint32{1}), nil
	}
	if isOne(y.mag) {
		return normal(neg, copyMag(x.mag)), nil
	}

	return normal(neg, divMag(x.mag, y.mag)), nil
}

func isOne(mag []uint32) bool {
	return len(mag) == 1 && mag[0] == 1
}

func copyMag(mag []uint32) []uint32 {
	z := make([]uint32, len(mag))
	copy(z, mag)

	return z
}

// addMag returns the schoolbook sum of two magnitudes.
func addMag(x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make([]uint32, len(x), len(x)+1)
	var carry uint32
	for i, xi := range x {
		s := xi + carry
		if i < len(y) {
			s += y[i]
		}
		if s >= GroupBase {
			s -= GroupBase
			carry = 1
		} else {
			carry = 0
		}
		z[i] = s
	}
	if carry != 0 {
		z = append(z, 1)
	}

	return z
}

// subMag returns the schoolbook difference of two magnitudes. It requires
// x >= y; the result is trimmed since subtraction can shrink the group
// count.
func subMag(x, y []uint32) []uint32 {
	z := make([]uint32, len(x))
	var borrow uint32
	for i, xi := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		yi += borrow
		if xi < yi {
			z[i] = xi + GroupBase - yi
			borrow = 1
		} else {
			z[i] = xi - yi
			borrow = 0
		}
	}

	return trim(z)
}

// mulMag returns the schoolbook product of two non-zero magnitudes. Each
// partial product lands in slot i+j and overflow is carried into the next
// slot as it appears, with a final sweep to settle any carries left in
// slots that never received a direct product.
func mulMag(x, y []uint32) []uint32 {
	acc := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, yj := range y {
			k := i + j
			acc[k] += uint64(xi) * uint64(yj)
			if acc[k] >= GroupBase {
				acc[k+1] += acc[k] / GroupBase
				acc[k] %= GroupBase
			}
		}
	}

	z := make([]uint32, len(acc))
	var carry uint64
	for i, a := range acc {
		a += carry
		z[i] = uint32(a % GroupBase)
		carry = a / GroupBase
	}

	return trim(z)
}

// divMag returns the quotient of two magnitudes with x > y > 1. It is long
// division most significant group first: the next group of x is brought
// down into a running remainder, then y subtracts from the remainder as
// many times as it fits and the count is the next quotient group. The cost
// grows with the quotient group values rather than the group count, which
// is fine for small quotients and pessimal for large ones.
func divMag(x, y []uint32) []uint32 {
	var rem []uint32

	// Quotient groups accumulate most significant first and are reversed
	// at the end.
	var quo []uint32
	for i := len(x) - 1; i >= 0; i-- {
		// Bring down the next group. A zero group onto an empty
		// remainder would only create a leading zero, so it is
		// skipped.
		if len(rem) > 0 || x[i] != 0 {
			rem = append(rem, 0)
			copy(rem[1:], rem)
			rem[0] = x[i]
		}

		var q uint32
		for cmpMag(rem, y) >= 0 {
			rem = subMag(rem, y)
			q++
		}
		if q != 0 || len(quo) > 0 {
			quo = append(quo, q)
		}
	}

	for l, r := 0, len(quo)-1; l < r; l, r = l+1, r-1 {
		quo[l], quo[r] = quo[r], quo[l]
	}

	return quo
}
