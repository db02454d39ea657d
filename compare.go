package bigint

// Cmp returns -1, 0, or +1 as x < y, x == y, or x > y.
func (x Int) Cmp(y Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}

	c := cmpMag(x.mag, y.mag)
	if x.neg {
		return -c
	}

	return c
}

// CmpAbs returns -1, 0, or +1 as |x| < |y|, |x| == |y|, or |x| > |y|.
func (x Int) CmpAbs(y Int) int {
	return cmpMag(x.mag, y.mag)
}

// Equal reports whether x and y denote the same integer.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// cmpMag compares two magnitudes. A longer magnitude is always the larger
// one since canonical magnitudes carry no leading zero groups.
func cmpMag(x, y []uint32) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return 0
}
