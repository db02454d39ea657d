package bigint

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the parent class of all errors returned by this package.
var Error = errs.Class("bigint")

// Error kinds. Use Class.Has to test which kind an error is:
//
//	_, err := bigint.Parse("nope")
//	bigint.ErrParse.Has(err) // true
var (
	ErrInvalidInput   = errs.Class("invalid input")
	ErrParse          = errs.Class("parse error")
	ErrDivisionByZero = errs.Class("division by zero")
)

// The kind class stays outermost so Class.Has can find it; the traced
// cause sits inside.
var errDivisionByZero = oops.New("divisor is zero")
