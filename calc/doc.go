// Package calc implements a dc-style reverse polish calculator over
// arbitrary-precision integers.
//
// Commands
//
// Input is a sequence of single-character commands and literals separated
// by optional whitespace:
//
//	0-9...  push the literal (a leading _ makes it negative: _5 is -5)
//	+ - * / pop two values, apply the operation, push the result
//	p       print the top of the stack with a newline
//	n       pop the top of the stack and print it without a newline
//	f       print the whole stack, top first
//	d       duplicate the top of the stack
//	r       swap the top two values
//	c       clear the stack
//	z       push the current stack depth
//	q       stop evaluating
//	#       comment to the end of the line
//
// The divisor of / must be non-zero; the quotient truncates toward zero.
// A failed command leaves its operands on the stack.
package calc
