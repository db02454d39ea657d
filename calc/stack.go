package calc

import (
	"fmt"
	"io"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"bigint"
)

// Error is the parent class of all errors returned by this package.
var Error = errs.Class("calc")

// Wrapped under Error on return so Error.Has holds for direct callers.
var errStackEmpty = oops.New("stack empty")

// Stack is a LIFO of values. The zero value is an empty stack ready to
// use.
type Stack struct {
	data []bigint.Int
}

func (s *Stack) Push(v bigint.Int) {
	s.data = append(s.data, v)
}

func (s *Stack) Pop() (_ bigint.Int, err error) {
	if len(s.data) == 0 {
		return bigint.Int{}, Error.Wrap(errStackEmpty)
	}

	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]

	return v, nil
}

func (s *Stack) Peek() (_ bigint.Int, err error) {
	if len(s.data) == 0 {
		return bigint.Int{}, Error.Wrap(errStackEmpty)
	}

	return s.data[len(s.data)-1], nil
}

// Swap exchanges the top two values.
func (s *Stack) Swap() (err error) {
	if len(s.data) < 2 {
		return Error.New("less than 2 values on stack")
	}

	last := len(s.data) - 1
	s.data[last], s.data[last-1] = s.data[last-1], s.data[last]

	return nil
}

func (s *Stack) Len() int {
	return len(s.data)
}

func (s *Stack) Clear() {
	s.data = s.data[:0]
}

// Dump writes every value to w, top of the stack first, one per line.
func (s *Stack) Dump(w io.Writer) {
	for i := len(s.data) - 1; i >= 0; i-- {
		fmt.Fprintln(w, s.data[i])
	}
}
