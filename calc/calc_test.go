package calc_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"bigint"
	"bigint/calc"
)

func TestEval(t *testing.T) {
	type TC struct {
		name  string
		lines []string
		out   string
		depth int
	}

	tcs := []TC{
		{
			name:  "add",
			lines: []string{"2 3 + p"},
			out:   "5\n",
			depth: 1,
		},
		{
			name:  "group carry",
			lines: []string{"9999999 1+p"},
			out:   "10000000\n",
			depth: 1,
		},
		{
			name:  "negative literal",
			lines: []string{"_5 3 * p"},
			out:   "-15\n",
			depth: 1,
		},
		{
			name:  "truncating division",
			lines: []string{"100 3 / p"},
			out:   "33\n",
			depth: 1,
		},
		{
			name:  "dump",
			lines: []string{"1 2 3 f"},
			out:   "3\n2\n1\n",
			depth: 3,
		},
		{
			name:  "dup",
			lines: []string{"5 d * p"},
			out:   "25\n",
			depth: 1,
		},
		{
			name:  "swap",
			lines: []string{"1 2 r - p"},
			out:   "1\n",
			depth: 1,
		},
		{
			name:  "depth",
			lines: []string{"1 2 z p"},
			out:   "2\n",
			depth: 3,
		},
		{
			name:  "clear",
			lines: []string{"1 2 3 c z p"},
			out:   "0\n",
			depth: 1,
		},
		{
			name:  "print without newline",
			lines: []string{"1 2 n"},
			out:   "2",
			depth: 1,
		},
		{
			name:  "comment",
			lines: []string{"# 1 2 + p"},
			out:   "",
			depth: 0,
		},
		{
			name:  "multiple lines",
			lines: []string{"2 3", "+", "p"},
			out:   "5\n",
			depth: 1,
		},
		{
			name:  "big values",
			lines: []string{"99999999999999999999999999 1 + p"},
			out:   "100000000000000000000000000\n",
			depth: 1,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			m := calc.New(buf)

			for _, line := range tc.lines {
				require.NoError(t, m.Eval(line))
			}
			require.Equal(t, tc.out, buf.String())
			require.Equal(t, tc.depth, m.Stack().Len())
		})
	}
}

func TestEvalQuit(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	m := calc.New(buf)

	require.NoError(t, m.Eval("4 p q 5 p"))
	require.True(t, m.Quit())
	require.Equal(t, "4\n", buf.String())
}

func TestEvalErrors(t *testing.T) {
	t.Run("division by zero", func(t *testing.T) {
		m := calc.New(bytes.NewBuffer(nil))

		err := m.Eval("7 0 /")
		require.Error(t, err)
		require.True(t, bigint.ErrDivisionByZero.Has(err))

		// The operands stay on the stack.
		require.Equal(t, 2, m.Stack().Len())
	})

	t.Run("stack underflow", func(t *testing.T) {
		m := calc.New(bytes.NewBuffer(nil))

		err := m.Eval("1 +")
		require.Error(t, err)
		require.True(t, calc.Error.Has(err))
		require.Equal(t, 1, m.Stack().Len())
	})

	t.Run("unknown command", func(t *testing.T) {
		m := calc.New(bytes.NewBuffer(nil))

		err := m.Eval("x")
		require.Error(t, err)
		require.True(t, calc.Error.Has(err))
	})

	t.Run("bare underscore", func(t *testing.T) {
		m := calc.New(bytes.NewBuffer(nil))

		err := m.Eval("_")
		require.Error(t, err)
		require.True(t, bigint.ErrParse.Has(err))
	})

	t.Run("swap underflow", func(t *testing.T) {
		m := calc.New(bytes.NewBuffer(nil))

		err := m.Eval("1 r")
		require.Error(t, err)
		require.True(t, calc.Error.Has(err))
	})
}

func TestStack(t *testing.T) {
	var s calc.Stack

	// Underflow errors carry the package class even without Eval's
	// wrapping in between.
	_, err := s.Pop()
	require.Error(t, err)
	require.True(t, calc.Error.Has(err))

	_, err = s.Peek()
	require.Error(t, err)
	require.True(t, calc.Error.Has(err))

	s.Push(bigint.New(1))
	s.Push(bigint.New(2))
	require.Equal(t, 2, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, "2", top.String())

	require.NoError(t, s.Swap())
	top, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, "1", top.String())

	s.Clear()
	require.Equal(t, 0, s.Len())
}
