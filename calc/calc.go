package calc

import (
	"fmt"
	"io"

	"bigint"
)

// Machine evaluates calculator commands against a value stack. Output
// producing commands write to the writer given to New.
type Machine struct {
	stack Stack
	out   io.Writer
	quit  bool
}

func New(out io.Writer) *Machine {
	return &Machine{out: out}
}

// Quit reports whether a q command has been evaluated.
func (m *Machine) Quit() bool {
	return m.quit
}

// Stack returns the machine's value stack.
func (m *Machine) Stack() *Stack {
	return &m.stack
}

// Eval runs one line of commands. Evaluation stops at the first failing
// command; the commands before it have already taken effect.
func (m *Machine) Eval(line string) (err error) {
	defer Error.WrapP(&err)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			// Whitespace separates literals.
		case c == '#':
			return nil
		case c >= '0' && c <= '9' || c == '_':
			start := i
			for i+1 < len(line) && line[i+1] >= '0' && line[i+1] <= '9' {
				i++
			}
			if err := m.literal(line[start : i+1]); err != nil {
				return err
			}
		case c == '+' || c == '-' || c == '*' || c == '/':
			if err := m.binop(c); err != nil {
				return err
			}
		case c == 'p':
			v, err := m.stack.Peek()
			if err != nil {
				return err
			}
			fmt.Fprintln(m.out, v)
		case c == 'n':
			v, err := m.stack.Pop()
			if err != nil {
				return err
			}
			fmt.Fprint(m.out, v)
		case c == 'f':
			m.stack.Dump(m.out)
		case c == 'd':
			v, err := m.stack.Peek()
			if err != nil {
				return err
			}
			m.stack.Push(v)
		case c == 'r':
			if err := m.stack.Swap(); err != nil {
				return err
			}
		case c == 'c':
			m.stack.Clear()
		case c == 'z':
			m.stack.Push(bigint.New(int64(m.stack.Len())))
		case c == 'q':
			m.quit = true
			return nil
		default:
			return Error.New("unknown command %q", c)
		}
	}

	return nil
}

// literal pushes a numeric literal. The dc convention applies: a leading
// underscore marks a negative literal since - is the subtraction command.
func (m *Machine) literal(lit string) error {
	if lit[0] == '_' {
		lit = "-" + lit[1:]
	}

	v, err := bigint.Parse(lit)
	if err != nil {
		return err
	}
	m.stack.Push(v)

	return nil
}

// binop pops b then a and pushes a OP b. The operands stay on the stack
// when the operation fails.
func (m *Machine) binop(c byte) error {
	b, err := m.stack.Pop()
	if err != nil {
		return err
	}
	a, err := m.stack.Pop()
	if err != nil {
		m.stack.Push(b)
		return err
	}

	var v bigint.Int
	switch c {
	case '+':
		v = a.Add(b)
	case '-':
		v = a.Sub(b)
	case '*':
		v = a.Mul(b)
	case '/':
		v, err = a.Div(b)
		if err != nil {
			m.stack.Push(a)
			m.stack.Push(b)
			return err
		}
	}
	m.stack.Push(v)

	return nil
}
