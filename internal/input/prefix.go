package input

import (
	"math"
	"strconv"
)

// PrefixArg is a numeric argument typed before a command.
// The zero value means no argument was given.
type PrefixArg struct {
	value     int
	set       bool
	negative  bool // only "-" typed
	universal int  // number of C-u presses with no digits
}

// NoArg returns the absent prefix argument.
func NoArg() PrefixArg {
	return PrefixArg{}
}

// Num returns a prefix argument with an explicit numeric value.
func Num(n int) PrefixArg {
	return PrefixArg{value: n, set: true}
}

// IsSet reports whether any prefix argument was typed.
func (p PrefixArg) IsSet() bool {
	return p.set
}

// Universal reports whether the argument came from C-u alone, with no
// digits or sign typed after it.
func (p PrefixArg) Universal() bool {
	return p.set && p.universal > 0
}

// Int returns the numeric value of the argument, 1 when unset.
func (p PrefixArg) Int() int {
	if !p.set {
		return 1
	}
	return p.value
}

// Direction returns the sign of the argument: -1 for negative values,
// +1 otherwise (including unset and zero).
func (p PrefixArg) Direction() int {
	if p.set && p.value < 0 {
		return -1
	}
	return 1
}

// Scale returns a numeric argument of magnitude n carrying p's direction.
func (p PrefixArg) Scale(n int) PrefixArg {
	return Num(p.Direction() * n)
}

// String renders the argument the way it is echoed in the status line.
func (p PrefixArg) String() string {
	switch {
	case !p.set:
		return ""
	case p.negative:
		return "-"
	case p.universal > 0:
		return "C-u " + strconv.Itoa(p.value)
	default:
		return strconv.Itoa(p.value)
	}
}

// PrefixState accumulates a prefix argument across several commands.
type PrefixState struct {
	arg    PrefixArg
	digits bool
}

// Active reports whether a prefix argument is being accumulated.
func (s *PrefixState) Active() bool {
	return s.arg.set
}

// Peek returns the accumulated argument without consuming it.
func (s *PrefixState) Peek() PrefixArg {
	return s.arg
}

// Take returns the accumulated argument and resets the state.
func (s *PrefixState) Take() PrefixArg {
	arg := s.arg
	s.Reset()
	return arg
}

// Reset clears the accumulated argument.
func (s *PrefixState) Reset() {
	s.arg = PrefixArg{}
	s.digits = false
}

// Universal applies C-u: 4 on the first press, times 4 on each further press.
func (s *PrefixState) Universal() {
	if s.digits || s.arg.negative {
		// C-u after digits terminates the argument in Emacs; keep it as is.
		return
	}
	if s.arg.universal == 0 {
		s.arg = PrefixArg{value: 4, set: true, universal: 1}
		return
	}
	if s.arg.value <= math.MaxInt/4 {
		s.arg.value *= 4
	}
	s.arg.universal++
}

// Negate applies "-": starts a negative argument, replaces a bare C-u,
// or flips the sign of the digits typed so far.
func (s *PrefixState) Negate() {
	if !s.arg.set || s.arg.universal > 0 {
		s.arg = PrefixArg{value: -1, set: true, negative: true}
		return
	}
	if s.arg.negative {
		s.arg = PrefixArg{}
		return
	}
	s.arg.value = -s.arg.value
	s.arg.universal = 0
}

// Digit appends a decimal digit to the argument.
func (s *PrefixState) Digit(d int) {
	if d < 0 || d > 9 {
		return
	}
	switch {
	case s.arg.negative:
		s.arg = PrefixArg{value: -d, set: true}
	case s.digits:
		sign := 1
		v := s.arg.value
		if v < 0 {
			sign, v = -1, -v
		}
		if v > (math.MaxInt-d)/10 {
			v = math.MaxInt / 10
		} else {
			v = v*10 + d
		}
		s.arg.value = sign * v
	default:
		s.arg = PrefixArg{value: d, set: true}
	}
	s.digits = true
}
