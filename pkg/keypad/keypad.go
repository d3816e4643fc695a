// Package keypad models the digit-by-digit numeric entry used on the
// measurements step. The value is kept as an explicit int-part/frac-part
// state machine rather than a raw string, so invalid events (a second
// decimal point, overflowing input) are rejected with errors instead of
// silently ignored.
package keypad

import (
	"errors"
	"strings"
)

const maxDigits = 9

var (
	ErrNotDigit      = errors.New("keypad: not a digit")
	ErrDecimalExists = errors.New("keypad: decimal point already present")
	ErrTooLong       = errors.New("keypad: value too long")
	ErrBadInitial    = errors.New("keypad: initial value is not a number")
)

type Editor struct {
	intPart    string
	fracPart   string
	hasDecimal bool
}

// New starts an editor from a display value, "0" when empty.
func New(initial string) (*Editor, error) {
	e := &Editor{intPart: "0"}
	if initial == "" {
		return e, nil
	}
	parts := strings.Split(initial, ".")
	if len(parts) > 2 {
		return nil, ErrBadInitial
	}
	for _, p := range parts {
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return nil, ErrBadInitial
			}
		}
	}
	if parts[0] != "" {
		e.intPart = strings.TrimLeft(parts[0], "0")
		if e.intPart == "" {
			e.intPart = "0"
		}
	}
	if len(parts) == 2 {
		e.hasDecimal = true
		e.fracPart = parts[1]
	}
	return e, nil
}

func (e *Editor) digits() int { return len(e.intPart) + len(e.fracPart) }

// PressDigit appends one digit. A leading "0" is replaced, not prefixed.
func (e *Editor) PressDigit(d byte) error {
	if d < '0' || d > '9' {
		return ErrNotDigit
	}
	if e.digits() >= maxDigits {
		return ErrTooLong
	}
	if e.hasDecimal {
		e.fracPart += string(d)
		return nil
	}
	if e.intPart == "0" {
		e.intPart = string(d)
		return nil
	}
	e.intPart += string(d)
	return nil
}

// PressDecimal opens the fractional part. A second press is an error and
// leaves the value unchanged.
func (e *Editor) PressDecimal() error {
	if e.hasDecimal {
		return ErrDecimalExists
	}
	e.hasDecimal = true
	return nil
}

// PressDelete strips the last character; an emptied value resets to "0",
// never to the empty string.
func (e *Editor) PressDelete() {
	switch {
	case len(e.fracPart) > 0:
		e.fracPart = e.fracPart[:len(e.fracPart)-1]
	case e.hasDecimal:
		e.hasDecimal = false
	case len(e.intPart) > 1:
		e.intPart = e.intPart[:len(e.intPart)-1]
	default:
		e.intPart = "0"
	}
}

func (e *Editor) Value() string {
	if e.hasDecimal {
		return e.intPart + "." + e.fracPart
	}
	return e.intPart
}
