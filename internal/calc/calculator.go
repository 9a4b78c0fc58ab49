// Package calc implements a four-function calculator state machine. It is
// independent of the ledger and holds no persistent state.
package calc

import (
	"strconv"
	"strings"
)

// Op is a calculator operator key.
type Op string

// Operator keys. Equals evaluates any pending operation; pressed again it
// is an identity on the second operand, so repeated presses are inert.
const (
	OpAdd    Op = "+"
	OpSub    Op = "-"
	OpMul    Op = "×"
	OpDiv    Op = "÷"
	OpEquals Op = "="
)

// Calculator is the ephemeral calculator state. The zero value is not
// usable; construct with New.
type Calculator struct {
	display string
	op      Op
	prev    float64
	hasPrev bool
	waiting bool
}

// New returns a cleared calculator showing "0".
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Display returns the current display string.
func (c *Calculator) Display() string {
	return c.display
}

// Clear resets the display to "0" and drops any pending operand and
// operator.
func (c *Calculator) Clear() {
	c.display = "0"
	c.prev = 0
	c.hasPrev = false
	c.op = ""
	c.waiting = false
}

// InputDigit appends a digit to the display, or starts a fresh operand if
// one is awaited. A lone "0" is replaced instead of extended.
func (c *Calculator) InputDigit(digit string) {
	if c.waiting {
		c.display = digit
		c.waiting = false
		return
	}
	if c.display == "0" {
		c.display = digit
		return
	}
	c.display += digit
}

// InputDecimal appends a decimal point if the display does not already
// contain one. When a fresh operand is awaited the display restarts at
// "0.".
func (c *Calculator) InputDecimal() {
	if c.waiting {
		c.display = "0."
		c.waiting = false
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

// SetOperator records op as pending, evaluating any previously pending
// operation first and showing its result.
func (c *Calculator) SetOperator(op Op) {
	input := parseDisplay(c.display)

	switch {
	case !c.hasPrev:
		c.prev = input
		c.hasPrev = true
	case c.op != "":
		result := evaluate(c.prev, input, c.op)
		c.display = formatNumber(result)
		c.prev = result
	}

	c.op = op
	c.waiting = true
}

// evaluate applies a binary operator. Division by zero is deliberately
// unguarded; the non-finite result is still rendered as a display string.
func evaluate(a, b float64, op Op) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpEquals:
		return b
	default:
		return b
	}
}

func parseDisplay(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// formatNumber renders results in fixed-point notation at every
// magnitude; extreme values never switch to exponent form. Non-finite
// values render as +Inf/-Inf/NaN.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
