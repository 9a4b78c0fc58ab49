package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_DigitEntry(t *testing.T) {
	tests := []struct {
		name  string
		steps func(c *Calculator)
		want  string
	}{
		{
			name:  "starts at zero",
			steps: func(_ *Calculator) {},
			want:  "0",
		},
		{
			name: "digit replaces lone zero",
			steps: func(c *Calculator) {
				c.InputDigit("7")
			},
			want: "7",
		},
		{
			name: "digits append",
			steps: func(c *Calculator) {
				c.InputDigit("1")
				c.InputDigit("2")
				c.InputDigit("3")
			},
			want: "123",
		},
		{
			name: "decimal point appends once",
			steps: func(c *Calculator) {
				c.InputDigit("3")
				c.InputDecimal()
				c.InputDigit("1")
				c.InputDecimal()
				c.InputDigit("4")
			},
			want: "3.14",
		},
		{
			name: "decimal on fresh display yields zero point",
			steps: func(c *Calculator) {
				c.InputDecimal()
			},
			want: "0.",
		},
		{
			name: "decimal while awaiting operand restarts display",
			steps: func(c *Calculator) {
				c.InputDigit("5")
				c.SetOperator(OpAdd)
				c.InputDecimal()
				c.InputDigit("5")
			},
			want: "0.5",
		},
		{
			name: "digit after operator starts new operand",
			steps: func(c *Calculator) {
				c.InputDigit("9")
				c.SetOperator(OpAdd)
				c.InputDigit("4")
			},
			want: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.steps(c)
			assert.Equal(t, tt.want, c.Display())
		})
	}
}

func TestCalculator_Operations(t *testing.T) {
	tests := []struct {
		name  string
		steps func(c *Calculator)
		want  string
	}{
		{
			name: "addition via equals",
			steps: func(c *Calculator) {
				c.InputDigit("7")
				c.SetOperator(OpAdd)
				c.InputDigit("3")
				c.SetOperator(OpEquals)
			},
			want: "10",
		},
		{
			name: "subtraction",
			steps: func(c *Calculator) {
				c.InputDigit("1")
				c.InputDigit("0")
				c.SetOperator(OpSub)
				c.InputDigit("4")
				c.SetOperator(OpEquals)
			},
			want: "6",
		},
		{
			name: "multiplication",
			steps: func(c *Calculator) {
				c.InputDigit("6")
				c.SetOperator(OpMul)
				c.InputDigit("7")
				c.SetOperator(OpEquals)
			},
			want: "42",
		},
		{
			name: "division with fractional result",
			steps: func(c *Calculator) {
				c.InputDigit("7")
				c.SetOperator(OpDiv)
				c.InputDigit("2")
				c.SetOperator(OpEquals)
			},
			want: "3.5",
		},
		{
			name: "chained operators evaluate left to right",
			steps: func(c *Calculator) {
				c.InputDigit("2")
				c.SetOperator(OpAdd)
				c.InputDigit("3")
				c.SetOperator(OpMul)
				c.InputDigit("4")
				c.SetOperator(OpEquals)
			},
			want: "20",
		},
		{
			name: "equals is inert when pressed again",
			steps: func(c *Calculator) {
				c.InputDigit("7")
				c.SetOperator(OpAdd)
				c.InputDigit("3")
				c.SetOperator(OpEquals)
				c.SetOperator(OpEquals)
			},
			want: "10",
		},
		{
			name: "division by zero renders a non-finite display",
			steps: func(c *Calculator) {
				c.InputDigit("7")
				c.SetOperator(OpDiv)
				c.InputDigit("0")
				c.SetOperator(OpEquals)
			},
			want: "+Inf",
		},
		{
			name: "huge results stay in fixed-point notation",
			steps: func(c *Calculator) {
				// 10 * 1000^7 = 1e22, past where exponent form would kick in
				c.InputDigit("1")
				c.InputDigit("0")
				for i := 0; i < 7; i++ {
					c.SetOperator(OpMul)
					c.InputDigit("1")
					c.InputDigit("0")
					c.InputDigit("0")
					c.InputDigit("0")
				}
				c.SetOperator(OpEquals)
			},
			want: "10000000000000000000000",
		},
		{
			name: "clear resets everything",
			steps: func(c *Calculator) {
				c.InputDigit("7")
				c.SetOperator(OpAdd)
				c.InputDigit("3")
				c.Clear()
			},
			want: "0",
		},
		{
			name: "operator after clear has no stale operand",
			steps: func(c *Calculator) {
				c.InputDigit("9")
				c.SetOperator(OpAdd)
				c.Clear()
				c.InputDigit("2")
				c.SetOperator(OpAdd)
				c.InputDigit("2")
				c.SetOperator(OpEquals)
			},
			want: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.steps(c)
			assert.Equal(t, tt.want, c.Display())
		})
	}
}
