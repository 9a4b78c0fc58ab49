// Package tui contains the interactive terminal components.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Antonio-Naoki/fintrack/internal/calc"
	"github.com/Antonio-Naoki/fintrack/internal/cli"
)

// calculatorKeyMap defines the non-numeric keybindings.
type calculatorKeyMap struct {
	Clear key.Binding
	Quit  key.Binding
}

func (k calculatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Quit}
}

func (k calculatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Clear, k.Quit}}
}

var calculatorKeys = calculatorKeyMap{
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CalculatorModel is the interactive calculator. It wraps the pure state
// machine in internal/calc; all arithmetic behavior lives there.
type CalculatorModel struct {
	calc *calc.Calculator
	keys calculatorKeyMap
	help help.Model
}

// NewCalculatorModel creates a calculator showing "0".
func NewCalculatorModel() CalculatorModel {
	return CalculatorModel{
		calc: calc.New(),
		keys: calculatorKeys,
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses.
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Clear):
		m.calc.Clear()
		return m, nil
	}

	switch s := keyMsg.String(); s {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.calc.InputDigit(s)
	case ".":
		m.calc.InputDecimal()
	case "+":
		m.calc.SetOperator(calc.OpAdd)
	case "-":
		m.calc.SetOperator(calc.OpSub)
	case "*", "x", "×":
		m.calc.SetOperator(calc.OpMul)
	case "/", "÷":
		m.calc.SetOperator(calc.OpDiv)
	case "=", "enter":
		m.calc.SetOperator(calc.OpEquals)
	}
	return m, nil
}

// View renders the display and help line.
func (m CalculatorModel) View() string {
	display := cli.BoxStyle.Width(24).Align(lipgloss.Right).Render(
		cli.BoldStyle.Render(m.calc.Display()),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		cli.TitleStyle.Render("Calculadora"),
		display,
		cli.SubtleStyle.Render("digits  .  +  -  *  /  ="),
		m.help.View(m.keys),
	) + "\n"
}
