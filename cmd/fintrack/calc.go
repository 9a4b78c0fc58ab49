package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/tui"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Open the interactive calculator",
		Long: `Open a four-function calculator. It shares nothing with the ledger and
keeps no state between runs.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			program := tea.NewProgram(tui.NewCalculatorModel())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("calculator failed: %w", err)
			}
			return nil
		},
	}
}
