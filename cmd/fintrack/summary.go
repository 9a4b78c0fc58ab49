package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/analytics"
	"github.com/Antonio-Naoki/fintrack/internal/cli"
	"github.com/Antonio-Naoki/fintrack/internal/ledger"
	"github.com/Antonio-Naoki/fintrack/internal/model"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show balance, monthly figures, and goal progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			led, err := initLedger(ctx, store)
			if err != nil {
				return err
			}

			goals, err := ledger.NewGoalStore(store).Load(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			txns := led.All()
			monthTxns := analytics.Filter(txns, analytics.ThisMonth(), now)

			totalIncome := analytics.TotalByType(txns, model.TypeIncome)
			totalExpenses := analytics.TotalByType(txns, model.TypeExpense)
			balance := analytics.Balance(txns)
			monthlyBalance := analytics.Balance(monthTxns)

			fmt.Println(cli.TitleStyle.Render("Resumen Financiero"))
			fmt.Printf("  Balance Total:   %s\n", cli.BoldStyle.Render(cli.FormatCurrency(balance)))
			fmt.Printf("  Total Ingresos:  %s\n", cli.IncomeStyle.Render(cli.FormatCurrency(totalIncome)))
			fmt.Printf("  Total Gastos:    %s\n", cli.ExpenseStyle.Render(cli.FormatCurrency(totalExpenses)))
			fmt.Printf("  Transacciones:   %d\n\n", led.Len())

			fmt.Println(cli.TitleStyle.Render("Mes Actual"))
			fmt.Printf("  Ingresos del Mes: %s\n", cli.IncomeStyle.Render(cli.FormatCurrency(analytics.TotalByType(monthTxns, model.TypeIncome))))
			fmt.Printf("  Gastos del Mes:   %s\n", cli.ExpenseStyle.Render(cli.FormatCurrency(analytics.TotalByType(monthTxns, model.TypeExpense))))
			fmt.Printf("  Balance Mensual:  %s\n\n", cli.BoldStyle.Render(cli.FormatCurrency(monthlyBalance)))

			printGoalProgress(analytics.TrackGoals(monthlyBalance, balance, goals), goals)
			return nil
		},
	}
}

func printGoalProgress(progress analytics.GoalProgress, goals model.Goals) {
	fmt.Println(cli.TitleStyle.Render("Metas de Ahorro"))
	fmt.Printf("  Meta Mensual    (%s)  %s\n", cli.FormatCurrency(goals.MonthlyGoal), cli.RenderBar(progress.MonthlyPct, 20))
	fmt.Printf("  Fondo Emergencia (%s)  %s\n", cli.FormatCurrency(goals.EmergencyGoal), cli.RenderBar(progress.EmergencyPct, 20))
	fmt.Printf("  Fondo Vacaciones (%s)  %s\n", cli.FormatCurrency(goals.VacationGoal), cli.RenderBar(progress.VacationPct, 20))
	fmt.Printf("  Progreso General: %s\n", cli.BoldStyle.Render(fmt.Sprintf("%d%%", progress.OverallPct)))
}
