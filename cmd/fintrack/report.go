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

// reportRecentLimit caps the transaction table in the report.
const reportRecentLimit = 15

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a full financial report",
		Long: `Print a complete report: overall and current-month summaries, goal
progress, category distribution, and the most recent transactions. The
report reads only the derived metrics; it never touches stored data.`,
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
			monthlyBalance := analytics.Balance(monthTxns)
			balance := analytics.Balance(txns)

			fmt.Println(cli.BoxStyle.Render(cli.TitleStyle.Render("FINTRACK — Reporte Financiero")))
			fmt.Printf("%s\n\n", cli.SubtleStyle.Render("Generado el: "+now.Format("2006-01-02 15:04")))

			fmt.Println(cli.TitleStyle.Render("Resumen Financiero"))
			fmt.Printf("  Balance Total:      %s\n", cli.FormatCurrency(balance))
			fmt.Printf("  Total Ingresos:     %s\n", cli.FormatCurrency(analytics.TotalByType(txns, model.TypeIncome)))
			fmt.Printf("  Total Gastos:       %s\n", cli.FormatCurrency(analytics.TotalByType(txns, model.TypeExpense)))
			fmt.Printf("  Total Transacciones: %d\n\n", len(txns))

			fmt.Println(cli.TitleStyle.Render("Resumen del Mes Actual"))
			fmt.Printf("  Ingresos del Mes:       %s\n", cli.FormatCurrency(analytics.TotalByType(monthTxns, model.TypeIncome)))
			fmt.Printf("  Gastos del Mes:         %s\n", cli.FormatCurrency(analytics.TotalByType(monthTxns, model.TypeExpense)))
			fmt.Printf("  Balance Mensual:        %s\n", cli.FormatCurrency(monthlyBalance))
			fmt.Printf("  Transacciones del Mes:  %d\n\n", len(monthTxns))

			if breakdown := analytics.BreakdownByCategory(txns, model.ExpenseCategories); len(breakdown) > 0 {
				fmt.Println(cli.TitleStyle.Render("Gastos por Categoría"))
				for _, cat := range breakdown {
					fmt.Printf("  %s %s: %s (%.1f%%)\n", cat.Icon, cat.Name, cli.FormatCurrency(cat.Amount), cat.Percentage)
				}
				fmt.Println()
			}

			printGoalProgress(analytics.TrackGoals(monthlyBalance, balance, goals), goals)
			fmt.Println()

			recent := analytics.Recent(txns, reportRecentLimit)
			if len(recent) > 0 {
				fmt.Println(cli.TitleStyle.Render("Transacciones Recientes"))
				for _, txn := range recent {
					fmt.Printf("  %s  %-7s %s %-16s %-24s %s\n",
						txn.DateString(),
						txn.Type.Label(),
						model.CategoryIcon(txn.Category, txn.Type),
						txn.Category,
						txn.Description,
						cli.FormatSigned(txn.Amount, txn.Type == model.TypeIncome))
				}
			}
			return nil
		},
	}
}
