package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/analytics"
	"github.com/Antonio-Naoki/fintrack/internal/cli"
	"github.com/Antonio-Naoki/fintrack/internal/model"
)

func analyzeCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show monthly and weekly trends and category distribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if months <= 0 {
				return fmt.Errorf("--months must be positive, got %d", months)
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			led, err := initLedger(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			txns := led.All()

			printMonthlySeries(analytics.MonthlySeries(txns, now, months))
			printWeeklySeries(analytics.WeeklySeries(txns, now))
			printBreakdown(analytics.BreakdownByCategory(txns, model.ExpenseCategories))
			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", 6, "months of history in the monthly trend")

	return cmd
}

func printMonthlySeries(series []analytics.MonthPoint) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Tendencia Mensual (Últimos %d Meses)", len(series))))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mes\tIngresos\tGastos\tBalance\n")
	for _, point := range series {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			point.Label(),
			cli.IncomeStyle.Render(cli.FormatCurrency(point.Income)),
			cli.ExpenseStyle.Render(cli.FormatCurrency(point.Expenses)),
			cli.FormatCurrency(point.Balance))
	}
	_ = w.Flush()
	fmt.Println()
}

func printWeeklySeries(series []analytics.WeekPoint) {
	fmt.Println(cli.TitleStyle.Render("Análisis Semanal del Mes Actual"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Semana\tIngresos\tGastos\tBalance\n")
	for _, point := range series {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			point.Label(),
			cli.IncomeStyle.Render(cli.FormatCurrency(point.Income)),
			cli.ExpenseStyle.Render(cli.FormatCurrency(point.Expenses)),
			cli.FormatCurrency(point.Balance))
	}
	_ = w.Flush()
	fmt.Println()
}

func printBreakdown(breakdown []analytics.CategoryBreakdown) {
	fmt.Println(cli.TitleStyle.Render("Distribución por Categorías"))
	if len(breakdown) == 0 {
		fmt.Println(cli.SubtleStyle.Render("  Sin gastos registrados."))
		return
	}

	for _, cat := range breakdown {
		bar := strings.Repeat("█", int(cat.Percentage/5))
		fmt.Printf("  %s %-16s %10s  %5.1f%% %s\n",
			cat.Icon,
			cat.Name,
			cli.FormatCurrency(cat.Amount),
			cat.Percentage,
			cli.InfoStyle.Render(bar))
	}
}
