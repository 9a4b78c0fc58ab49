package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/analytics"
	"github.com/Antonio-Naoki/fintrack/internal/cli"
	"github.com/Antonio-Naoki/fintrack/internal/model"
)

func listCmd() *cobra.Command {
	var (
		search string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transactions",
		Long: `Display transactions ordered by entry time, newest first, optionally
filtered by a free-text search over description, category, type, and
amount.`,
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

			txns := analytics.Recent(analytics.Search(led.All(), search), limit)
			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'fintrack add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Fecha"),
				headerStyle.Render("Tipo"),
				headerStyle.Render("Categoría"),
				headerStyle.Render("Descripción"),
				headerStyle.Render("Cantidad"),
				headerStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 7),
				strings.Repeat("-", 16),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10),
				strings.Repeat("-", 36))

			for _, txn := range txns {
				amountStyle := cli.ExpenseStyle
				if txn.Type == model.TypeIncome {
					amountStyle = cli.IncomeStyle
				}
				icon := model.CategoryIcon(txn.Category, txn.Type)
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\t%s\n",
					txn.DateString(),
					txn.Type.Label(),
					icon,
					txn.Category,
					txn.Description,
					amountStyle.Render(cli.FormatSigned(txn.Amount, txn.Type == model.TypeIncome)),
					cli.SubtleStyle.Render(txn.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "free-text filter")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum entries to show (0 = all)")

	return cmd
}
