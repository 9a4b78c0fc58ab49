package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/cli"
	"github.com/Antonio-Naoki/fintrack/internal/common"
	"github.com/Antonio-Naoki/fintrack/internal/ledger"
	"github.com/Antonio-Naoki/fintrack/internal/model"
)

func addCmd() *cobra.Command {
	var (
		typeFlag    string
		category    string
		description string
		dateFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new transaction",
		Long: `Record an income or expense entry in the ledger. The entry date defaults
to today but may be back-dated with --date; entry order is still tracked
separately for display.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			date := time.Now()
			if dateFlag != "" {
				date, err = time.Parse("2006-01-02", dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateFlag, err)
				}
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

			txn, err := led.Add(ctx, model.TransactionType(typeFlag), amount, category, description, date)
			if err != nil {
				if ledger.IsValidationError(err) {
					return common.NewUserError("transaction rejected", err)
				}
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			icon := model.CategoryIcon(txn.Category, txn.Type)
			fmt.Printf("%s %s %s %s (%s)\n",
				cli.InfoStyle.Render("Added"),
				icon,
				cli.BoldStyle.Render(txn.Description),
				cli.FormatSigned(txn.Amount, txn.Type == model.TypeIncome),
				cli.SubtleStyle.Render(txn.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(model.TypeExpense), "transaction type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "free-text description")
	cmd.Flags().StringVar(&dateFlag, "date", "", "effective date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
