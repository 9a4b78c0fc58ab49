package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long: `Remove the transaction with the given id from the ledger. Deleting an
unknown id succeeds without effect. There is no update operation;
corrections are delete plus re-add.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := led.Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.InfoStyle.Render("Deleted ") + cli.SubtleStyle.Render(args[0]))
			return nil
		},
	}
}
