package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Antonio-Naoki/fintrack/internal/analytics"
	"github.com/Antonio-Naoki/fintrack/internal/cli"
	"github.com/Antonio-Naoki/fintrack/internal/ledger"
)

func goalsCmd() *cobra.Command {
	var (
		monthly   string
		emergency string
		vacation  string
	)

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or update savings goals",
		Long: `Without flags, display the configured goals and current progress. With
flags, overwrite the goal record wholesale: unset flags keep their
current values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			goalStore := ledger.NewGoalStore(store)
			goals, err := goalStore.Load(ctx)
			if err != nil {
				return err
			}

			changed := false
			for _, f := range []struct {
				value  string
				target *decimal.Decimal
				name   string
			}{
				{monthly, &goals.MonthlyGoal, "monthly"},
				{emergency, &goals.EmergencyGoal, "emergency"},
				{vacation, &goals.VacationGoal, "vacation"},
			} {
				if f.value == "" {
					continue
				}
				amount, err := decimal.NewFromString(f.value)
				if err != nil {
					return fmt.Errorf("invalid %s goal %q: %w", f.name, f.value, err)
				}
				*f.target = amount
				changed = true
			}

			if changed {
				if err := goalStore.Save(ctx, goals); err != nil {
					return err
				}
				fmt.Println(cli.InfoStyle.Render("Goals updated."))
			}

			led, err := initLedger(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			txns := led.All()
			monthlyBalance := analytics.Balance(analytics.Filter(txns, analytics.ThisMonth(), now))

			printGoalProgress(analytics.TrackGoals(monthlyBalance, analytics.Balance(txns), goals), goals)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthly, "monthly", "", "monthly savings goal")
	cmd.Flags().StringVar(&emergency, "emergency", "", "emergency fund goal")
	cmd.Flags().StringVar(&vacation, "vacation", "", "vacation fund goal")

	return cmd
}
