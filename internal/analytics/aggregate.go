// Package analytics computes derived metrics from a ledger snapshot. All
// functions are pure: they take a transaction sequence and return a value
// without mutating anything. Aggregates are recomputed from scratch on
// every query rather than incrementally maintained.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

// TotalByType sums the amounts of transactions matching the given type.
// Returns zero for empty input.
func TotalByType(txns []model.Transaction, typ model.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type == typ {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// Balance returns total income minus total expenses.
func Balance(txns []model.Transaction) decimal.Decimal {
	return TotalByType(txns, model.TypeIncome).Sub(TotalByType(txns, model.TypeExpense))
}

// CategoryBreakdown is a per-category expense summary derived from the
// ledger; it is never persisted.
type CategoryBreakdown struct {
	Name       string
	Icon       string
	Color      string
	Amount     decimal.Decimal
	Percentage float64
}

// BreakdownByCategory sums expense transactions per catalog category.
// Categories with no matching expenses are omitted; result order follows
// the catalog's declared order. Percentages are of total expenses and 0
// when there are no expenses at all.
func BreakdownByCategory(txns []model.Transaction, catalog []model.CategoryInfo) []CategoryBreakdown {
	totalExpenses := TotalByType(txns, model.TypeExpense)

	var breakdown []CategoryBreakdown
	for _, cat := range catalog {
		amount := decimal.Zero
		for _, txn := range txns {
			if txn.Type == model.TypeExpense && txn.Category == cat.Name {
				amount = amount.Add(txn.Amount)
			}
		}
		if !amount.IsPositive() {
			continue
		}

		percentage := 0.0
		if totalExpenses.IsPositive() {
			percentage = amount.InexactFloat64() / totalExpenses.InexactFloat64() * 100
		}

		breakdown = append(breakdown, CategoryBreakdown{
			Name:       cat.Name,
			Icon:       cat.Icon,
			Color:      cat.Color,
			Amount:     amount,
			Percentage: percentage,
		})
	}
	return breakdown
}
