package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	// TypeIncome represents money entering the ledger.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money leaving the ledger.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Label returns the display label for the type.
func (t TransactionType) Label() string {
	switch t {
	case TypeIncome:
		return "Ingreso"
	case TypeExpense:
		return "Gasto"
	default:
		return string(t)
	}
}

// Transaction represents a single ledger entry. Transactions are immutable
// once created; corrections are modeled as delete plus re-add.
type Transaction struct {
	Date        time.Time
	Timestamp   time.Time
	ID          string
	Category    string
	Description string
	Type        TransactionType
	Amount      decimal.Decimal
}

// DateString returns the transaction's effective day in ISO form.
func (t *Transaction) DateString() string {
	return t.Date.Format("2006-01-02")
}
