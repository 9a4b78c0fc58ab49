package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

// transactionRecord is the persisted form of a transaction. Dates are
// stored as ISO day strings and timestamps as Unix milliseconds.
type transactionRecord struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Timestamp   int64           `json:"timestamp"`
}

func encodeTransaction(txn model.Transaction) transactionRecord {
	return transactionRecord{
		ID:          txn.ID,
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date.Format("2006-01-02"),
		Timestamp:   txn.Timestamp.UnixMilli(),
	}
}

func decodeTransaction(rec transactionRecord) (model.Transaction, error) {
	if rec.ID == "" {
		return model.Transaction{}, fmt.Errorf("missing id")
	}
	date, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q: %w", rec.Date, err)
	}
	return model.Transaction{
		ID:          rec.ID,
		Type:        model.TransactionType(rec.Type),
		Amount:      rec.Amount,
		Category:    rec.Category,
		Description: rec.Description,
		Date:        date,
		Timestamp:   time.UnixMilli(rec.Timestamp),
	}, nil
}
