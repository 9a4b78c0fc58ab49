// Package ledger owns the ordered transaction collection and its
// persistence. Every mutation writes the full snapshot through the
// key-value store before returning.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Antonio-Naoki/fintrack/internal/model"
	"github.com/Antonio-Naoki/fintrack/internal/service"
)

// transactionsKey is the storage namespace for the serialized ledger.
const transactionsKey = "transactions"

// Validation errors returned by Add. The ledger refuses the mutation and
// leaves its state unchanged; callers decide how to surface them.
var (
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidDate      = errors.New("date must be a valid calendar date")
)

// IsValidationError reports whether err is an input-validation refusal
// from Add, as opposed to a persistence failure. On a validation error
// the ledger is untouched; on a persist failure the entry was accepted
// in memory but not written through.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyCategory) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidDate)
}

// Ledger is the authoritative, persisted collection of transactions.
// It is exclusively owned by a single logical session; no locking.
type Ledger struct {
	store service.KVStore
	clock service.Clock
	txns  []model.Transaction
}

// New creates a ledger over the given store and clock. Call Load to
// rehydrate persisted state.
func New(store service.KVStore, clock service.Clock) *Ledger {
	return &Ledger{store: store, clock: clock}
}

// Add constructs a new transaction and prepends it to the ledger,
// persisting the full snapshot. Invalid input refuses the mutation and
// returns a validation error with the ledger untouched.
func (l *Ledger) Add(ctx context.Context, typ model.TransactionType, amount decimal.Decimal, category, description string, date time.Time) (*model.Transaction, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	txn := model.Transaction{
		ID:          uuid.NewString(),
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		Timestamp:   l.clock.Now(),
	}

	l.txns = append([]model.Transaction{txn}, l.txns...)

	if err := l.Save(ctx); err != nil {
		return &txn, fmt.Errorf("transaction added but not persisted: %w", err)
	}

	slog.Debug("added transaction", "id", txn.ID, "type", txn.Type, "amount", txn.Amount)
	return &txn, nil
}

// Delete removes the transaction with the given id and persists. Deleting
// an absent id is a no-op, not an error.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	found := false
	kept := l.txns[:0:0]
	for _, txn := range l.txns {
		if txn.ID == id {
			found = true
			continue
		}
		kept = append(kept, txn)
	}
	if !found {
		return nil
	}
	l.txns = kept

	if err := l.Save(ctx); err != nil {
		return fmt.Errorf("transaction deleted but not persisted: %w", err)
	}

	slog.Debug("deleted transaction", "id", id)
	return nil
}

// All returns a snapshot copy of the ledger in insertion order, newest
// added first.
func (l *Ledger) All() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.txns)
}

// Save writes the full current snapshot to durable storage.
func (l *Ledger) Save(ctx context.Context) error {
	records := make([]transactionRecord, 0, len(l.txns))
	for _, txn := range l.txns {
		records = append(records, encodeTransaction(txn))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	if err := l.store.Put(ctx, transactionsKey, data); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	return nil
}

// Load rehydrates the ledger from durable storage. Absent or malformed
// state falls back to an empty ledger; Load never fails the caller for
// bad stored data.
func (l *Ledger) Load(ctx context.Context) error {
	data, found, err := l.store.Get(ctx, transactionsKey)
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}
	if !found {
		l.txns = nil
		return nil
	}

	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("stored transactions are malformed, starting empty", "error", err)
		l.txns = nil
		return nil
	}

	txns := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		txn, err := decodeTransaction(rec)
		if err != nil {
			slog.Warn("skipping malformed transaction record", "id", rec.ID, "error", err)
			continue
		}
		txns = append(txns, txn)
	}
	l.txns = txns

	slog.Debug("loaded transactions", "count", len(l.txns))
	return nil
}
