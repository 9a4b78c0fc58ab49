package analytics

import (
	"sort"
	"strings"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

// Matches reports whether the transaction matches a free-text query. The
// query is checked case-insensitively against the description, category,
// type (both the stored value and its display label), and the decimal
// string form of the amount; any single match suffices. An empty query
// matches everything.
func Matches(txn model.Transaction, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(txn.Description), q) ||
		strings.Contains(strings.ToLower(txn.Category), q) ||
		strings.Contains(strings.ToLower(string(txn.Type)), q) ||
		strings.Contains(strings.ToLower(txn.Type.Label()), q) ||
		strings.Contains(txn.Amount.String(), q)
}

// Search returns the transactions matching the query, preserving input
// order.
func Search(txns []model.Transaction, query string) []model.Transaction {
	var out []model.Transaction
	for _, txn := range txns {
		if Matches(txn, query) {
			out = append(out, txn)
		}
	}
	return out
}

// Recent returns up to limit transactions sorted by entry timestamp,
// newest first. The input is not modified. A limit <= 0 means no limit.
func Recent(txns []model.Transaction, limit int) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
