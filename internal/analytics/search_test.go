package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonio-Naoki/fintrack/internal/model"
)

func TestMatches(t *testing.T) {
	txn := expense(250.5, "Alimentación", "Compra en el Super", "2026-09-02")

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches everything", "", true},
		{"description substring", "super", true},
		{"description case-insensitive", "SUPER", true},
		{"category substring", "aliment", true},
		{"stored type value", "expense", true},
		{"type display label", "gasto", true},
		{"amount string", "250.5", true},
		{"partial amount", "250", true},
		{"no match", "gasolina", false},
		{"near miss stays a miss", "supermercado", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(txn, tt.query))
		})
	}
}

func TestMatches_IncomeLabel(t *testing.T) {
	txn := income(1000, "Salario", "Pago mensual", "2026-09-01")
	assert.True(t, Matches(txn, "ingreso"))
	assert.False(t, Matches(txn, "gasto"))
}

func TestSearch(t *testing.T) {
	txns := []model.Transaction{
		expense(200, "Alimentación", "Super", "2026-09-02"),
		expense(50, "Transporte", "Bus", "2026-09-03"),
		income(1000, "Salario", "Pago mensual", "2026-09-01"),
	}

	got := Search(txns, "a")
	assert.Len(t, got, 3) // all carry an "a" somewhere

	got = Search(txns, "bus")
	require.Len(t, got, 1)
	assert.Equal(t, "Bus", got[0].Description)
}

func TestRecent(t *testing.T) {
	mk := func(description string, entered string) model.Transaction {
		txn := expense(10, "Otros", description, "2026-09-01")
		txn.Timestamp = date(entered)
		return txn
	}

	txns := []model.Transaction{
		mk("first entered", "2026-09-01"),
		mk("last entered", "2026-09-03"),
		mk("middle entered", "2026-09-02"),
	}

	got := Recent(txns, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "last entered", got[0].Description)
	assert.Equal(t, "middle entered", got[1].Description)

	// No limit returns everything, newest first
	all := Recent(txns, 0)
	require.Len(t, all, 3)
	assert.Equal(t, "first entered", all[2].Description)

	// Input order is untouched
	assert.Equal(t, "first entered", txns[0].Description)
}

func TestRecent_TimestampNotDateDecidesOrder(t *testing.T) {
	backdated := expense(10, "Otros", "backdated", "2020-01-01")
	backdated.Timestamp = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	current := expense(10, "Otros", "current", "2026-09-01")
	current.Timestamp = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	got := Recent([]model.Transaction{current, backdated}, 0)
	assert.Equal(t, "backdated", got[0].Description)
}
