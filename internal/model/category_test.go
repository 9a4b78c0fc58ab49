package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIcon(t *testing.T) {
	tests := []struct {
		name     string
		category string
		typ      TransactionType
		want     string
	}{
		{"known expense category", "Alimentación", TypeExpense, "🍔"},
		{"known income category", "Salario", TypeIncome, "💼"},
		{"same name resolves per type", "Otros", TypeExpense, "📦"},
		{"same name resolves per type income", "Otros", TypeIncome, "💰"},
		{"orphan category falls back", "Mascotas", TypeExpense, "💰"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryIcon(tt.category, tt.typ))
		})
	}
}

func TestTransactionType(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())

	assert.Equal(t, "Ingreso", TypeIncome.Label())
	assert.Equal(t, "Gasto", TypeExpense.Label())
}
