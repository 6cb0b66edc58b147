package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
)

func TestTransactionKindIsValid(t *testing.T) {
	testCases := []struct {
		name     string
		kind     domain.TransactionKind
		expected bool
	}{
		{"Income", domain.Income, true},
		{"Expense", domain.Expense, true},
		{"Transfer", domain.Transfer, true},
		{"Empty", domain.TransactionKind(""), false},
		{"Unknown", domain.TransactionKind("REFUND"), false},
		{"LowercaseIncome", domain.TransactionKind("income"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.IsValid())
		})
	}
}
