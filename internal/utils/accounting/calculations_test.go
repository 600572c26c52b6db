package accounting_test

import (
	"testing"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		raw         int64
		want        int64
	}{
		{name: "asset debit balance stays positive", accountType: domain.Asset, raw: 100, want: 100},
		{name: "expense debit balance stays positive", accountType: domain.Expense, raw: 200, want: 200},
		{name: "liability credit balance becomes positive", accountType: domain.Liability, raw: -100, want: 100},
		{name: "equity credit balance becomes positive", accountType: domain.Equity, raw: -50, want: 50},
		{name: "income credit balance becomes positive", accountType: domain.Income, raw: -500, want: 500},
		{name: "contra movement on income shows negative", accountType: domain.Income, raw: 30, want: -30},
		{name: "unknown type is untouched", accountType: domain.AccountType("memo"), raw: -7, want: -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Normalize(tt.accountType, decimal.NewFromInt(tt.raw))
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestConventionFor_Scopes(t *testing.T) {
	for accountType, want := range map[domain.AccountType]accounting.Scope{
		domain.Asset:     accounting.Stock,
		domain.Liability: accounting.Stock,
		domain.Equity:    accounting.Stock,
		domain.Income:    accounting.Flow,
		domain.Expense:   accounting.Flow,
	} {
		c, ok := accounting.ConventionFor(accountType)
		assert.True(t, ok, string(accountType))
		assert.Equal(t, want, c.Scope, string(accountType))
	}

	_, ok := accounting.ConventionFor("memo")
	assert.False(t, ok)
}

func TestWindow(t *testing.T) {
	r := period.Range{StartDate: "2024-03-01", EndDate: "2024-03-31"}

	assert.Equal(t, r, accounting.Window(r, accounting.Flow))
	assert.Equal(t, period.Range{EndDate: "2024-03-31"}, accounting.Window(r, accounting.Stock))

	w, ok := accounting.WindowFor(r, domain.Liability)
	assert.True(t, ok)
	assert.Equal(t, "", w.StartDate)

	_, ok = accounting.WindowFor(r, "memo")
	assert.False(t, ok)
}
