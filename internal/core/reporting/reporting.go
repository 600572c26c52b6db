// Package reporting derives financial statements from fetched journal data.
//
// Every builder is a pure fold over its inputs: the same Ledger and range
// always produce identical output, and nothing is cached between calls.
package reporting

import (
	"sort"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Ledger is the journal data a report is computed from.
type Ledger struct {
	Accounts []domain.Account
	Entries  []domain.JournalEntry
	Lines    []domain.JournalLine
}

// balanceTolerance is the largest difference still treated as balanced.
var balanceTolerance = decimal.RequireFromString("0.01")

func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(balanceTolerance)
}

// sortedAccounts returns a copy of accounts ordered by code.
func sortedAccounts(accounts []domain.Account) []domain.Account {
	out := make([]domain.Account, len(accounts))
	copy(out, accounts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// buildSection normalizes the net movement of every account of one type,
// drops zero balances and groups the rest by category in first-seen order.
func buildSection(accountType domain.AccountType, accounts []domain.Account, net map[string]decimal.Decimal) domain.StatementSection {
	section := domain.StatementSection{
		AccountType: accountType,
		Groups:      []domain.CategoryGroup{},
		Total:       decimal.Zero,
	}
	index := make(map[string]int)

	for _, acc := range accounts {
		if acc.AccountType != accountType {
			continue
		}
		balance := accounting.Normalize(accountType, net[acc.Code])
		if balance.IsZero() {
			continue
		}

		i, ok := index[acc.Category]
		if !ok {
			i = len(section.Groups)
			index[acc.Category] = i
			section.Groups = append(section.Groups, domain.CategoryGroup{
				Category: acc.Category,
				Accounts: []domain.AccountBalance{},
				Subtotal: decimal.Zero,
			})
		}
		group := &section.Groups[i]
		group.Accounts = append(group.Accounts, domain.AccountBalance{
			Code:     acc.Code,
			Name:     acc.Name,
			Category: acc.Category,
			Balance:  balance,
		})
		group.Subtotal = group.Subtotal.Add(balance)
		section.Total = section.Total.Add(balance)
	}
	return section
}
