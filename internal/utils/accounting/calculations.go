package accounting

import (
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/shopspring/decimal"
)

// Scope says which journal entries count towards an account's balance.
type Scope int

const (
	// Flow accounts report activity within [startDate, endDate] only.
	Flow Scope = iota
	// Stock accounts report the cumulative balance as of endDate.
	Stock
)

func (s Scope) String() string {
	if s == Stock {
		return "stock"
	}
	return "flow"
}

// Convention is the presentation sign and reporting scope of an account type.
type Convention struct {
	Sign  decimal.Decimal
	Scope Scope
}

var (
	debitNormal  = decimal.NewFromInt(1)
	creditNormal = decimal.NewFromInt(-1)
)

// conventions is the only place debit/credit orientation is decided.
//
//	ASSET, EXPENSE               -> +(debit - credit)
//	LIABILITY, EQUITY, INCOME    -> -(debit - credit)
var conventions = map[domain.AccountType]Convention{
	domain.Asset:     {Sign: debitNormal, Scope: Stock},
	domain.Expense:   {Sign: debitNormal, Scope: Flow},
	domain.Liability: {Sign: creditNormal, Scope: Stock},
	domain.Equity:    {Sign: creditNormal, Scope: Stock},
	domain.Income:    {Sign: creditNormal, Scope: Flow},
}

// ConventionFor returns the convention for an account type. ok is false for unknown types.
func ConventionFor(accountType domain.AccountType) (Convention, bool) {
	c, ok := conventions[accountType]
	return c, ok
}

// Normalize converts a raw debit-minus-credit movement into the account's
// normal-positive balance. Unknown types are returned unchanged.
func Normalize(accountType domain.AccountType, raw decimal.Decimal) decimal.Decimal {
	c, ok := conventions[accountType]
	if !ok {
		return raw
	}
	return raw.Mul(c.Sign)
}

// Window narrows a report range to the entries an account of the given
// scope may draw from. Stock accounts ignore the start date.
func Window(r period.Range, scope Scope) period.Range {
	if scope == Stock {
		return r.AsOf()
	}
	return r
}

// WindowFor is Window keyed by account type.
func WindowFor(r period.Range, accountType domain.AccountType) (period.Range, bool) {
	c, ok := conventions[accountType]
	if !ok {
		return period.Range{}, false
	}
	return Window(r, c.Scope), true
}
