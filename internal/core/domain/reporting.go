package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportQuery selects the business and period a report is computed for.
// StartDate/EndDate, when either is set, override Period.
type ReportQuery struct {
	BusinessID  string
	Period      string
	StartDate   string
	EndDate     string
	AccountCode string // General ledger only; empty or "all" selects every account
}

// AccountBalance is an account's normalized net movement over a report scope.
type AccountBalance struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Balance  decimal.Decimal `json:"balance"`
}

// CategoryGroup collects the non-zero accounts of one category, in display order.
type CategoryGroup struct {
	Category string           `json:"category"`
	Accounts []AccountBalance `json:"accounts"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

// StatementSection is one account type's block within a statement.
type StatementSection struct {
	AccountType AccountType     `json:"accountType"`
	Groups      []CategoryGroup `json:"groups"`
	Total       decimal.Decimal `json:"total"`
}

// LedgerRow is one journal line as it appears in an account's ledger.
type LedgerRow struct {
	Date           time.Time       `json:"date"`
	EntryID        string          `json:"entryID"`
	LineID         string          `json:"lineID"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // Raw debit-minus-credit; negative is a credit balance
	Balanced       bool            `json:"balanced"`       // Whether the owning entry balances
}

// AccountLedger is the chronological ledger of a single account.
type AccountLedger struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	Category     string          `json:"category"`
	Rows         []LedgerRow     `json:"rows"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
}

// GeneralLedger holds one AccountLedger per account with activity in scope.
type GeneralLedger struct {
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Accounts  []AccountLedger `json:"accounts"`
}

// IncomeStatement is the flow statement for a bounded period.
type IncomeStatement struct {
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	Income        StatementSection `json:"income"`
	Expenses      StatementSection `json:"expenses"`
	TotalIncome   decimal.Decimal  `json:"totalIncome"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	NetIncome     decimal.Decimal  `json:"netIncome"` // Total income minus total expenses
}

// BalanceSheet is the stock statement as of a point in time.
type BalanceSheet struct {
	AsOf                      string           `json:"asOf"`
	Assets                    StatementSection `json:"assets"`
	Liabilities               StatementSection `json:"liabilities"`
	Equity                    StatementSection `json:"equity"`
	TotalAssets               decimal.Decimal  `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal  `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal  `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal  `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool             `json:"balanced"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists cumulative account nets in debit and credit columns.
type TrialBalance struct {
	AsOf        string            `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}
