package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
)

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account is a chart-of-accounts entry. Reference data, never mutated by reporting.
type Account struct {
	Code        string      `json:"code"`        // Stable business key
	Name        string      `json:"name"`        // Display label
	AccountType AccountType `json:"accountType"` // asset, liability, etc.
	Category    string      `json:"category"`    // Grouping label within a type, e.g. "Current Assets"
}
