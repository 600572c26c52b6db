package models

// Account is a row of the accounts table.
type Account struct {
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	Category    string `db:"category"`
}
