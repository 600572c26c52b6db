package mapping

import (
	"strings"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(strings.ToLower(strings.TrimSpace(m.AccountType))),
		Category:    m.Category,
	}
}
