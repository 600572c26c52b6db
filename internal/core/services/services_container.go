package services

import (
	portsrepo "github.com/SscSPs/mma_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_books/internal/core/ports/services"
	"github.com/SscSPs/mma_books/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Reporting: NewReportingService(
			repos.AccountRepo,
			repos.JournalRepo,
			WithFetchTimeout(cfg.FetchTimeout),
		),
	}
}
