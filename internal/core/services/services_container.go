package services

import (
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger reads snapshots straight from the sale repository.
	container.Ledger = NewLedgerService(repos.SaleRepo, repos.LedgerRepo, WithLedgerMetrics(m))
	container.Sale = NewSaleService(repos.SaleRepo, container.Ledger)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.LedgerRepo)

	return container
}
