package pgsql

import (
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	saleRepo := newPgxSaleRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SaleRepo:      saleRepo,
		LedgerRepo:    ledgerRepo,
		ReportingRepo: reportingRepo,
	}
}
