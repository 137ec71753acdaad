package services

import (
	"context"

	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
)

// LedgerWriterSvc keeps a sale's commission ledger rows in step with the sale.
type LedgerWriterSvc interface {
	// Create writes the entry set for a sale that has none.
	Create(ctx context.Context, req domain.LedgerRequest) (*domain.LedgerResult, error)

	// Replace swaps the sale's entry set for the one described by req.
	Replace(ctx context.Context, req domain.LedgerRequest) (*domain.LedgerResult, error)

	// DeleteForSale removes every entry belonging to the sale.
	DeleteForSale(ctx context.Context, saleID string) error
}

// LedgerReaderSvc reads a sale's ledger rows.
type LedgerReaderSvc interface {
	GetEntriesForSale(ctx context.Context, saleID string) ([]domain.LedgerEntry, error)
}

// LedgerSvcFacade combines ledger read and write operations.
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
