package repositories

import (
	"context"

	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
)

// CommissionLedgerReader defines read operations for commission ledger entries
type CommissionLedgerReader interface {
	// FindEntriesBySaleID returns every entry for a sale, primary first.
	FindEntriesBySaleID(ctx context.Context, saleID string) ([]domain.LedgerEntry, error)

	// ListEntries lists entries by sale date descending using token pagination.
	ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// CommissionLedgerWriter defines write operations for commission ledger entries
type CommissionLedgerWriter interface {
	// InsertEntries writes all entries atomically.
	InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error

	// DeleteEntriesBySaleID removes every entry for a sale. Deleting nothing is not an error.
	DeleteEntriesBySaleID(ctx context.Context, saleID string) error

	// ReplaceEntries deletes the sale's entries and inserts the new set in one transaction.
	ReplaceEntries(ctx context.Context, saleID string, entries []domain.LedgerEntry) error
}

// CommissionLedgerRepositoryFacade combines all ledger repository interfaces
type CommissionLedgerRepositoryFacade interface {
	CommissionLedgerReader
	CommissionLedgerWriter
}

// CommissionLedgerRepositoryWithTx extends the facade with transaction capabilities
type CommissionLedgerRepositoryWithTx interface {
	CommissionLedgerRepositoryFacade
	TransactionManager
}
