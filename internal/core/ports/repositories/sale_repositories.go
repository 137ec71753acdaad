package repositories

import (
	"context"

	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
)

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSaleByID retrieves a sale by its unique identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// FindSaleSnapshot reads the fields copied onto ledger rows.
	FindSaleSnapshot(ctx context.Context, saleID string) (*domain.SaleSnapshot, error)

	// ListSales retrieves sales ordered by sale date descending, newest first.
	// A non-nil token continues after the last row of the previous page.
	ListSales(ctx context.Context, filter domain.SaleFilter, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale persists a new sale. A duplicate stock number yields apperrors.ErrDuplicate.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// UpdateSale overwrites an existing sale's line items, status and commission.
	UpdateSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale removes a sale.
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
