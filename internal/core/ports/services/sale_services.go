package services

import (
	"context"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
)

// SaleReaderSvc defines read operations on sales.
type SaleReaderSvc interface {
	GetSale(ctx context.Context, actor domain.Actor, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, actor domain.Actor, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
	GetSaleCommissions(ctx context.Context, actor domain.Actor, saleID string) ([]domain.LedgerEntry, error)
}

// SaleWriterSvc defines the sale lifecycle. Create and update return a nil
// error with SaleResult.CommissionErr set when the sale was saved but its
// ledger rows were not.
type SaleWriterSvc interface {
	CreateSale(ctx context.Context, actor domain.Actor, req dto.CreateSaleRequest) (*domain.SaleResult, error)
	UpdateSale(ctx context.Context, actor domain.Actor, saleID string, req dto.UpdateSaleRequest) (*domain.SaleResult, error)
	DeleteSale(ctx context.Context, actor domain.Actor, saleID string) error
}

// CommissionPreviewSvc computes commission for draft line items without persisting anything.
type CommissionPreviewSvc interface {
	PreviewCommission(in commission.Input) commission.Breakdown
}

// SaleSvcFacade combines all sale service interfaces.
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
	CommissionPreviewSvc
}
