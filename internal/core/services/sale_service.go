package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
	"github.com/SscSPs/dealership_commission_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// saleService drives the sale lifecycle: calculate, persist, then settle the ledger.
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
	ledger   portssvc.LedgerSvcFacade
	now      func() time.Time
}

// SaleServiceOption is a functional option for configuring the sale service
type SaleServiceOption func(*saleService)

// WithSaleClock overrides the clock used for audit timestamps.
func WithSaleClock(now func() time.Time) SaleServiceOption {
	return func(s *saleService) {
		s.now = now
	}
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, ledger portssvc.LedgerSvcFacade, options ...SaleServiceOption) portssvc.SaleSvcFacade {
	svc := &saleService{
		saleRepo: saleRepo,
		ledger:   ledger,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// PreviewCommission computes the breakdown for draft line items.
func (s *saleService) PreviewCommission(in commission.Input) commission.Breakdown {
	return commission.Calculate(in)
}

// CreateSale records a sale and writes its commission ledger entries. When the
// ledger write fails the sale is kept and the failure is reported on the result.
func (s *saleService) CreateSale(ctx context.Context, actor domain.Actor, req dto.CreateSaleRequest) (*domain.SaleResult, error) {
	logger := s.GetLogger(ctx)

	salespersonID := actor.UserID
	if req.SalespersonID != nil && strings.TrimSpace(*req.SalespersonID) != "" {
		salespersonID = strings.TrimSpace(*req.SalespersonID)
	}
	if err := s.AuthorizeActor(ctx, actor, salespersonID); err != nil {
		return nil, err
	}

	saleDate, err := dto.ParseDate("saleDate", req.SaleDate)
	if err != nil {
		return nil, err
	}

	status := domain.SalePending
	if req.Status != nil {
		status = domain.SaleStatus(*req.Status)
	}

	var partnerID *string
	if req.PartnerID != nil && strings.TrimSpace(*req.PartnerID) != "" {
		p := strings.TrimSpace(*req.PartnerID)
		partnerID = &p
	}

	now := s.now()
	sale := domain.Sale{
		SaleID:           uuid.NewString(),
		StockNumber:      domain.NormalizeStockNumber(req.StockNumber),
		CustomerName:     strings.TrimSpace(req.CustomerName),
		VehicleType:      commission.VehicleType(strings.ToLower(strings.TrimSpace(req.VehicleType))),
		SaleDate:         saleDate,
		SalePrice:        req.SalePrice.Decimal,
		AccessoriesValue: req.AccessoriesValue.Decimal,
		WarrantyPrice:    req.WarrantyPrice.Decimal,
		WarrantyCost:     req.WarrantyCost.Decimal,
		ServicePrice:     req.ServicePrice.Decimal,
		ServiceCost:      req.ServiceCost.Decimal,
		SpiffAmount:      req.SpiffAmount.Decimal,
		SalespersonID:    salespersonID,
		PartnerID:        partnerID,
		IsShared:         req.IsShared,
		Status:           status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	sale.Recalculate()

	if err := sale.Validate(); err != nil {
		logger.Warn("Sale failed validation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save sale", slog.String("stock_number", sale.StockNumber))
		}
		return nil, err
	}

	result := &domain.SaleResult{Sale: &sale}
	result.Ledger, result.CommissionErr = s.ledger.Create(ctx, ledgerRequestFor(&sale))
	if result.CommissionErr != nil {
		s.LogError(ctx, result.CommissionErr, "Sale saved but commission ledger was not written",
			slog.String("sale_id", sale.SaleID))
	}

	logger.Info("Sale created",
		slog.String("sale_id", sale.SaleID),
		slog.String("total_commission", sale.Commission.Total.String()),
		slog.Bool("commission_recorded", result.CommissionRecorded()))
	return result, nil
}

// GetSale returns a sale the actor may see.
func (s *saleService) GetSale(ctx context.Context, actor domain.Actor, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale", slog.String("sale_id", saleID))
		}
		return nil, err
	}
	if err := s.AuthorizeActor(ctx, actor, saleParticipants(sale)...); err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales lists sales newest first. Members only see sales they are part of.
func (s *saleService) ListSales(ctx context.Context, actor domain.Actor, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	filter := domain.SaleFilter{}

	if params.SalespersonID != nil && *params.SalespersonID != "" {
		if err := s.AuthorizeActor(ctx, actor, *params.SalespersonID); err != nil {
			return nil, err
		}
		filter.InvolvingUserID = params.SalespersonID
	} else if !actor.CanManage() {
		self := actor.UserID
		filter.InvolvingUserID = &self
	}

	if params.Status != nil {
		status := domain.SaleStatus(*params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, domain.ErrInvalidSaleStatus)
		}
		filter.Status = &status
	}

	var err error
	if filter.From, filter.To, err = parseDateRange(params.From, params.To); err != nil {
		return nil, err
	}

	sales, nextToken, err := s.saleRepo.ListSales(ctx, filter, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := dto.ToListSalesResponse(sales, nextToken)
	s.LogDebug(ctx, "Sales listed", slog.Int("count", len(sales)))
	return &resp, nil
}

// GetSaleCommissions returns the ledger entries of a sale the actor may see.
func (s *saleService) GetSaleCommissions(ctx context.Context, actor domain.Actor, saleID string) ([]domain.LedgerEntry, error) {
	if _, err := s.GetSale(ctx, actor, saleID); err != nil {
		return nil, err
	}
	return s.ledger.GetEntriesForSale(ctx, saleID)
}

// UpdateSale applies a partial update, recalculates commission and replaces the
// ledger entries. Members may only edit sales where they are the primary
// salesperson, and may not hand a sale to someone else.
func (s *saleService) UpdateSale(ctx context.Context, actor domain.Actor, saleID string, req dto.UpdateSaleRequest) (*domain.SaleResult, error) {
	logger := s.GetLogger(ctx).With(slog.String("sale_id", saleID))

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale for update", slog.String("sale_id", saleID))
		}
		return nil, err
	}
	if err := s.AuthorizeActor(ctx, actor, sale.SalespersonID); err != nil {
		return nil, err
	}

	if err := req.ApplyTo(sale); err != nil {
		return nil, err
	}
	if err := s.AuthorizeActor(ctx, actor, sale.SalespersonID); err != nil {
		return nil, err
	}

	sale.Recalculate()
	if err := sale.Validate(); err != nil {
		logger.Warn("Sale update failed validation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	sale.LastUpdatedAt = s.now()
	sale.LastUpdatedBy = actor.UserID

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", saleID))
		}
		return nil, err
	}

	result := &domain.SaleResult{Sale: sale}
	result.Ledger, result.CommissionErr = s.ledger.Replace(ctx, ledgerRequestFor(sale))
	if result.CommissionErr != nil {
		s.LogError(ctx, result.CommissionErr, "Sale updated but commission ledger was not replaced",
			slog.String("sale_id", saleID))
	}

	logger.Info("Sale updated",
		slog.String("total_commission", sale.Commission.Total.String()),
		slog.Bool("commission_recorded", result.CommissionRecorded()))
	return result, nil
}

// DeleteSale removes the sale's ledger entries, then the sale. If the ledger
// delete fails the sale is left in place so no entry is orphaned.
func (s *saleService) DeleteSale(ctx context.Context, actor domain.Actor, saleID string) error {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale for delete", slog.String("sale_id", saleID))
		}
		return err
	}
	if err := s.AuthorizeActor(ctx, actor, sale.SalespersonID); err != nil {
		return err
	}

	if err := s.ledger.DeleteForSale(ctx, saleID); err != nil {
		return err
	}

	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Ledger entries removed but sale delete failed", slog.String("sale_id", saleID))
		}
		return err
	}

	s.LogInfo(ctx, "Sale deleted", slog.String("sale_id", saleID))
	return nil
}

func ledgerRequestFor(sale *domain.Sale) domain.LedgerRequest {
	return domain.LedgerRequest{
		SaleID:    sale.SaleID,
		PrimaryID: sale.SalespersonID,
		PartnerID: sale.PartnerID,
		Total:     sale.Commission.Total,
		IsShared:  sale.IsShared,
	}
}

func saleParticipants(sale *domain.Sale) []string {
	ids := []string{sale.SalespersonID}
	if sale.PartnerID != nil {
		ids = append(ids, *sale.PartnerID)
	}
	return ids
}

// parseDateRange parses optional wire dates and rejects inverted ranges.
func parseDateRange(from, to *string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if from != nil && *from != "" {
		d, err := dto.ParseDate("from", *from)
		if err != nil {
			return nil, nil, err
		}
		fromDate = &d
	}
	if to != nil && *to != "" {
		d, err := dto.ParseDate("to", *to)
		if err != nil {
			return nil, nil, err
		}
		toDate = &d
	}
	if fromDate != nil && toDate != nil && fromDate.After(*toDate) {
		return nil, nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return fromDate, toDate, nil
}
