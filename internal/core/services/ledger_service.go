package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/dealership_commission_app/internal/core/ports/services"
	"github.com/SscSPs/dealership_commission_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger operation names used in logs and metrics.
const (
	ledgerOpCreate  = "create"
	ledgerOpReplace = "replace"
	ledgerOpDelete  = "delete"
)

// ledgerService maintains the commission ledger rows of each sale.
type ledgerService struct {
	BaseService
	saleReader portsrepo.SaleReader
	ledgerRepo portsrepo.CommissionLedgerRepositoryFacade
	metrics    *metrics.Metrics
	now        func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerMetrics records ledger operation outcomes on m.
func WithLedgerMetrics(m *metrics.Metrics) LedgerServiceOption {
	return func(s *ledgerService) {
		s.metrics = m
	}
}

// WithLedgerClock overrides the clock used for entry timestamps.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a ledger service that reads sale snapshots through
// saleReader and persists entries through ledgerRepo.
func NewLedgerService(saleReader portsrepo.SaleReader, ledgerRepo portsrepo.CommissionLedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		saleReader: saleReader,
		ledgerRepo: ledgerRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Create writes one entry for an unshared sale, or one primary and one partner
// entry of half the total each for a shared sale.
func (s *ledgerService) Create(ctx context.Context, req domain.LedgerRequest) (result *domain.LedgerResult, err error) {
	defer func() { s.observe(ledgerOpCreate, result, err) }()

	entries, err := s.buildEntries(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.InsertEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "Failed to insert commission ledger entries", slog.String("sale_id", req.SaleID))
		return nil, fmt.Errorf("%w: insert entries for sale %s: %w", apperrors.ErrPersistenceWrite, req.SaleID, err)
	}

	s.LogInfo(ctx, "Commission ledger entries created",
		slog.String("sale_id", req.SaleID),
		slog.Int("entry_count", len(entries)),
		slog.String("total", req.Total.StringFixed(domain.AmountPrecision)))
	return &domain.LedgerResult{SaleID: req.SaleID, Entries: entries}, nil
}

// Replace swaps the sale's entries for a freshly computed set in one
// transaction. The snapshot is read first, so a snapshot failure leaves the
// existing entries untouched. Repeating a call with the same request yields
// the same entry set.
func (s *ledgerService) Replace(ctx context.Context, req domain.LedgerRequest) (result *domain.LedgerResult, err error) {
	defer func() { s.observe(ledgerOpReplace, result, err) }()

	entries, err := s.buildEntries(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.ReplaceEntries(ctx, req.SaleID, entries); err != nil {
		s.LogError(ctx, err, "Failed to replace commission ledger entries", slog.String("sale_id", req.SaleID))
		return nil, fmt.Errorf("%w: replace entries for sale %s: %w", apperrors.ErrPersistenceWrite, req.SaleID, err)
	}

	s.LogInfo(ctx, "Commission ledger entries replaced",
		slog.String("sale_id", req.SaleID),
		slog.Int("entry_count", len(entries)))
	return &domain.LedgerResult{SaleID: req.SaleID, Entries: entries}, nil
}

// DeleteForSale removes every entry of the sale. Deleting a sale that has no
// entries succeeds.
func (s *ledgerService) DeleteForSale(ctx context.Context, saleID string) (err error) {
	defer func() { s.observe(ledgerOpDelete, nil, err) }()

	if saleID == "" {
		return fmt.Errorf("%w: sale id is required", apperrors.ErrValidation)
	}

	if err := s.ledgerRepo.DeleteEntriesBySaleID(ctx, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete commission ledger entries", slog.String("sale_id", saleID))
		return fmt.Errorf("%w: delete entries for sale %s: %w", apperrors.ErrPersistenceWrite, saleID, err)
	}

	s.LogInfo(ctx, "Commission ledger entries deleted", slog.String("sale_id", saleID))
	return nil
}

// GetEntriesForSale returns the sale's entries, primary first.
func (s *ledgerService) GetEntriesForSale(ctx context.Context, saleID string) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntriesBySaleID(ctx, saleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read commission ledger entries", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to read ledger entries: %w", err)
	}
	if entries == nil {
		return []domain.LedgerEntry{}, nil
	}
	return entries, nil
}

// buildEntries validates req, reads the sale snapshot and computes the entry set.
// Nothing is written here.
func (s *ledgerService) buildEntries(ctx context.Context, req domain.LedgerRequest) ([]domain.LedgerEntry, error) {
	if err := validateLedgerRequest(req); err != nil {
		s.GetLogger(ctx).Warn("Rejected ledger request", slog.String("sale_id", req.SaleID), slog.String("error", err.Error()))
		return nil, err
	}

	snapshot, err := s.saleReader.FindSaleSnapshot(ctx, req.SaleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read sale snapshot for ledger", slog.String("sale_id", req.SaleID))
		return nil, fmt.Errorf("%w: sale %s: %w", apperrors.ErrSnapshotRead, req.SaleID, err)
	}

	now := s.now()
	newEntry := func(userID string, role domain.LedgerRole, amount decimal.Decimal) domain.LedgerEntry {
		return domain.LedgerEntry{
			EntryID:      uuid.NewString(),
			SaleID:       req.SaleID,
			UserID:       userID,
			Role:         role,
			Amount:       amount,
			SaleDate:     snapshot.SaleDate,
			StockNumber:  snapshot.StockNumber,
			CustomerName: snapshot.CustomerName,
			VehicleType:  snapshot.VehicleType,
			Status:       snapshot.Status,
			CreatedAt:    now,
		}
	}

	if req.Shared() {
		half := req.Total.Mul(domain.SharedSplit).Round(domain.AmountPrecision)
		return []domain.LedgerEntry{
			newEntry(req.PrimaryID, domain.LedgerPrimary, half),
			newEntry(*req.PartnerID, domain.LedgerPartner, half),
		}, nil
	}
	return []domain.LedgerEntry{
		newEntry(req.PrimaryID, domain.LedgerPrimary, req.Total.Round(domain.AmountPrecision)),
	}, nil
}

func validateLedgerRequest(req domain.LedgerRequest) error {
	switch {
	case req.SaleID == "":
		return fmt.Errorf("%w: sale id is required", apperrors.ErrValidation)
	case req.PrimaryID == "":
		return fmt.Errorf("%w: primary salesperson is required", apperrors.ErrValidation)
	case req.Total.IsNegative():
		return fmt.Errorf("%w: commission total must not be negative", apperrors.ErrValidation)
	case req.Shared() && *req.PartnerID == req.PrimaryID:
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, domain.ErrPartnerIsPrimary)
	}
	return nil
}

func (s *ledgerService) observe(operation string, result *domain.LedgerResult, err error) {
	s.metrics.ObserveLedgerOperation(operation, err)
	if err != nil || result == nil {
		return
	}
	for _, e := range result.Entries {
		s.metrics.AddCommissionWritten(string(e.Role), e.Amount.InexactFloat64())
	}
}
