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
	"github.com/SscSPs/dealership_commission_app/internal/dto"
	"github.com/SscSPs/dealership_commission_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface. It reads only
// ledger rows and never joins back to sales.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	ledgerReader  portsrepo.CommissionLedgerReader
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepository, ledgerReader portsrepo.CommissionLedgerReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		ledgerReader:  ledgerReader,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ListLedgerEntries lists ledger rows newest first.
func (s *reportingService) ListLedgerEntries(ctx context.Context, actor domain.Actor, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	filter := domain.LedgerFilter{}

	if params.UserID != nil && *params.UserID != "" {
		if err := s.AuthorizeActor(ctx, actor, *params.UserID); err != nil {
			return nil, err
		}
		filter.UserID = params.UserID
	} else if !actor.CanManage() {
		self := actor.UserID
		filter.UserID = &self
	}

	var err error
	if filter.From, filter.To, err = parseDateRange(params.From, params.To); err != nil {
		return nil, err
	}

	entries, nextToken, err := s.ledgerReader.ListEntries(ctx, filter, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries")
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return &dto.ListLedgerEntriesResponse{
		Entries:   dto.ToLedgerEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// CommissionSummary totals commission per salesperson. Managers see the whole
// team; members see only their own row.
func (s *reportingService) CommissionSummary(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.CommissionSummary, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}

	var userID *string
	if !actor.CanManage() {
		self := actor.UserID
		userID = &self
	}

	rows, err := s.reportingRepo.SummarizeByUser(ctx, from, to, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize commission",
			slog.String("from", from.Format(time.DateOnly)),
			slog.String("to", to.Format(time.DateOnly)))
		return nil, fmt.Errorf("failed to summarize commission: %w", err)
	}
	if rows == nil {
		rows = []domain.CommissionSummaryRow{}
	}

	grandTotal := decimal.Zero
	for _, row := range rows {
		grandTotal = grandTotal.Add(row.TotalAmount)
	}

	s.LogInfo(ctx, "Commission summary generated",
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.Int("row_count", len(rows)))
	return &domain.CommissionSummary{Rows: rows, GrandTotal: grandTotal}, nil
}
