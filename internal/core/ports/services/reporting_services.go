package services

import (
	"context"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/SscSPs/dealership_commission_app/internal/dto"
)

// ReportingSvcFacade defines the read side over the commission ledger.
type ReportingSvcFacade interface {
	// ListLedgerEntries lists ledger rows. Members only ever see their own rows.
	ListLedgerEntries(ctx context.Context, actor domain.Actor, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)

	// CommissionSummary totals commission per salesperson for sales dated within [from, to].
	CommissionSummary(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.CommissionSummary, error)
}
