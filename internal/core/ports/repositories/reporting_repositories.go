package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries over the commission ledger.
type ReportingRepository interface {
	// SummarizeByUser totals ledger amounts per user for sales dated within [from, to].
	// A non-nil userID restricts the result to that user.
	SummarizeByUser(ctx context.Context, from, to time.Time, userID *string) ([]domain.CommissionSummaryRow, error)
}
