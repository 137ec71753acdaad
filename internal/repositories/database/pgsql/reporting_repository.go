package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// SummarizeByUser totals ledger rows per user for sale dates within [from, to].
// Only the ledger is read; sale fields come from the copies on each row.
func (r *reportingRepository) SummarizeByUser(ctx context.Context, from, to time.Time, userID *string) ([]domain.CommissionSummaryRow, error) {
	query := `
		WITH entries AS (
			SELECT
				user_id,
				amount,
				status,
				COUNT(*) OVER (PARTITION BY sale_id) AS sale_entry_count
			FROM commission_ledger
			WHERE sale_date BETWEEN $1 AND $2
		)
		SELECT
			user_id,
			COALESCE(SUM(amount), 0) AS total_amount,
			COUNT(*) AS entry_count,
			COUNT(*) FILTER (WHERE sale_entry_count > 1) AS shared_count,
			COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0) AS completed_amount,
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending_amount
		FROM entries
		WHERE ($3::text IS NULL OR user_id = $3)
		GROUP BY user_id
		ORDER BY total_amount DESC, user_id
	`

	rows, err := r.Pool.Query(ctx, query, from, to, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying commission summary: %w", err)
	}
	defer rows.Close()

	var result []domain.CommissionSummaryRow
	for rows.Next() {
		var row domain.CommissionSummaryRow
		if err := rows.Scan(
			&row.UserID,
			&row.TotalAmount,
			&row.EntryCount,
			&row.SharedCount,
			&row.CompletedAmount,
			&row.PendingAmount,
		); err != nil {
			return nil, fmt.Errorf("error scanning commission summary row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commission summary rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.CommissionSummaryRow{}, nil
	}

	return result, nil
}
