package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	"github.com/SscSPs/dealership_commission_app/internal/models"
	"github.com/SscSPs/dealership_commission_app/internal/utils/mapping"
	"github.com/SscSPs/dealership_commission_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `
	entry_id, sale_id, user_id, role, amount, sale_date,
	stock_number, customer_name, vehicle_type, status, created_at`

const insertLedgerEntryQuery = `
	INSERT INTO commission_ledger (` + ledgerColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.CommissionLedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommissionLedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// InsertEntries writes all entries in one transaction.
func (r *PgxLedgerRepository) InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	if err := r.insertInTx(ctx, tx, entries); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// ReplaceEntries deletes the sale's entries and inserts the new set in one
// transaction, so readers never observe a partial set.
func (r *PgxLedgerRepository) ReplaceEntries(ctx context.Context, saleID string, entries []domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM commission_ledger WHERE sale_id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to clear ledger entries for sale "+saleID, err)
	}
	if err := r.insertInTx(ctx, tx, entries); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteEntriesBySaleID removes every entry of a sale.
func (r *PgxLedgerRepository) DeleteEntriesBySaleID(ctx context.Context, saleID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM commission_ledger WHERE sale_id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entries for sale "+saleID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) insertInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(insertLedgerEntryQuery,
			m.EntryID, m.SaleID, m.UserID, m.Role, m.Amount, m.SaleDate,
			m.StockNumber, m.CustomerName, m.VehicleType, m.Status, m.CreatedAt,
		)
	}

	// Close reports the first failing statement.
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: ledger entry for sale %s", apperrors.ErrDuplicate, entries[0].SaleID)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, entries[0].SaleID)
		}
		return apperrors.NewAppError(500, "failed to insert ledger entries for sale "+entries[0].SaleID, err)
	}
	return nil
}

// FindEntriesBySaleID returns a sale's entries, primary first.
func (r *PgxLedgerRepository) FindEntriesBySaleID(ctx context.Context, saleID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM commission_ledger
		WHERE sale_id = $1
		ORDER BY CASE role WHEN 'primary' THEN 0 ELSE 1 END, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for sale "+saleID, err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect ledger rows", err)
	}
	return mapping.ToDomainLedgerEntries(modelEntries), nil
}

// ListEntries lists entries newest sale first using keyset pagination on
// (sale_date, created_at, entry_id).
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	fetchLimit := limit + 1

	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.UserID != nil {
		conditions = append(conditions, "user_id = "+arg(*filter.UserID))
	}
	if filter.From != nil {
		conditions = append(conditions, "sale_date >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "sale_date <= "+arg(*filter.To))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, fmt.Sprintf("(sale_date, created_at, entry_id) < (%s, %s, %s)",
			arg(cursor.SortDate), arg(cursor.CreatedAt), arg(cursor.ID)))
	}

	query := `SELECT ` + ledgerColumns + ` FROM commission_ledger`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sale_date DESC, created_at DESC, entry_id DESC LIMIT " + arg(fetchLimit) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect ledger rows", err)
	}

	page, token := pagination.NextToken(mapping.ToDomainLedgerEntries(modelEntries), limit, func(e domain.LedgerEntry) pagination.Cursor {
		return pagination.Cursor{SortDate: e.SaleDate, CreatedAt: e.CreatedAt, ID: e.EntryID}
	})
	return page, token, nil
}
