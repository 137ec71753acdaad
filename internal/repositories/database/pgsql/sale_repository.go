package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_commission_app/internal/core/ports/repositories"
	"github.com/SscSPs/dealership_commission_app/internal/models"
	"github.com/SscSPs/dealership_commission_app/internal/utils/mapping"
	"github.com/SscSPs/dealership_commission_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `
	sale_id, stock_number, customer_name, vehicle_type, sale_date,
	sale_price, accessories_value, warranty_price, warranty_cost,
	service_price, service_cost, spiff_amount,
	salesperson_id, partner_id, is_shared, status,
	commission_sale, commission_accessories, commission_warranty,
	commission_service, commission_spiff, commission_total,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale inserts a new sale.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SaleID, m.StockNumber, m.CustomerName, m.VehicleType, m.SaleDate,
		m.SalePrice, m.AccessoriesValue, m.WarrantyPrice, m.WarrantyCost,
		m.ServicePrice, m.ServiceCost, m.SpiffAmount,
		m.SalespersonID, m.PartnerID, m.IsShared, m.Status,
		m.CommissionSale, m.CommissionAccessories, m.CommissionWarranty,
		m.CommissionService, m.CommissionSpiff, m.CommissionTotal,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: stock number %s", apperrors.ErrDuplicate, m.StockNumber)
		case pgCheckViolation:
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		return apperrors.NewAppError(500, "failed to insert sale "+m.SaleID, err)
	}
	return nil
}

// UpdateSale overwrites the mutable columns of an existing sale.
func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `
		UPDATE sales SET
			customer_name = $2, vehicle_type = $3, sale_date = $4,
			sale_price = $5, accessories_value = $6, warranty_price = $7, warranty_cost = $8,
			service_price = $9, service_cost = $10, spiff_amount = $11,
			salesperson_id = $12, partner_id = $13, is_shared = $14, status = $15,
			commission_sale = $16, commission_accessories = $17, commission_warranty = $18,
			commission_service = $19, commission_spiff = $20, commission_total = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE sale_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SaleID, m.CustomerName, m.VehicleType, m.SaleDate,
		m.SalePrice, m.AccessoriesValue, m.WarrantyPrice, m.WarrantyCost,
		m.ServicePrice, m.ServiceCost, m.SpiffAmount,
		m.SalespersonID, m.PartnerID, m.IsShared, m.Status,
		m.CommissionSale, m.CommissionAccessories, m.CommissionWarranty,
		m.CommissionService, m.CommissionSpiff, m.CommissionTotal,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		return apperrors.NewAppError(500, "failed to update sale "+m.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, m.SaleID)
	}
	return nil
}

// DeleteSale removes a sale. Ledger rows cascade.
func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sale "+saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
	}
	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sale "+saleID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan sale "+saleID, err)
	}
	sale := mapping.ToDomainSale(m)
	return &sale, nil
}

// FindSaleSnapshot reads only the columns copied onto ledger rows.
func (r *PgxSaleRepository) FindSaleSnapshot(ctx context.Context, saleID string) (*domain.SaleSnapshot, error) {
	query := `
		SELECT sale_id, sale_date, stock_number, customer_name, vehicle_type,
		       status, salesperson_id, partner_id
		FROM sales
		WHERE sale_id = $1;
	`
	var (
		s           domain.SaleSnapshot
		vehicleType string
		status      string
	)
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&s.SaleID, &s.SaleDate, &s.StockNumber, &s.CustomerName, &vehicleType,
		&status, &s.SalespersonID, &s.PartnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, apperrors.NewAppError(500, "failed to read snapshot of sale "+saleID, err)
	}
	s.VehicleType = commission.VehicleType(vehicleType)
	s.Status = domain.SaleStatus(status)
	return &s, nil
}

// ListSales lists sales newest first using keyset pagination on
// (sale_date, created_at, sale_id).
func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.InvolvingUserID != nil {
		p := arg(*filter.InvolvingUserID)
		conditions = append(conditions, "(salesperson_id = "+p+" OR partner_id = "+p+")")
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+arg(string(*filter.Status)))
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
		conditions = append(conditions, fmt.Sprintf("(sale_date, created_at, sale_id) < (%s, %s, %s)",
			arg(cursor.SortDate), arg(cursor.CreatedAt), arg(cursor.ID)))
	}

	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sale_date DESC, created_at DESC, sale_id DESC LIMIT " + arg(fetchLimit) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	modelSales, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Sale])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to collect sale rows", err)
	}

	page, token := pagination.NextToken(mapping.ToDomainSales(modelSales), limit, func(s domain.Sale) pagination.Cursor {
		return pagination.Cursor{SortDate: s.SaleDate, CreatedAt: s.CreatedAt, ID: s.SaleID}
	})
	return page, token, nil
}
