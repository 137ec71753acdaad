package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table. Commission columns hold the breakdown
// computed when the sale was last written.
type Sale struct {
	SaleID           string          `db:"sale_id"`
	StockNumber      string          `db:"stock_number"`
	CustomerName     string          `db:"customer_name"`
	VehicleType      string          `db:"vehicle_type"`
	SaleDate         time.Time       `db:"sale_date"`
	SalePrice        decimal.Decimal `db:"sale_price"`
	AccessoriesValue decimal.Decimal `db:"accessories_value"`
	WarrantyPrice    decimal.Decimal `db:"warranty_price"`
	WarrantyCost     decimal.Decimal `db:"warranty_cost"`
	ServicePrice     decimal.Decimal `db:"service_price"`
	ServiceCost      decimal.Decimal `db:"service_cost"`
	SpiffAmount      decimal.Decimal `db:"spiff_amount"`
	SalespersonID    string          `db:"salesperson_id"`
	PartnerID        *string         `db:"partner_id"` // Nullable
	IsShared         bool            `db:"is_shared"`
	Status           string          `db:"status"`

	CommissionSale        decimal.Decimal `db:"commission_sale"`
	CommissionAccessories decimal.Decimal `db:"commission_accessories"`
	CommissionWarranty    decimal.Decimal `db:"commission_warranty"`
	CommissionService     decimal.Decimal `db:"commission_service"`
	CommissionSpiff       decimal.Decimal `db:"commission_spiff"`
	CommissionTotal       decimal.Decimal `db:"commission_total"`

	AuditFields
}
