package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the commission_ledger table.
type LedgerEntry struct {
	EntryID      string          `db:"entry_id"`
	SaleID       string          `db:"sale_id"`
	UserID       string          `db:"user_id"`
	Role         string          `db:"role"`
	Amount       decimal.Decimal `db:"amount"`
	SaleDate     time.Time       `db:"sale_date"`
	StockNumber  string          `db:"stock_number"`
	CustomerName string          `db:"customer_name"`
	VehicleType  string          `db:"vehicle_type"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
}
