package domain

import (
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/shopspring/decimal"
)

// LedgerRole identifies which beneficiary of a sale a ledger entry pays.
type LedgerRole string

const (
	LedgerPrimary LedgerRole = "primary"
	LedgerPartner LedgerRole = "partner"
)

// AmountPrecision is the number of decimal places stored on ledger amounts.
const AmountPrecision int32 = 2

// SharedSplit is the fraction of the total each side of a shared sale receives.
var SharedSplit = decimal.NewFromFloat(0.5)

// LedgerEntry is one beneficiary's share of one sale's commission, with the
// sale fields reporting needs copied onto it.
type LedgerEntry struct {
	EntryID      string                 `json:"entryID"`
	SaleID       string                 `json:"saleID"`
	UserID       string                 `json:"userID"`
	Role         LedgerRole             `json:"role"`
	Amount       decimal.Decimal        `json:"amount"`
	SaleDate     time.Time              `json:"saleDate"`
	StockNumber  string                 `json:"stockNumber"`
	CustomerName string                 `json:"customerName"`
	VehicleType  commission.VehicleType `json:"vehicleType"`
	Status       SaleStatus             `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// LedgerRequest describes the entry set a sale should have.
type LedgerRequest struct {
	SaleID    string
	PrimaryID string
	PartnerID *string
	Total     decimal.Decimal
	IsShared  bool
}

// Shared reports whether the request fans out to a partner row.
func (r LedgerRequest) Shared() bool {
	return r.IsShared && r.PartnerID != nil && *r.PartnerID != ""
}

// LedgerResult is the entry set written for a sale.
type LedgerResult struct {
	SaleID  string        `json:"saleID"`
	Entries []LedgerEntry `json:"entries"`
}

// Sum returns the total of all entry amounts.
func (r *LedgerResult) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range r.Entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// LedgerFilter narrows a ledger listing for reporting.
type LedgerFilter struct {
	UserID *string
	From   *time.Time
	To     *time.Time
}
