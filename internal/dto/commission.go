package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommissionPreviewRequest carries draft sale line items for a live commission preview.
type CommissionPreviewRequest struct {
	SalePrice        Amount `json:"salePrice"`
	VehicleType      string `json:"vehicleType" binding:"omitempty,vehicletype"`
	AccessoriesValue Amount `json:"accessoriesValue"`
	WarrantyPrice    Amount `json:"warrantyPrice"`
	WarrantyCost     Amount `json:"warrantyCost"`
	ServicePrice     Amount `json:"servicePrice"`
	ServiceCost      Amount `json:"serviceCost"`
	SpiffAmount      Amount `json:"spiffAmount"`
}

// ToInput converts the request to calculator input.
func (r CommissionPreviewRequest) ToInput() commission.Input {
	return commission.Input{
		SalePrice:        r.SalePrice.Decimal,
		VehicleType:      commission.VehicleType(strings.ToLower(strings.TrimSpace(r.VehicleType))),
		AccessoriesValue: r.AccessoriesValue.Decimal,
		WarrantyPrice:    r.WarrantyPrice.Decimal,
		WarrantyCost:     r.WarrantyCost.Decimal,
		ServicePrice:     r.ServicePrice.Decimal,
		ServiceCost:      r.ServiceCost.Decimal,
		SpiffAmount:      r.SpiffAmount.Decimal,
	}
}

// CommissionBreakdownResponse is the per-category commission and its total.
type CommissionBreakdownResponse struct {
	Sale        decimal.Decimal            `json:"sale"`
	Accessories decimal.Decimal            `json:"accessories"`
	Warranty    decimal.Decimal            `json:"warranty"`
	Service     decimal.Decimal            `json:"service"`
	Spiff       decimal.Decimal            `json:"spiff"`
	Total       decimal.Decimal            `json:"total"`
	Categories  map[string]decimal.Decimal `json:"categories"`
}

// ToCommissionBreakdownResponse converts a calculator breakdown.
func ToCommissionBreakdownResponse(b commission.Breakdown) CommissionBreakdownResponse {
	categories := make(map[string]decimal.Decimal, 5)
	for c, amount := range b.Categories() {
		categories[string(c)] = amount
	}
	return CommissionBreakdownResponse{
		Sale:        b.Sale,
		Accessories: b.Accessories,
		Warranty:    b.Warranty,
		Service:     b.Service,
		Spiff:       b.Spiff,
		Total:       b.Total,
		Categories:  categories,
	}
}

// LedgerEntryResponse is one commission ledger row.
type LedgerEntryResponse struct {
	EntryID      string            `json:"entryID"`
	SaleID       string            `json:"saleID"`
	UserID       string            `json:"userID"`
	Role         domain.LedgerRole `json:"role"`
	Amount       decimal.Decimal   `json:"amount"`
	SaleDate     string            `json:"saleDate"`
	StockNumber  string            `json:"stockNumber"`
	CustomerName string            `json:"customerName"`
	VehicleType  string            `json:"vehicleType"`
	Status       domain.SaleStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain ledger entry.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:      e.EntryID,
		SaleID:       e.SaleID,
		UserID:       e.UserID,
		Role:         e.Role,
		Amount:       e.Amount,
		SaleDate:     e.SaleDate.Format(DateLayout),
		StockNumber:  e.StockNumber,
		CustomerName: e.CustomerName,
		VehicleType:  string(e.VehicleType),
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of ledger entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToLedgerEntryResponse(e)
	}
	return out
}

// SaleCommissionsResponse lists the ledger rows of one sale.
type SaleCommissionsResponse struct {
	SaleID  string                `json:"saleID"`
	Entries []LedgerEntryResponse `json:"entries"`
	Total   decimal.Decimal       `json:"total"`
}

// ToSaleCommissionsResponse builds the per-sale ledger view.
func ToSaleCommissionsResponse(saleID string, entries []domain.LedgerEntry) SaleCommissionsResponse {
	result := domain.LedgerResult{SaleID: saleID, Entries: entries}
	return SaleCommissionsResponse{
		SaleID:  saleID,
		Entries: ToLedgerEntryResponses(entries),
		Total:   result.Sum(),
	}
}

// ListLedgerEntriesParams are the query parameters of the ledger listing.
type ListLedgerEntriesParams struct {
	UserID    *string `form:"userID"`
	From      *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerEntriesResponse is a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}
