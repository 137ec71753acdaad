package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/apperrors"
	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of sale dates.
const DateLayout = "2006-01-02"

// ParseDate parses a wire date, wrapping failures as validation errors.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return t, nil
}

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	StockNumber      string  `json:"stockNumber" binding:"required,max=32"`
	CustomerName     string  `json:"customerName" binding:"required,max=200"`
	VehicleType      string  `json:"vehicleType" binding:"required,vehicletype"`
	SaleDate         string  `json:"saleDate" binding:"required,datetime=2006-01-02"`
	SalePrice        Amount  `json:"salePrice"`
	AccessoriesValue Amount  `json:"accessoriesValue"`
	WarrantyPrice    Amount  `json:"warrantyPrice"`
	WarrantyCost     Amount  `json:"warrantyCost"`
	ServicePrice     Amount  `json:"servicePrice"`
	ServiceCost      Amount  `json:"serviceCost"`
	SpiffAmount      Amount  `json:"spiffAmount"`
	SalespersonID    *string `json:"salespersonID"` // Optional: defaults to the caller
	PartnerID        *string `json:"partnerID"`
	IsShared         bool    `json:"isShared"`
	Status           *string `json:"status" binding:"omitempty,oneof=pending completed"`
}

// UpdateSaleRequest defines the fields that may change on a sale.
// Pointers distinguish fields that were not provided from zero values.
type UpdateSaleRequest struct {
	CustomerName     *string `json:"customerName" binding:"omitempty,max=200"`
	VehicleType      *string `json:"vehicleType" binding:"omitempty,vehicletype"`
	SaleDate         *string `json:"saleDate" binding:"omitempty,datetime=2006-01-02"`
	SalePrice        *Amount `json:"salePrice"`
	AccessoriesValue *Amount `json:"accessoriesValue"`
	WarrantyPrice    *Amount `json:"warrantyPrice"`
	WarrantyCost     *Amount `json:"warrantyCost"`
	ServicePrice     *Amount `json:"servicePrice"`
	ServiceCost      *Amount `json:"serviceCost"`
	SpiffAmount      *Amount `json:"spiffAmount"`
	SalespersonID    *string `json:"salespersonID"`
	PartnerID        *string `json:"partnerID"`
	IsShared         *bool   `json:"isShared"`
	Status           *string `json:"status" binding:"omitempty,oneof=pending completed"`
}

// ApplyTo copies the provided fields onto sale. Turning sharing off clears the partner.
func (r UpdateSaleRequest) ApplyTo(sale *domain.Sale) error {
	if r.CustomerName != nil {
		sale.CustomerName = strings.TrimSpace(*r.CustomerName)
	}
	if r.VehicleType != nil {
		sale.VehicleType = commission.VehicleType(strings.ToLower(strings.TrimSpace(*r.VehicleType)))
	}
	if r.SaleDate != nil {
		d, err := ParseDate("saleDate", *r.SaleDate)
		if err != nil {
			return err
		}
		sale.SaleDate = d
	}
	if r.SalePrice != nil {
		sale.SalePrice = r.SalePrice.Decimal
	}
	if r.AccessoriesValue != nil {
		sale.AccessoriesValue = r.AccessoriesValue.Decimal
	}
	if r.WarrantyPrice != nil {
		sale.WarrantyPrice = r.WarrantyPrice.Decimal
	}
	if r.WarrantyCost != nil {
		sale.WarrantyCost = r.WarrantyCost.Decimal
	}
	if r.ServicePrice != nil {
		sale.ServicePrice = r.ServicePrice.Decimal
	}
	if r.ServiceCost != nil {
		sale.ServiceCost = r.ServiceCost.Decimal
	}
	if r.SpiffAmount != nil {
		sale.SpiffAmount = r.SpiffAmount.Decimal
	}
	if r.SalespersonID != nil {
		sale.SalespersonID = strings.TrimSpace(*r.SalespersonID)
	}
	if r.IsShared != nil {
		sale.IsShared = *r.IsShared
	}
	if r.PartnerID != nil {
		partner := strings.TrimSpace(*r.PartnerID)
		if partner == "" {
			sale.PartnerID = nil
		} else {
			sale.PartnerID = &partner
		}
	}
	if !sale.IsShared {
		sale.PartnerID = nil
	}
	if r.Status != nil {
		sale.Status = domain.SaleStatus(*r.Status)
	}
	return nil
}

// ListSalesParams are the query parameters of the sale listing.
type ListSalesParams struct {
	SalespersonID *string `form:"salespersonID"`
	Status        *string `form:"status" binding:"omitempty,oneof=pending completed"`
	From          *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit         int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken     *string `form:"nextToken"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID           string                      `json:"saleID"`
	StockNumber      string                      `json:"stockNumber"`
	CustomerName     string                      `json:"customerName"`
	VehicleType      string                      `json:"vehicleType"`
	SaleDate         string                      `json:"saleDate"`
	SalePrice        decimal.Decimal             `json:"salePrice"`
	AccessoriesValue decimal.Decimal             `json:"accessoriesValue"`
	WarrantyPrice    decimal.Decimal             `json:"warrantyPrice"`
	WarrantyCost     decimal.Decimal             `json:"warrantyCost"`
	ServicePrice     decimal.Decimal             `json:"servicePrice"`
	ServiceCost      decimal.Decimal             `json:"serviceCost"`
	SpiffAmount      decimal.Decimal             `json:"spiffAmount"`
	SalespersonID    string                      `json:"salespersonID"`
	PartnerID        *string                     `json:"partnerID,omitempty"`
	IsShared         bool                        `json:"isShared"`
	Status           domain.SaleStatus           `json:"status"`
	Commission       CommissionBreakdownResponse `json:"commission"`
	CreatedAt        time.Time                   `json:"createdAt"`
	CreatedBy        string                      `json:"createdBy"`
	LastUpdatedAt    time.Time                   `json:"lastUpdatedAt"`
	LastUpdatedBy    string                      `json:"lastUpdatedBy"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:           s.SaleID,
		StockNumber:      s.StockNumber,
		CustomerName:     s.CustomerName,
		VehicleType:      string(s.VehicleType),
		SaleDate:         s.SaleDate.Format(DateLayout),
		SalePrice:        s.SalePrice,
		AccessoriesValue: s.AccessoriesValue,
		WarrantyPrice:    s.WarrantyPrice,
		WarrantyCost:     s.WarrantyCost,
		ServicePrice:     s.ServicePrice,
		ServiceCost:      s.ServiceCost,
		SpiffAmount:      s.SpiffAmount,
		SalespersonID:    s.SalespersonID,
		PartnerID:        s.PartnerID,
		IsShared:         s.IsShared,
		Status:           s.Status,
		Commission:       ToCommissionBreakdownResponse(s.Commission),
		CreatedAt:        s.CreatedAt,
		CreatedBy:        s.CreatedBy,
		LastUpdatedAt:    s.LastUpdatedAt,
		LastUpdatedBy:    s.LastUpdatedBy,
	}
}

// Commission status values reported on sale writes.
const (
	CommissionStatusRecorded = "recorded"
	CommissionStatusFailed   = "failed"
)

// SaleWriteResponse is returned by create and update. A failed commission
// status means the sale was saved but its ledger rows were not.
type SaleWriteResponse struct {
	Sale             SaleResponse          `json:"sale"`
	CommissionStatus string                `json:"commissionStatus"`
	Entries          []LedgerEntryResponse `json:"entries"`
	Warning          string                `json:"warning,omitempty"`
}

// ToSaleWriteResponse converts a service result.
func ToSaleWriteResponse(r *domain.SaleResult) SaleWriteResponse {
	resp := SaleWriteResponse{
		Sale:             ToSaleResponse(r.Sale),
		CommissionStatus: CommissionStatusRecorded,
		Entries:          []LedgerEntryResponse{},
	}
	if r.Ledger != nil {
		resp.Entries = ToLedgerEntryResponses(r.Ledger.Entries)
	}
	if !r.CommissionRecorded() {
		resp.CommissionStatus = CommissionStatusFailed
		resp.Warning = "Sale saved but commission records could not be written; save the sale again to retry."
	}
	return resp
}

// ListSalesResponse is a page of sales.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListSalesResponse converts a page of sales.
func ToListSalesResponse(sales []domain.Sale, nextToken *string) ListSalesResponse {
	resp := ListSalesResponse{
		Sales:     make([]SaleResponse, len(sales)),
		NextToken: nextToken,
	}
	for i := range sales {
		resp.Sales[i] = ToSaleResponse(&sales[i])
	}
	return resp
}
