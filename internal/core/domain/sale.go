package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale.
type SaleStatus string

const (
	SalePending   SaleStatus = "pending"
	SaleCompleted SaleStatus = "completed"
)

// IsValid reports whether s is a known status.
func (s SaleStatus) IsValid() bool {
	return s == SalePending || s == SaleCompleted
}

var (
	ErrStockNumberMissing  = errors.New("stock number is required")
	ErrSalespersonMissing  = errors.New("salesperson is required")
	ErrPartnerMissing      = errors.New("shared sale requires a partner")
	ErrPartnerIsPrimary    = errors.New("partner must differ from the primary salesperson")
	ErrPartnerNotShared    = errors.New("partner is only allowed on shared sales")
	ErrInvalidVehicleType  = errors.New("vehicle type must be new or used")
	ErrInvalidSaleStatus   = errors.New("status must be pending or completed")
	ErrNegativeSaleAmount  = errors.New("sale amounts must not be negative")
	ErrCustomerNameMissing = errors.New("customer name is required")
)

// Sale is one vehicle transaction and the commission last computed for it.
type Sale struct {
	SaleID           string                 `json:"saleID"`
	StockNumber      string                 `json:"stockNumber"`
	CustomerName     string                 `json:"customerName"`
	VehicleType      commission.VehicleType `json:"vehicleType"`
	SaleDate         time.Time              `json:"saleDate"`
	SalePrice        decimal.Decimal        `json:"salePrice"`
	AccessoriesValue decimal.Decimal        `json:"accessoriesValue"`
	WarrantyPrice    decimal.Decimal        `json:"warrantyPrice"`
	WarrantyCost     decimal.Decimal        `json:"warrantyCost"`
	ServicePrice     decimal.Decimal        `json:"servicePrice"`
	ServiceCost      decimal.Decimal        `json:"serviceCost"`
	SpiffAmount      decimal.Decimal        `json:"spiffAmount"`
	SalespersonID    string                 `json:"salespersonID"`
	PartnerID        *string                `json:"partnerID,omitempty"`
	IsShared         bool                   `json:"isShared"`
	Status           SaleStatus             `json:"status"`
	Commission       commission.Breakdown   `json:"commission"`
	AuditFields
}

// NormalizeStockNumber trims and upper-cases a stock number.
func NormalizeStockNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CommissionInput extracts the calculator input from the sale's line items.
func (s *Sale) CommissionInput() commission.Input {
	return commission.Input{
		SalePrice:        s.SalePrice,
		VehicleType:      s.VehicleType,
		AccessoriesValue: s.AccessoriesValue,
		WarrantyPrice:    s.WarrantyPrice,
		WarrantyCost:     s.WarrantyCost,
		ServicePrice:     s.ServicePrice,
		ServiceCost:      s.ServiceCost,
		SpiffAmount:      s.SpiffAmount,
	}
}

// Recalculate refreshes Commission from the current line items.
func (s *Sale) Recalculate() commission.Breakdown {
	s.Commission = commission.Calculate(s.CommissionInput())
	return s.Commission
}

// Validate checks the sale's structural invariants, including the
// shared/partner rule.
func (s *Sale) Validate() error {
	if s.StockNumber == "" {
		return ErrStockNumberMissing
	}
	if strings.TrimSpace(s.CustomerName) == "" {
		return ErrCustomerNameMissing
	}
	if s.SalespersonID == "" {
		return ErrSalespersonMissing
	}
	if s.VehicleType != commission.VehicleNew && s.VehicleType != commission.VehicleUsed {
		return ErrInvalidVehicleType
	}
	if !s.Status.IsValid() {
		return ErrInvalidSaleStatus
	}
	for _, amount := range []decimal.Decimal{
		s.SalePrice, s.AccessoriesValue, s.WarrantyPrice, s.WarrantyCost,
		s.ServicePrice, s.ServiceCost, s.SpiffAmount,
	} {
		if amount.IsNegative() {
			return ErrNegativeSaleAmount
		}
	}

	if s.IsShared {
		if s.PartnerID == nil || *s.PartnerID == "" {
			return ErrPartnerMissing
		}
		if *s.PartnerID == s.SalespersonID {
			return ErrPartnerIsPrimary
		}
	} else if s.PartnerID != nil {
		return ErrPartnerNotShared
	}
	return nil
}

// Involves reports whether userID is the primary salesperson or the partner.
func (s *Sale) Involves(userID string) bool {
	if s.SalespersonID == userID {
		return true
	}
	return s.PartnerID != nil && *s.PartnerID == userID
}

// SaleSnapshot is the subset of a sale copied onto its ledger rows.
type SaleSnapshot struct {
	SaleID        string                 `json:"saleID"`
	SaleDate      time.Time              `json:"saleDate"`
	StockNumber   string                 `json:"stockNumber"`
	CustomerName  string                 `json:"customerName"`
	VehicleType   commission.VehicleType `json:"vehicleType"`
	Status        SaleStatus             `json:"status"`
	SalespersonID string                 `json:"salespersonID"`
	PartnerID     *string                `json:"partnerID,omitempty"`
}

// SaleFilter narrows a sale listing.
type SaleFilter struct {
	// InvolvingUserID restricts to sales where the user is primary or partner.
	InvolvingUserID *string
	Status          *SaleStatus
	From            *time.Time
	To              *time.Time
}

// SaleResult is the outcome of a sale write. The sale is persisted even when
// CommissionErr is set; the caller is warned and may retry through an update.
type SaleResult struct {
	Sale          *Sale
	Ledger        *LedgerResult
	CommissionErr error
}

// CommissionRecorded reports whether the ledger write succeeded.
func (r *SaleResult) CommissionRecorded() bool {
	return r.CommissionErr == nil
}
