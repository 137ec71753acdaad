// Package commission computes the per-category commission for a single vehicle sale.
// Every function here is pure: no I/O, no errors, no panics on malformed input.
package commission

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the precision of every monetary amount, matching the
// NUMERIC(12, 2) columns the amounts are stored in.
const AmountPlaces int32 = 2

// VehicleType classifies the unit sold. Accessories are paid differently per type.
type VehicleType string

const (
	VehicleNew  VehicleType = "new"
	VehicleUsed VehicleType = "used"
)

// Category names a line of the commission breakdown.
type Category string

const (
	CategorySale        Category = "sale"
	CategoryAccessories Category = "accessories"
	CategoryWarranty    Category = "warranty"
	CategoryService     Category = "service"
	CategorySpiff       Category = "spiff"
)

var (
	tierTop    = decimal.NewFromInt(30000)
	tierUpper  = decimal.NewFromInt(20000)
	tierMiddle = decimal.NewFromInt(10000)

	payTop    = decimal.NewFromInt(500)
	payUpper  = decimal.NewFromInt(400)
	payMiddle = decimal.NewFromInt(300)
	payLow    = decimal.NewFromInt(200)

	newAccessoriesStep  = decimal.NewFromInt(998)
	usedAccessoriesStep = decimal.NewFromInt(850)
	profitStep          = decimal.NewFromInt(900)
	perIncrement        = decimal.NewFromInt(100)
)

// Input holds the commission-relevant line items of a sale.
// The zero value is valid and yields an all-zero Breakdown.
type Input struct {
	SalePrice        decimal.Decimal
	VehicleType      VehicleType
	AccessoriesValue decimal.Decimal
	WarrantyPrice    decimal.Decimal
	WarrantyCost     decimal.Decimal
	ServicePrice     decimal.Decimal
	ServiceCost      decimal.Decimal
	SpiffAmount      decimal.Decimal
}

// Breakdown is the computed commission per category plus their exact sum.
type Breakdown struct {
	Sale        decimal.Decimal `json:"sale"`
	Accessories decimal.Decimal `json:"accessories"`
	Warranty    decimal.Decimal `json:"warranty"`
	Service     decimal.Decimal `json:"service"`
	Spiff       decimal.Decimal `json:"spiff"`
	Total       decimal.Decimal `json:"total"`
}

// Categories returns the breakdown keyed by category name (Total excluded).
func (b Breakdown) Categories() map[Category]decimal.Decimal {
	return map[Category]decimal.Decimal{
		CategorySale:        b.Sale,
		CategoryAccessories: b.Accessories,
		CategoryWarranty:    b.Warranty,
		CategoryService:     b.Service,
		CategorySpiff:       b.Spiff,
	}
}

// Normalize returns a copy with every amount rounded to cents, negatives
// clamped to zero and the vehicle type lower-cased.
func (in Input) Normalize() Input {
	return Input{
		SalePrice:        NormalizeAmount(in.SalePrice),
		VehicleType:      VehicleType(strings.ToLower(strings.TrimSpace(string(in.VehicleType)))),
		AccessoriesValue: NormalizeAmount(in.AccessoriesValue),
		WarrantyPrice:    NormalizeAmount(in.WarrantyPrice),
		WarrantyCost:     NormalizeAmount(in.WarrantyCost),
		ServicePrice:     NormalizeAmount(in.ServicePrice),
		ServiceCost:      NormalizeAmount(in.ServiceCost),
		SpiffAmount:      NormalizeAmount(in.SpiffAmount),
	}
}

// Calculate computes the commission breakdown for a sale.
func Calculate(in Input) Breakdown {
	in = in.Normalize()

	b := Breakdown{
		Sale:        SaleCommission(in.SalePrice),
		Accessories: AccessoriesCommission(in.VehicleType, in.AccessoriesValue),
		Warranty:    ProfitCommission(in.WarrantyPrice, in.WarrantyCost),
		Service:     ProfitCommission(in.ServicePrice, in.ServiceCost),
		Spiff:       in.SpiffAmount,
	}
	b.Total = b.Sale.Add(b.Accessories).Add(b.Warranty).Add(b.Service).Add(b.Spiff)
	return b
}

// SaleCommission is the base commission step function of the sale price.
// A boundary price belongs to the higher tier.
func SaleCommission(price decimal.Decimal) decimal.Decimal {
	switch {
	case price.GreaterThanOrEqual(tierTop):
		return payTop
	case price.GreaterThanOrEqual(tierUpper):
		return payUpper
	case price.GreaterThanOrEqual(tierMiddle):
		return payMiddle
	case price.IsPositive():
		return payLow
	default:
		return decimal.Zero
	}
}

// AccessoriesCommission pays 100 per full increment of accessories value.
// New vehicles only start counting above the 998 break-even point; used vehicles
// count from zero in increments of 850.
func AccessoriesCommission(vehicleType VehicleType, value decimal.Decimal) decimal.Decimal {
	if vehicleType == VehicleNew {
		if !value.GreaterThan(newAccessoriesStep) {
			return decimal.Zero
		}
		return fullIncrements(value.Sub(newAccessoriesStep), newAccessoriesStep).Mul(perIncrement)
	}
	return fullIncrements(value, usedAccessoriesStep).Mul(perIncrement)
}

// ProfitCommission pays 100 per full 900 of profit. Losses pay nothing.
func ProfitCommission(price, cost decimal.Decimal) decimal.Decimal {
	return fullIncrements(price.Sub(cost), profitStep).Mul(perIncrement)
}

// fullIncrements returns floor(amount/step) for positive amounts and zero otherwise.
func fullIncrements(amount, step decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	q, _ := amount.QuoRem(step, 0)
	return q
}

// NormalizeAmount rounds d half away from zero to AmountPlaces and clamps
// negatives to zero.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	d = d.Round(AmountPlaces)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// AmountFromFloat converts a raw form value to cents. NaN, infinities and negatives become zero.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return NormalizeAmount(decimal.NewFromFloat(f))
}

// AmountFromString parses a raw form value, tolerating "$" and thousands separators.
// The result is rounded to cents; anything unparseable or negative becomes zero.
func AmountFromString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return NormalizeAmount(d)
}
