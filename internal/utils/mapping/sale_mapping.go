package mapping

import (
	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/SscSPs/dealership_commission_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:                d.SaleID,
		StockNumber:           d.StockNumber,
		CustomerName:          d.CustomerName,
		VehicleType:           string(d.VehicleType),
		SaleDate:              d.SaleDate,
		SalePrice:             d.SalePrice,
		AccessoriesValue:      d.AccessoriesValue,
		WarrantyPrice:         d.WarrantyPrice,
		WarrantyCost:          d.WarrantyCost,
		ServicePrice:          d.ServicePrice,
		ServiceCost:           d.ServiceCost,
		SpiffAmount:           d.SpiffAmount,
		SalespersonID:         d.SalespersonID,
		PartnerID:             d.PartnerID,
		IsShared:              d.IsShared,
		Status:                string(d.Status),
		CommissionSale:        d.Commission.Sale,
		CommissionAccessories: d.Commission.Accessories,
		CommissionWarranty:    d.Commission.Warranty,
		CommissionService:     d.Commission.Service,
		CommissionSpiff:       d.Commission.Spiff,
		CommissionTotal:       d.Commission.Total,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:           m.SaleID,
		StockNumber:      m.StockNumber,
		CustomerName:     m.CustomerName,
		VehicleType:      commission.VehicleType(m.VehicleType),
		SaleDate:         m.SaleDate,
		SalePrice:        m.SalePrice,
		AccessoriesValue: m.AccessoriesValue,
		WarrantyPrice:    m.WarrantyPrice,
		WarrantyCost:     m.WarrantyCost,
		ServicePrice:     m.ServicePrice,
		ServiceCost:      m.ServiceCost,
		SpiffAmount:      m.SpiffAmount,
		SalespersonID:    m.SalespersonID,
		PartnerID:        m.PartnerID,
		IsShared:         m.IsShared,
		Status:           domain.SaleStatus(m.Status),
		Commission: commission.Breakdown{
			Sale:        m.CommissionSale,
			Accessories: m.CommissionAccessories,
			Warranty:    m.CommissionWarranty,
			Service:     m.CommissionService,
			Spiff:       m.CommissionSpiff,
			Total:       m.CommissionTotal,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSales converts a slice of model Sales
func ToDomainSales(ms []models.Sale) []domain.Sale {
	out := make([]domain.Sale, len(ms))
	for i, m := range ms {
		out[i] = ToDomainSale(m)
	}
	return out
}
