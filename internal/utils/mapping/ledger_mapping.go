package mapping

import (
	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/SscSPs/dealership_commission_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:      d.EntryID,
		SaleID:       d.SaleID,
		UserID:       d.UserID,
		Role:         string(d.Role),
		Amount:       d.Amount,
		SaleDate:     d.SaleDate,
		StockNumber:  d.StockNumber,
		CustomerName: d.CustomerName,
		VehicleType:  string(d.VehicleType),
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:      m.EntryID,
		SaleID:       m.SaleID,
		UserID:       m.UserID,
		Role:         domain.LedgerRole(m.Role),
		Amount:       m.Amount,
		SaleDate:     m.SaleDate,
		StockNumber:  m.StockNumber,
		CustomerName: m.CustomerName,
		VehicleType:  commission.VehicleType(m.VehicleType),
		Status:       domain.SaleStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainLedgerEntries converts a slice of model LedgerEntries
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
