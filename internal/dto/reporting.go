package dto

import (
	"github.com/SscSPs/dealership_commission_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommissionSummaryParams are the query parameters of the team summary.
type CommissionSummaryParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// CommissionSummaryRowResponse is one salesperson's totals.
type CommissionSummaryRowResponse struct {
	UserID          string          `json:"userID"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	EntryCount      int             `json:"entryCount"`
	SharedCount     int             `json:"sharedCount"`
	CompletedAmount decimal.Decimal `json:"completedAmount"`
	PendingAmount   decimal.Decimal `json:"pendingAmount"`
}

// CommissionSummaryResponse is the team comparison report.
type CommissionSummaryResponse struct {
	FromDate   string                         `json:"fromDate"`
	ToDate     string                         `json:"toDate"`
	Rows       []CommissionSummaryRowResponse `json:"rows"`
	GrandTotal decimal.Decimal                `json:"grandTotal"`
}

// ToCommissionSummaryResponse converts the domain report.
func ToCommissionSummaryResponse(summary *domain.CommissionSummary, from, to string) CommissionSummaryResponse {
	resp := CommissionSummaryResponse{
		FromDate:   from,
		ToDate:     to,
		Rows:       make([]CommissionSummaryRowResponse, len(summary.Rows)),
		GrandTotal: summary.GrandTotal,
	}
	for i, row := range summary.Rows {
		resp.Rows[i] = CommissionSummaryRowResponse{
			UserID:          row.UserID,
			TotalAmount:     row.TotalAmount,
			EntryCount:      row.EntryCount,
			SharedCount:     row.SharedCount,
			CompletedAmount: row.CompletedAmount,
			PendingAmount:   row.PendingAmount,
		}
	}
	return resp
}
