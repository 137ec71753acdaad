package domain

import "github.com/shopspring/decimal"

// CommissionSummaryRow aggregates one salesperson's ledger entries over a period.
type CommissionSummaryRow struct {
	UserID          string          `json:"userID"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	EntryCount      int             `json:"entryCount"`
	SharedCount     int             `json:"sharedCount"`
	CompletedAmount decimal.Decimal `json:"completedAmount"`
	PendingAmount   decimal.Decimal `json:"pendingAmount"`
}

// CommissionSummary is the team comparison report.
type CommissionSummary struct {
	Rows       []CommissionSummaryRow `json:"rows"`
	GrandTotal decimal.Decimal        `json:"grandTotal"`
}
