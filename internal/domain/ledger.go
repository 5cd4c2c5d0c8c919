package domain

import "time"

type EntryType string

const (
	EntryTypeRentIncome    EntryType = "RENT_INCOME"
	EntryTypeTaskBilling   EntryType = "TASK_BILLING"
	EntryTypePartnerPayout EntryType = "PARTNER_PAYOUT"
	EntryTypeAdjustment    EntryType = "ADJUSTMENT"
)

type LedgerEntry struct {
	ID          int32     `json:"id"`
	PropertyID  *int32    `json:"property_id,omitempty"`
	TenantID    *int32    `json:"tenant_id,omitempty"`
	TaskID      *int32    `json:"task_id,omitempty"`
	AmountCents int32     `json:"amount_cents"` // positive for income, negative for expense
	Type        EntryType `json:"type"`
	Description string    `json:"description"`
	EntryDate   string    `json:"entry_date"` // yyyy-mm-dd
	CreatedOn   time.Time `json:"created_on"`
}

type LedgerSummary struct {
	IncomeCents  int32 `json:"income_cents"`
	ExpenseCents int32 `json:"expense_cents"`
	NetCents     int32 `json:"net_cents"`
}
