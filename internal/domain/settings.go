package domain

// FinancialSettings are the global margins applied when a task's billable
// amount is derived. They are read at edit time, never cached on the task.
type FinancialSettings struct {
	LaborMarginPct           float64 `json:"labor_margin_pct"`
	MaterialMarginPct        float64 `json:"material_margin_pct"`
	PriceReviewThresholdPct  float64 `json:"price_review_threshold_pct"`
	UpdatedOn                string  `json:"updated_on"`
}

// ServiceRate is a pricing template for partner work. PMValueCents defaults
// to service price minus partner payment when either of those two fields is
// edited; a value supplied by the user is kept as-is.
type ServiceRate struct {
	ID                  int32    `json:"id"`
	Name                string   `json:"name"`
	Type                TaskType `json:"type"`
	ServicePriceCents   int32    `json:"service_price_cents"`
	PartnerPaymentCents int32    `json:"partner_payment_cents"`
	PMValueCents        int32    `json:"pm_value_cents"`
	CreatedOn           string   `json:"created_on"`
	UpdatedOn           string   `json:"updated_on"`
}
