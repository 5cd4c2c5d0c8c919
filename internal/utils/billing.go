package utils

import "math"

// DeriveBillableCents computes the billable amount of a task from its labor
// and material costs and the global margin percentages:
//
//	billable = labor*(1+laborMarginPct/100) + material*(1+materialMarginPct/100)
//
// Callers run this when the cost fields are edited and store the result on
// the task. Margins are read from the financial settings at that moment, so
// later margin changes do not rewrite already-saved amounts.
func DeriveBillableCents(laborCostCents, materialCostCents int32, laborMarginPct, materialMarginPct float64) int32 {
	labor := float64(laborCostCents) * (1 + laborMarginPct/100)
	material := float64(materialCostCents) * (1 + materialMarginPct/100)
	return int32(math.Round(labor + material))
}

// SuggestPMValueCents returns the default property-management cut of a
// service-rate template: service price minus the partner payment. The
// derivation is one-way; it fires only when the two source fields are edited
// and a user-supplied pm value is never recomputed.
func SuggestPMValueCents(servicePriceCents, partnerPaymentCents int32) int32 {
	return servicePriceCents - partnerPaymentCents
}
