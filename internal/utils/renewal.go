package utils

import (
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
)

// UrgencyBucket classifies how soon a lease needs attention.
type UrgencyBucket string

const (
	UrgencyRenewed  UrgencyBucket = "renewed"
	UrgencyCritical UrgencyBucket = "critical"
	UrgencyUpcoming UrgencyBucket = "upcoming"
	UrgencyYear     UrgencyBucket = "year"
	UrgencySafe     UrgencyBucket = "safe"
)

// DaysLeftSentinel stands in for daysLeft when the lease end date is missing
// or unparseable; it lands the tenant in the safe bucket.
const DaysLeftSentinel = 100000

// RenewalUrgency is the classification result. ValidDate is false when the
// lease end could not be parsed and DaysLeft holds the sentinel.
type RenewalUrgency struct {
	Bucket    UrgencyBucket `json:"bucket"`
	DaysLeft  int           `json:"days_left"`
	ValidDate bool          `json:"valid_date"`
}

// ClassifyRenewalUrgency buckets a lease by days remaining until leaseEnd
// (whole days, strict less-than comparisons, first match wins):
//
//	closed negotiation -> renewed, regardless of days left
//	daysLeft < 30      -> critical
//	daysLeft < 90      -> upcoming
//	daysLeft < 365     -> year
//	otherwise          -> safe
//
// A missing or malformed leaseEnd degrades to the sentinel (safe) and is
// logged, never surfaced as an error; empty-string dates are normal bad data.
func ClassifyRenewalUrgency(leaseEnd string, negotiationStatus domain.NegotiationStatus, today time.Time) RenewalUrgency {
	daysLeft := DaysLeftSentinel
	validDate := false

	if end, err := time.Parse("2006-01-02", leaseEnd); err == nil {
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		daysLeft = int(end.Sub(t).Hours() / 24)
		validDate = true
	} else if leaseEnd != "" {
		logger.Warn("Unparseable lease end date, defaulting to safe", "lease_end", leaseEnd)
	}

	bucket := UrgencySafe
	switch {
	case negotiationStatus == domain.NegotiationStatusClosed:
		bucket = UrgencyRenewed
	case daysLeft < 30:
		bucket = UrgencyCritical
	case daysLeft < 90:
		bucket = UrgencyUpcoming
	case daysLeft < 365:
		bucket = UrgencyYear
	}

	return RenewalUrgency{Bucket: bucket, DaysLeft: daysLeft, ValidDate: validDate}
}
