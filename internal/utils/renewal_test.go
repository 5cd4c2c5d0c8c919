package utils

import (
	"testing"
	"time"

	"propdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC) // time-of-day must not matter

func endIn(days int) string {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days).Format("2006-01-02")
}

func TestClassifyRenewalUrgency_Buckets(t *testing.T) {
	tests := []struct {
		daysLeft int
		expected UrgencyBucket
	}{
		{0, UrgencyCritical},
		{10, UrgencyCritical},
		{29, UrgencyCritical},
		{30, UrgencyUpcoming},
		{89, UrgencyUpcoming},
		{90, UrgencyYear},
		{364, UrgencyYear},
		{365, UrgencySafe},
		{1000, UrgencySafe},
		{-5, UrgencyCritical}, // already past the lease end
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			res := ClassifyRenewalUrgency(endIn(tt.daysLeft), domain.NegotiationStatusNegotiating, today)
			assert.Equal(t, tt.expected, res.Bucket, "daysLeft=%d", tt.daysLeft)
			assert.Equal(t, tt.daysLeft, res.DaysLeft)
			assert.True(t, res.ValidDate)
		})
	}
}

func TestClassifyRenewalUrgency_ClosedAlwaysRenewed(t *testing.T) {
	for _, days := range []int{5, 50, 500} {
		res := ClassifyRenewalUrgency(endIn(days), domain.NegotiationStatusClosed, today)
		assert.Equal(t, UrgencyRenewed, res.Bucket, "daysLeft=%d", days)
	}

	t.Run("Closed with unparseable date still renewed", func(t *testing.T) {
		res := ClassifyRenewalUrgency("not-a-date", domain.NegotiationStatusClosed, today)
		assert.Equal(t, UrgencyRenewed, res.Bucket)
		assert.False(t, res.ValidDate)
	})
}

func TestClassifyRenewalUrgency_BadDatesDegradeToSafe(t *testing.T) {
	for _, leaseEnd := range []string{"", "2026-13-40", "soon", "03/01/2026"} {
		res := ClassifyRenewalUrgency(leaseEnd, domain.NegotiationStatusNegotiating, today)
		assert.Equal(t, UrgencySafe, res.Bucket, "leaseEnd=%q", leaseEnd)
		assert.Equal(t, DaysLeftSentinel, res.DaysLeft)
		assert.False(t, res.ValidDate)
	}
}

func TestClassifyRenewalUrgency_UnsetStatusDefaultsToNegotiating(t *testing.T) {
	// Ten days out with no negotiation status recorded yet.
	res := ClassifyRenewalUrgency(endIn(10), domain.NegotiationStatus(""), today)
	assert.Equal(t, UrgencyCritical, res.Bucket)
	assert.Equal(t, 10, res.DaysLeft)
}
