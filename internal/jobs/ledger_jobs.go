package jobs

import (
	"context"
	"fmt"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
)

// PostMonthlyRentIncome posts one rent income entry per active tenant for
// the current month. Runs on the first of the month; the guard query keeps
// a re-run from double-posting.
func (jr *JobRunner) PostMonthlyRentIncome() {
	jr.runWithRecovery("PostMonthlyRentIncome", func() {
		ctx := context.Background()
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

		query := `
			SELECT t.id, t.property_id, t.name, t.rent_value_cents
			FROM tenants t
			WHERE t.status = 'active'
			  AND t.rent_value_cents > 0
			  AND NOT EXISTS (
			      SELECT 1 FROM ledger_entries le
			      WHERE le.tenant_id = t.id
			        AND le.type = 'RENT_INCOME'
			        AND le.entry_date = $1
			  )
		`

		rows, err := jr.db.QueryContext(ctx, query, monthStart)
		if err != nil {
			logger.Error("Failed to query tenants for rent posting", "error", err)
			return
		}
		defer rows.Close()

		type rentRow struct {
			TenantID   int32
			PropertyID int32
			Name       string
			RentCents  int32
		}
		var due []rentRow
		for rows.Next() {
			var r rentRow
			if err := rows.Scan(&r.TenantID, &r.PropertyID, &r.Name, &r.RentCents); err != nil {
				logger.Error("Failed to scan tenant rent row", "error", err)
				continue
			}
			due = append(due, r)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating tenant rent rows", "error", err)
			return
		}

		posted := 0
		for _, r := range due {
			tenantID := r.TenantID
			propertyID := r.PropertyID
			entry := &domain.LedgerEntry{
				PropertyID:  &propertyID,
				TenantID:    &tenantID,
				AmountCents: r.RentCents,
				Type:        domain.EntryTypeRentIncome,
				Description: fmt.Sprintf("Monthly rent, %s", r.Name),
				EntryDate:   monthStart,
			}
			if err := jr.services.Ledger.CreateEntry(ctx, entry); err != nil {
				logger.Error("Failed to post rent income",
					"tenant_id", r.TenantID, "error", err)
				continue
			}
			posted++
		}

		logger.Info("Posted monthly rent income", "due", len(due), "posted", posted)
	})
}
