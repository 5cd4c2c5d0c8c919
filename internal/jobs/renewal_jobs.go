package jobs

import (
	"context"

	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/service"
	"propdesk-backend/internal/utils"
)

// ScanLeaseRenewals walks the renewals board and emails property owners
// whose leases have entered the critical window.
func (jr *JobRunner) ScanLeaseRenewals() {
	jr.runWithRecovery("ScanLeaseRenewals", func() {
		ctx := context.Background()

		renewals, err := jr.services.Renewal.ListRenewals(ctx, service.RenewalFilter{
			Bucket: utils.UrgencyCritical,
		})
		if err != nil {
			logger.Error("Failed to list critical renewals", "error", err)
			return
		}

		sent := 0
		for _, r := range renewals {
			owner, err := jr.store.UserRepository.GetByID(ctx, r.OwnerID)
			if err != nil {
				logger.Error("Failed to load owner for renewal reminder",
					"owner_id", r.OwnerID,
					"tenant_id", r.Tenant.ID,
					"error", err)
				continue
			}

			err = jr.services.Email.SendRenewalReminder(ctx,
				owner.Email, owner.Name,
				r.PropertyName, r.Tenant.Name,
				r.Tenant.LeaseEnd, r.Urgency.DaysLeft)
			if err != nil {
				logger.Error("Failed to send renewal reminder",
					"owner_id", r.OwnerID,
					"tenant_id", r.Tenant.ID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Renewal reminders sent", "critical", len(renewals), "sent", sent)
	})
}
