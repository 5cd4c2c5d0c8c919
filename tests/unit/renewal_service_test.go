package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
	"propdesk-backend/internal/utils"
)

var renewalToday = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return renewalToday }

func candidate(tenantID int32, name, leaseEnd string, negotiation domain.NegotiationStatus, ownerID int32, ownerName, propertyName string) domain.RenewalCandidate {
	return domain.RenewalCandidate{
		Tenant: domain.Tenant{
			ID:                tenantID,
			Name:              name,
			LeaseEnd:          leaseEnd,
			Status:            domain.TenantStatusActive,
			NegotiationStatus: negotiation,
		},
		PropertyID:   tenantID * 10,
		PropertyName: propertyName,
		ProfileType:  domain.ProfileTypeLongTerm,
		OwnerID:      ownerID,
		OwnerName:    ownerName,
	}
}

func TestRenewalService_ListRenewals(t *testing.T) {
	ctx := context.Background()

	candidates := []domain.RenewalCandidate{
		candidate(1, "Ana", "2026-06-11", "", 100, "Olga", "Sea View"),      // 10 days -> critical
		candidate(2, "Bruno", "2026-08-15", "", 100, "Olga", "Hilltop"),    // 75 days -> upcoming
		candidate(3, "Carla", "2027-01-20", "", 200, "Pavel", "Downtown"),  // 233 days -> year
		candidate(4, "Dério", "2028-01-01", "", 200, "Pavel", "Riverside"), // far out -> safe
		candidate(5, "Eva", "2026-06-05", domain.NegotiationStatusClosed, 100, "Olga", "Garden Flat"),
		candidate(6, "Filip", "not-a-date", "", 200, "Pavel", "Attic"),
	}

	t.Run("Classifies and sorts most urgent first", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		tenantRepo.On("ListRenewalCandidates", ctx).Return(candidates, nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		renewals, err := svc.ListRenewals(ctx, service.RenewalFilter{})
		assert.NoError(t, err)
		assert.Len(t, renewals, 6)

		byTenant := make(map[int32]utils.RenewalUrgency)
		for _, r := range renewals {
			byTenant[r.Tenant.ID] = r.Urgency
		}
		assert.Equal(t, utils.UrgencyCritical, byTenant[1].Bucket)
		assert.Equal(t, 10, byTenant[1].DaysLeft)
		assert.Equal(t, utils.UrgencyUpcoming, byTenant[2].Bucket)
		assert.Equal(t, utils.UrgencyYear, byTenant[3].Bucket)
		assert.Equal(t, utils.UrgencySafe, byTenant[4].Bucket)
		assert.Equal(t, utils.UrgencyRenewed, byTenant[5].Bucket)
		assert.Equal(t, utils.UrgencySafe, byTenant[6].Bucket)
		assert.Equal(t, utils.DaysLeftSentinel, byTenant[6].DaysLeft)
		assert.False(t, byTenant[6].ValidDate)

		// Ascending days left; the unparseable date sinks to the bottom.
		for i := 1; i < len(renewals); i++ {
			assert.LessOrEqual(t, renewals[i-1].Urgency.DaysLeft, renewals[i].Urgency.DaysLeft)
		}
		assert.Equal(t, int32(6), renewals[len(renewals)-1].Tenant.ID)
	})

	t.Run("Filters compose with AND", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		tenantRepo.On("ListRenewalCandidates", ctx).Return(candidates, nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		renewals, err := svc.ListRenewals(ctx, service.RenewalFilter{
			Bucket:  utils.UrgencyCritical,
			OwnerID: 100,
		})
		assert.NoError(t, err)
		assert.Len(t, renewals, 1)
		assert.Equal(t, int32(1), renewals[0].Tenant.ID)
	})

	t.Run("Text filter matches tenant, property and owner names", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		tenantRepo.On("ListRenewalCandidates", ctx).Return(candidates, nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		renewals, err := svc.ListRenewals(ctx, service.RenewalFilter{Query: "pavel"})
		assert.NoError(t, err)
		assert.Len(t, renewals, 3)
	})

	t.Run("Lease window filter", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		tenantRepo.On("ListRenewalCandidates", ctx).Return(candidates, nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		renewals, err := svc.ListRenewals(ctx, service.RenewalFilter{
			LeaseFrom: "2026-06-01",
			LeaseTo:   "2026-12-31",
		})
		assert.NoError(t, err)
		assert.Len(t, renewals, 3) // Ana, Bruno, Eva
	})
}

func TestRenewalService_UpdateNegotiationStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid status appends a log entry", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		tenantRepo.On("UpdateNegotiationStatus", ctx, int32(1), domain.NegotiationStatusOwnerContacted,
			mock.MatchedBy(func(l *domain.NegotiationLog) bool {
				return l.TenantID == 1 && l.Status == domain.NegotiationStatusOwnerContacted && l.CreatedBy == 9
			})).Return(nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		err := svc.UpdateNegotiationStatus(ctx, 1, domain.NegotiationStatusOwnerContacted, "called owner", 9)
		assert.NoError(t, err)
		tenantRepo.AssertExpectations(t)
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		err := svc.UpdateNegotiationStatus(ctx, 1, "haggling", "", 9)
		assert.Error(t, err)
		verr, ok := err.(*service.ValidationError)
		assert.True(t, ok)
		assert.Equal(t, "negotiation_status", verr.Fields[0].Field)
		tenantRepo.AssertNotCalled(t, "UpdateNegotiationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Closing without new lease terms rejected", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		err := svc.UpdateNegotiationStatus(ctx, 1, domain.NegotiationStatusClosed, "done", 9)
		assert.Error(t, err)
		verr, ok := err.(*service.ValidationError)
		assert.True(t, ok)
		assert.Equal(t, "negotiation_status", verr.Fields[0].Field)
		tenantRepo.AssertNotCalled(t, "UpdateNegotiationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRenewalService_CloseNegotiation(t *testing.T) {
	ctx := context.Background()

	input := service.CloseNegotiationInput{
		NewValueCents:    150000,
		NewStart:         "2026-07-01",
		NewEnd:           "2027-06-30",
		ContractDocName:  "lease-2026.pdf",
		ContractFilePath: "tenants/1/lease-2026.pdf",
		ContractMimeType: "application/pdf",
		ActorID:          9,
	}

	t.Run("New terms win over whatever the tenant carried", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		existing := &domain.Tenant{
			ID: 1, LeaseStart: "2025-07-01", LeaseEnd: "2026-06-30",
			RentValueCents: 120000, Status: domain.TenantStatusActive,
		}
		closed := &domain.Tenant{
			ID: 1, LeaseStart: "2026-07-01", LeaseEnd: "2027-06-30",
			RentValueCents:    150000,
			Status:            domain.TenantStatusActive,
			NegotiationStatus: domain.NegotiationStatusClosed,
		}
		tenantRepo.On("GetByID", ctx, int32(1)).Return(existing, nil)
		tenantRepo.On("CloseNegotiation", ctx, int32(1), int32(150000), "2026-07-01", "2027-06-30",
			mock.MatchedBy(func(d *domain.Document) bool {
				return d.TenantID == 1 && d.Name == "lease-2026.pdf" && d.ID != ""
			}),
			mock.MatchedBy(func(l *domain.NegotiationLog) bool {
				return l.Status == domain.NegotiationStatusClosed && l.CreatedBy == 9
			})).Return(closed, nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		tenant, err := svc.CloseNegotiation(ctx, 1, input)
		assert.NoError(t, err)
		assert.Equal(t, int32(150000), tenant.RentValueCents)
		assert.Equal(t, "2027-06-30", tenant.LeaseEnd)
		assert.Equal(t, domain.NegotiationStatusClosed, tenant.NegotiationStatus)
		tenantRepo.AssertExpectations(t)
	})

	t.Run("Invalid input never reaches the store", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		bad := input
		bad.NewValueCents = 0
		bad.NewEnd = "2026-06-01" // before start
		bad.ContractDocName = ""

		_, err := svc.CloseNegotiation(ctx, 1, bad)
		assert.Error(t, err)
		verr, ok := err.(*service.ValidationError)
		assert.True(t, ok)
		assert.Len(t, verr.Fields, 3)
		tenantRepo.AssertNotCalled(t, "CloseNegotiation",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Closed negotiation classifies as renewed afterwards", func(t *testing.T) {
		tenantRepo := new(MockTenantRepo)
		tenantRepo.On("ListRenewalCandidates", ctx).Return([]domain.RenewalCandidate{
			candidate(1, "Ana", "2026-06-05", domain.NegotiationStatusClosed, 100, "Olga", "Sea View"),
		}, nil)
		svc := service.NewRenewalService(tenantRepo, fixedNow)

		renewals, err := svc.ListRenewals(ctx, service.RenewalFilter{})
		assert.NoError(t, err)
		assert.Len(t, renewals, 1)
		// Renewed wins even though the lease end is inside the critical window.
		assert.Equal(t, utils.UrgencyRenewed, renewals[0].Urgency.Bucket)
	})
}

func TestRenewalService_GetNegotiationHistory(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepo)
	tenantRepo.On("GetByID", ctx, int32(1)).Return(&domain.Tenant{ID: 1}, nil)
	tenantRepo.On("ListNegotiationLogs", ctx, int32(1)).Return([]domain.NegotiationLog{
		{ID: 1, TenantID: 1, Status: domain.NegotiationStatusNegotiating},
		{ID: 2, TenantID: 1, Status: domain.NegotiationStatusClosed},
	}, nil)
	tenantRepo.On("ListDocuments", ctx, int32(1)).Return([]domain.Document{
		{ID: "abc", TenantID: 1, Name: "lease-2026.pdf"},
	}, nil)
	svc := service.NewRenewalService(tenantRepo, fixedNow)

	logs, docs, err := svc.GetNegotiationHistory(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Len(t, docs, 1)
}
