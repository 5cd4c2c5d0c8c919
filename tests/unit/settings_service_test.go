package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/service"
)

func TestSettingsService_ServiceRatePMValue(t *testing.T) {
	ctx := context.Background()

	t.Run("Create suggests pm value when unset", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := service.NewSettingsService(settingsRepo)

		settingsRepo.On("CreateServiceRate", ctx, mock.MatchedBy(func(r *domain.ServiceRate) bool {
			return r.PMValueCents == 3000 // 10000 - 7000
		})).Return(nil)

		rate := &domain.ServiceRate{
			Name:                "Standard clean",
			Type:                domain.TaskTypeCleaning,
			ServicePriceCents:   10000,
			PartnerPaymentCents: 7000,
		}
		err := svc.CreateServiceRate(ctx, rate, false)
		assert.NoError(t, err)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("Create keeps a caller-typed pm value verbatim", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := service.NewSettingsService(settingsRepo)

		settingsRepo.On("CreateServiceRate", ctx, mock.MatchedBy(func(r *domain.ServiceRate) bool {
			return r.PMValueCents == 5000 // disagrees with the formula, stored anyway
		})).Return(nil)

		rate := &domain.ServiceRate{
			Name:                "Standard clean",
			Type:                domain.TaskTypeCleaning,
			ServicePriceCents:   10000,
			PartnerPaymentCents: 7000,
			PMValueCents:        5000,
		}
		err := svc.CreateServiceRate(ctx, rate, true)
		assert.NoError(t, err)
	})

	t.Run("Update re-suggests only when price fields changed", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := service.NewSettingsService(settingsRepo)

		current := &domain.ServiceRate{
			ID: 1, Name: "Standard clean", Type: domain.TaskTypeCleaning,
			ServicePriceCents: 10000, PartnerPaymentCents: 7000, PMValueCents: 5000,
		}
		settingsRepo.On("GetServiceRate", ctx, int32(1)).Return(current, nil)
		settingsRepo.On("UpdateServiceRate", ctx, mock.MatchedBy(func(r *domain.ServiceRate) bool {
			return r.PMValueCents == 5000 // name-only edit, manual value preserved
		})).Return(nil)

		edit := &domain.ServiceRate{
			ID: 1, Name: "Deep clean", Type: domain.TaskTypeCleaning,
			ServicePriceCents: 10000, PartnerPaymentCents: 7000,
		}
		err := svc.UpdateServiceRate(ctx, edit, false)
		assert.NoError(t, err)
	})

	t.Run("Update with price change recomputes suggestion", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := service.NewSettingsService(settingsRepo)

		current := &domain.ServiceRate{
			ID: 1, ServicePriceCents: 10000, PartnerPaymentCents: 7000, PMValueCents: 5000,
		}
		settingsRepo.On("GetServiceRate", ctx, int32(1)).Return(current, nil)
		settingsRepo.On("UpdateServiceRate", ctx, mock.MatchedBy(func(r *domain.ServiceRate) bool {
			return r.PMValueCents == 4000 // 12000 - 8000
		})).Return(nil)

		edit := &domain.ServiceRate{
			ID: 1, Name: "Standard clean",
			ServicePriceCents: 12000, PartnerPaymentCents: 8000,
		}
		err := svc.UpdateServiceRate(ctx, edit, false)
		assert.NoError(t, err)
	})
}

func TestSettingsService_UpdateFinancialSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Negative margins rejected", func(t *testing.T) {
		svc := service.NewSettingsService(new(MockSettingsRepo))
		err := svc.UpdateFinancialSettings(ctx, &domain.FinancialSettings{LaborMarginPct: -5})
		assert.Error(t, err)
	})

	t.Run("Valid settings stored", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := service.NewSettingsService(settingsRepo)
		settingsRepo.On("UpdateFinancialSettings", ctx, mock.AnythingOfType("*domain.FinancialSettings")).Return(nil)

		err := svc.UpdateFinancialSettings(ctx, &domain.FinancialSettings{LaborMarginPct: 20, MaterialMarginPct: 10})
		assert.NoError(t, err)
	})
}
