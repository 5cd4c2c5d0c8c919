package service

import (
	"context"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/utils"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetFinancialSettings(ctx context.Context) (*domain.FinancialSettings, error) {
	return s.settingsRepo.GetFinancialSettings(ctx)
}

func (s *settingsService) UpdateFinancialSettings(ctx context.Context, settings *domain.FinancialSettings) error {
	var fields []FieldError
	if settings.LaborMarginPct < 0 {
		fields = append(fields, FieldError{Field: "labor_margin_pct", Message: "labor margin cannot be negative"})
	}
	if settings.MaterialMarginPct < 0 {
		fields = append(fields, FieldError{Field: "material_margin_pct", Message: "material margin cannot be negative"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return s.settingsRepo.UpdateFinancialSettings(ctx, settings)
}

func (s *settingsService) ListServiceRates(ctx context.Context) ([]domain.ServiceRate, error) {
	return s.settingsRepo.ListServiceRates(ctx)
}

func validateServiceRate(rate *domain.ServiceRate) *ValidationError {
	var fields []FieldError
	if rate.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if rate.ServicePriceCents < 0 {
		fields = append(fields, FieldError{Field: "service_price_cents", Message: "service price cannot be negative"})
	}
	if rate.PartnerPaymentCents < 0 {
		fields = append(fields, FieldError{Field: "partner_payment_cents", Message: "partner payment cannot be negative"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// The pm value is a one-way suggestion: when the caller did not set it, it
// is filled from price minus payment. A value the caller typed is stored
// verbatim even if it disagrees with the formula.
func (s *settingsService) CreateServiceRate(ctx context.Context, rate *domain.ServiceRate, pmValueSet bool) error {
	if verr := validateServiceRate(rate); verr != nil {
		return verr
	}
	if !pmValueSet {
		rate.PMValueCents = utils.SuggestPMValueCents(rate.ServicePriceCents, rate.PartnerPaymentCents)
	}
	return s.settingsRepo.CreateServiceRate(ctx, rate)
}

func (s *settingsService) UpdateServiceRate(ctx context.Context, rate *domain.ServiceRate, pmValueSet bool) error {
	if verr := validateServiceRate(rate); verr != nil {
		return verr
	}
	current, err := s.settingsRepo.GetServiceRate(ctx, rate.ID)
	if err != nil {
		return err
	}
	if !pmValueSet {
		if rate.ServicePriceCents != current.ServicePriceCents || rate.PartnerPaymentCents != current.PartnerPaymentCents {
			rate.PMValueCents = utils.SuggestPMValueCents(rate.ServicePriceCents, rate.PartnerPaymentCents)
		} else {
			rate.PMValueCents = current.PMValueCents
		}
	}
	return s.settingsRepo.UpdateServiceRate(ctx, rate)
}
