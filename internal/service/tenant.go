package service

import (
	"context"
	"time"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type tenantService struct {
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
}

func NewTenantService(tenantRepo repository.TenantRepository, propertyRepo repository.PropertyRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo, propertyRepo: propertyRepo}
}

func validateTenant(t *domain.Tenant) *ValidationError {
	var fields []FieldError
	if t.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if t.PropertyID == 0 {
		fields = append(fields, FieldError{Field: "property_id", Message: "property is required"})
	}
	if t.LeaseStart != "" {
		if _, err := time.Parse("2006-01-02", t.LeaseStart); err != nil {
			fields = append(fields, FieldError{Field: "lease_start", Message: "lease start must be yyyy-mm-dd"})
		}
	}
	if t.LeaseEnd != "" {
		if _, err := time.Parse("2006-01-02", t.LeaseEnd); err != nil {
			fields = append(fields, FieldError{Field: "lease_end", Message: "lease end must be yyyy-mm-dd"})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *tenantService) CreateTenant(ctx context.Context, t *domain.Tenant) error {
	if verr := validateTenant(t); verr != nil {
		return verr
	}
	if _, err := s.propertyRepo.GetByID(ctx, t.PropertyID); err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = domain.TenantStatusProspect
	}
	return s.tenantRepo.Create(ctx, t)
}

func (s *tenantService) GetTenant(ctx context.Context, id int32) (*domain.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *tenantService) UpdateTenant(ctx context.Context, t *domain.Tenant) error {
	if verr := validateTenant(t); verr != nil {
		return verr
	}
	current, err := s.tenantRepo.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	// Negotiation state is owned by the renewals flow.
	t.NegotiationStatus = current.NegotiationStatus
	return s.tenantRepo.Update(ctx, t)
}

func (s *tenantService) ListTenants(ctx context.Context, status string, page, pageSize int32) ([]domain.Tenant, int32, error) {
	return s.tenantRepo.List(ctx, status, page, pageSize)
}

func (s *tenantService) ListDocuments(ctx context.Context, tenantID int32) ([]domain.Document, error) {
	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		return nil, err
	}
	return s.tenantRepo.ListDocuments(ctx, tenantID)
}
