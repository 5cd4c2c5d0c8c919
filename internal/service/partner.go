package service

import (
	"context"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerService(partnerRepo repository.PartnerRepository) PartnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func validatePartner(p *domain.Partner) *ValidationError {
	var fields []FieldError
	if p.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if p.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *partnerService) CreatePartner(ctx context.Context, p *domain.Partner) error {
	if verr := validatePartner(p); verr != nil {
		return verr
	}
	if p.Status == "" {
		p.Status = domain.PartnerStatusActive
	}
	return s.partnerRepo.Create(ctx, p)
}

func (s *partnerService) GetPartner(ctx context.Context, id int32) (*domain.Partner, error) {
	return s.partnerRepo.GetByID(ctx, id)
}

func (s *partnerService) UpdatePartner(ctx context.Context, p *domain.Partner) error {
	if verr := validatePartner(p); verr != nil {
		return verr
	}
	if _, err := s.partnerRepo.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return s.partnerRepo.Update(ctx, p)
}

func (s *partnerService) DeletePartner(ctx context.Context, id int32) error {
	if _, err := s.partnerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.partnerRepo.Delete(ctx, id)
}

func (s *partnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return s.partnerRepo.List(ctx)
}
