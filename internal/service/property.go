package service

import (
	"context"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	condoRepo    repository.CondominiumRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, condoRepo repository.CondominiumRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, condoRepo: condoRepo}
}

func validateProperty(p *domain.Property) *ValidationError {
	var fields []FieldError
	if p.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if p.OwnerID == 0 {
		fields = append(fields, FieldError{Field: "owner_id", Message: "owner is required"})
	}
	if p.ProfileType != domain.ProfileTypeLongTerm && p.ProfileType != domain.ProfileTypeShortTerm {
		fields = append(fields, FieldError{Field: "profile_type", Message: "profile type must be long_term or short_term"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *propertyService) CreateProperty(ctx context.Context, p *domain.Property) error {
	if verr := validateProperty(p); verr != nil {
		return verr
	}
	if p.Status == "" {
		p.Status = domain.PropertyStatusActive
	}
	return s.propertyRepo.Create(ctx, p)
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) UpdateProperty(ctx context.Context, p *domain.Property) error {
	if verr := validateProperty(p); verr != nil {
		return verr
	}
	if _, err := s.propertyRepo.GetByID(ctx, p.ID); err != nil {
		return err
	}
	return s.propertyRepo.Update(ctx, p)
}

func (s *propertyService) DeleteProperty(ctx context.Context, id int32) error {
	if _, err := s.propertyRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.propertyRepo.Delete(ctx, id)
}

// profileTypeAllowed reports whether the user's account may see properties of
// the given profile type. An empty AllowedProfileTypes list means no
// restriction.
func profileTypeAllowed(user *domain.User, pt domain.ProfileType) bool {
	if user == nil || len(user.AllowedProfileTypes) == 0 {
		return true
	}
	for _, allowed := range user.AllowedProfileTypes {
		if allowed == pt {
			return true
		}
	}
	return false
}

// ListProperties scopes the result to the caller. Property owners only see
// their own portfolio; everyone else sees the full list, optionally narrowed
// by profile type. Accounts restricted by AllowedProfileTypes never see
// properties outside those types.
func (s *propertyService) ListProperties(ctx context.Context, user *domain.User, profileType string, page, pageSize int32) ([]domain.Property, int32, error) {
	if profileType != "" && !profileTypeAllowed(user, domain.ProfileType(profileType)) {
		return []domain.Property{}, 0, nil
	}
	if user != nil && user.Role == domain.UserRolePropertyOwner {
		owned, err := s.propertyRepo.ListByOwner(ctx, user.ID)
		if err != nil {
			return nil, 0, err
		}
		filtered := owned[:0]
		for _, p := range owned {
			if profileType != "" && string(p.ProfileType) != profileType {
				continue
			}
			if !profileTypeAllowed(user, p.ProfileType) {
				continue
			}
			filtered = append(filtered, p)
		}
		return filtered, int32(len(filtered)), nil
	}
	// A single-type restriction narrows the query itself so pagination
	// totals stay honest.
	if profileType == "" && user != nil && len(user.AllowedProfileTypes) == 1 {
		profileType = string(user.AllowedProfileTypes[0])
	}
	return s.propertyRepo.List(ctx, profileType, page, pageSize)
}

func (s *propertyService) CreateCondominium(ctx context.Context, c *domain.Condominium) error {
	if c.Name == "" {
		return &ValidationError{Fields: []FieldError{{Field: "name", Message: "name is required"}}}
	}
	return s.condoRepo.Create(ctx, c)
}

func (s *propertyService) GetCondominium(ctx context.Context, id int32) (*domain.Condominium, error) {
	return s.condoRepo.GetByID(ctx, id)
}

func (s *propertyService) UpdateCondominium(ctx context.Context, c *domain.Condominium) error {
	if c.Name == "" {
		return &ValidationError{Fields: []FieldError{{Field: "name", Message: "name is required"}}}
	}
	if _, err := s.condoRepo.GetByID(ctx, c.ID); err != nil {
		return err
	}
	return s.condoRepo.Update(ctx, c)
}

func (s *propertyService) DeleteCondominium(ctx context.Context, id int32) error {
	if _, err := s.condoRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.condoRepo.Delete(ctx, id)
}

func (s *propertyService) ListCondominiums(ctx context.Context) ([]domain.Condominium, error) {
	return s.condoRepo.List(ctx)
}
