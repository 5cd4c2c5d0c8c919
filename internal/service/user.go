package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository"
)

var ErrEmailTaken = errors.New("email is already registered")

type userService struct {
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewUserService(userRepo repository.UserRepository, emailSvc EmailService) UserService {
	return &userService{userRepo: userRepo, emailSvc: emailSvc}
}

func validateNewUser(user *domain.User, password string) *ValidationError {
	var fields []FieldError
	if user.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if user.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "email is required"})
	}
	if len(password) < 8 {
		fields = append(fields, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if user.Role == "" {
		fields = append(fields, FieldError{Field: "role", Message: "role is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User, password string) error {
	if verr := validateNewUser(user, password); verr != nil {
		return verr
	}

	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	// New accounts sit in pending until an operator approves them, except
	// accounts created by the platform owner flow which arrive pre-approved.
	if user.Status == "" {
		user.Status = domain.UserStatusPendingApproval
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("User created", "user_id", user.ID, "role", string(user.Role), "status", string(user.Status))
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	grants, err := s.userRepo.GetPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Permissions = grants
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, name, email, phone, avatarURL string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" && email != user.Email {
		if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		user.Email = email
	}
	if phone != "" {
		user.PhoneNumber = phone
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}

	return s.userRepo.Update(ctx, user)
}

func (s *userService) ApproveUser(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Status == domain.UserStatusActive {
		return nil
	}

	user.Status = domain.UserStatusActive
	user.BlockedOn = nil
	user.BlockedReason = ""
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	_ = s.emailSvc.SendAccountStatusNotification(ctx, user.Email, user.Name, "approved", "")
	logger.Info("User approved", "user_id", userID)
	return nil
}

func (s *userService) BlockUser(ctx context.Context, userID int32, isBlock bool, reason string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if isBlock {
		now := time.Now().Format("2006-01-02")
		user.Status = domain.UserStatusBlocked
		user.BlockedOn = &now
		user.BlockedReason = reason
	} else {
		user.Status = domain.UserStatusActive
		user.BlockedOn = nil
		user.BlockedReason = ""
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	status := "unblocked"
	if isBlock {
		status = "blocked"
	}
	_ = s.emailSvc.SendAccountStatusNotification(ctx, user.Email, user.Name, status, reason)
	logger.Info("User block status changed", "user_id", userID, "blocked", isBlock)
	return nil
}

// SetPermissions replaces the whole grant list. Duplicate resources are
// merged so the stored list keeps one entry per resource.
func (s *userService) SetPermissions(ctx context.Context, userID int32, grants []domain.PermissionGrant) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	merged := make(map[domain.Resource]map[domain.Action]struct{})
	order := make([]domain.Resource, 0, len(grants))
	for _, g := range grants {
		if !g.Resource.Valid() {
			return &ValidationError{Fields: []FieldError{
				{Field: "resource", Message: fmt.Sprintf("unknown resource %q", g.Resource)},
			}}
		}
		if _, ok := merged[g.Resource]; !ok {
			merged[g.Resource] = make(map[domain.Action]struct{})
			order = append(order, g.Resource)
		}
		for _, a := range g.Actions {
			if !a.Valid() {
				return &ValidationError{Fields: []FieldError{
					{Field: "actions", Message: fmt.Sprintf("unknown action %q", a)},
				}}
			}
			merged[g.Resource][a] = struct{}{}
		}
	}

	deduped := make([]domain.PermissionGrant, 0, len(order))
	for _, res := range order {
		actions := make([]domain.Action, 0, len(merged[res]))
		for _, a := range domain.AllActions() {
			if _, ok := merged[res][a]; ok {
				actions = append(actions, a)
			}
		}
		deduped = append(deduped, domain.PermissionGrant{Resource: res, Actions: actions})
	}

	return s.userRepo.SetPermissions(ctx, userID, deduped)
}

func (s *userService) ListUsers(ctx context.Context, role string, page, pageSize int32) ([]domain.User, int32, error) {
	return s.userRepo.List(ctx, role, page, pageSize)
}

func (s *userService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	return s.userRepo.Search(ctx, query)
}
