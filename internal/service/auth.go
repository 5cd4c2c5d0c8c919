package service

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/logger"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrAccountPending     = errors.New("account is pending approval")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager

	// Revoked refresh tokens, kept until they would have expired anyway.
	// In-memory is enough for a single-instance deployment.
	mu      sync.Mutex
	revoked map[string]struct{}
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		revoked:  make(map[string]struct{}),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", nil, ErrInvalidCredentials
		}
		return "", "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Failed login attempt", "email", email)
		return "", "", nil, ErrInvalidCredentials
	}

	switch user.Status {
	case domain.UserStatusBlocked:
		return "", "", nil, ErrAccountBlocked
	case domain.UserStatusPendingApproval:
		return "", "", nil, ErrAccountPending
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", nil, err
	}

	logger.Info("User logged in", "user_id", user.ID, "role", string(user.Role))
	return access, refresh, user, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	s.mu.Lock()
	_, dead := s.revoked[refresh]
	s.mu.Unlock()
	if dead {
		return "", "", security.ErrInvalidToken
	}

	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", security.ErrInvalidToken
	}
	if user.Status != domain.UserStatusActive {
		return "", "", ErrAccountBlocked
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", err
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	// Rotate: the presented refresh token is single-use.
	s.mu.Lock()
	s.revoked[refresh] = struct{}{}
	s.mu.Unlock()

	return access, newRefresh, nil
}

func (s *authService) Logout(ctx context.Context, refresh string) error {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return err
	}
	if claims.Type != security.TokenTypeRefresh {
		return security.ErrWrongTokenType
	}
	s.mu.Lock()
	s.revoked[refresh] = struct{}{}
	s.mu.Unlock()
	return nil
}
