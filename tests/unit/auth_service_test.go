package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"propdesk-backend/internal/domain"
	"propdesk-backend/internal/repository"
	"propdesk-backend/internal/security"
	"propdesk-backend/internal/service"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func newAuthService(userRepo *MockUserRepo) service.AuthService {
	tokens := security.NewTokenManager("test-secret", 15, 60)
	return service.NewAuthService(userRepo, tokens)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success returns both tokens", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ana@test.com").Return(&domain.User{
			ID: 1, Email: "ana@test.com", PasswordHash: hashOf(t, "s3cret-pass"),
			Role: domain.UserRoleInternalUser, Status: domain.UserStatusActive,
		}, nil)
		svc := newAuthService(userRepo)

		access, refresh, user, err := svc.Login(ctx, "ana@test.com", "s3cret-pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, int32(1), user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ana@test.com").Return(&domain.User{
			ID: 1, PasswordHash: hashOf(t, "s3cret-pass"), Status: domain.UserStatusActive,
		}, nil)
		svc := newAuthService(userRepo)

		_, _, _, err := svc.Login(ctx, "ana@test.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown email maps to invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, repository.ErrNotFound)
		svc := newAuthService(userRepo)

		_, _, _, err := svc.Login(ctx, "ghost@test.com", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Blocked and pending accounts cannot log in", func(t *testing.T) {
		cases := []struct {
			status  domain.UserStatus
			wantErr error
		}{
			{domain.UserStatusBlocked, service.ErrAccountBlocked},
			{domain.UserStatusPendingApproval, service.ErrAccountPending},
		}
		for _, tc := range cases {
			userRepo := new(MockUserRepo)
			userRepo.On("GetByEmail", ctx, "ana@test.com").Return(&domain.User{
				ID: 1, PasswordHash: hashOf(t, "s3cret-pass"), Status: tc.status,
			}, nil)
			svc := newAuthService(userRepo)

			_, _, _, err := svc.Login(ctx, "ana@test.com", "s3cret-pass")
			assert.ErrorIs(t, err, tc.wantErr)
		}
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotates and revokes the presented token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		user := &domain.User{
			ID: 1, Email: "ana@test.com", PasswordHash: hashOf(t, "s3cret-pass"),
			Role: domain.UserRoleInternalUser, Status: domain.UserStatusActive,
		}
		userRepo.On("GetByEmail", ctx, "ana@test.com").Return(user, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)
		svc := newAuthService(userRepo)

		_, refresh, _, err := svc.Login(ctx, "ana@test.com", "s3cret-pass")
		assert.NoError(t, err)

		access2, refresh2, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access2)
		assert.NotEmpty(t, refresh2)

		// The old refresh token is single-use.
		_, _, err = svc.RefreshToken(ctx, refresh)
		assert.Error(t, err)
	})

	t.Run("Access token rejected as refresh", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		user := &domain.User{
			ID: 1, Email: "ana@test.com", PasswordHash: hashOf(t, "s3cret-pass"),
			Role: domain.UserRoleInternalUser, Status: domain.UserStatusActive,
		}
		userRepo.On("GetByEmail", ctx, "ana@test.com").Return(user, nil)
		svc := newAuthService(userRepo)

		access, _, _, err := svc.Login(ctx, "ana@test.com", "s3cret-pass")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
