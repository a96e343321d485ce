package service

import (
	"context"
	"testing"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("0123456789abcdef0123456789abcdef", 15*time.Minute, time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesOrgAndOwner", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		orgRepo := new(MockOrgRepo)
		svc := NewAuthService(userRepo, orgRepo, testTokenManager())

		orgRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Organization")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Organization).ID = 1
			}).Return(nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			}).Return(nil)

		user, access, refresh, err := svc.Register(ctx, "Acme Fleet", "Pat Owner", "owner@example.com", "hunter22pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, int32(1), user.OrgID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.True(t, user.IsOwner)
		assert.Equal(t, domain.UserStatusActive, user.Status)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22pass")))
		orgRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockOrgRepo), testTokenManager())

		_, _, _, err := svc.Register(ctx, "Acme Fleet", "Pat", "owner@example.com", "short")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22pass"), bcrypt.DefaultCost)
	active := &domain.User{
		ID: 7, OrgID: 1, Email: "owner@example.com",
		PasswordHash: string(hash), Role: domain.RoleAdmin,
		Status: domain.UserStatusActive,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockOrgRepo), testTokenManager())
		userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(active, nil)

		user, access, refresh, err := svc.Login(ctx, "owner@example.com", "hunter22pass")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockOrgRepo), testTokenManager())
		userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(active, nil)

		_, _, _, err := svc.Login(ctx, "owner@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("InactiveUser", func(t *testing.T) {
		inactive := *active
		inactive.Status = domain.UserStatusInactive

		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockOrgRepo), testTokenManager())
		userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(&inactive, nil)

		_, _, _, err := svc.Login(ctx, "owner@example.com", "hunter22pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockOrgRepo), testTokenManager())
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "whatever123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := testTokenManager()
	active := &domain.User{
		ID: 7, OrgID: 1, Email: "owner@example.com",
		Role: domain.RoleAdmin, Status: domain.UserStatusActive,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, new(MockOrgRepo), tokens)
		userRepo.On("GetByID", mock.Anything, int32(1), int32(7)).Return(active, nil)

		refreshToken, err := tokens.GenerateRefreshToken(7, 1, "owner@example.com")
		assert.NoError(t, err)

		access, refresh, err := svc.Refresh(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("RejectsAccessTokenAsRefresh", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepo), new(MockOrgRepo), tokens)

		accessToken, err := tokens.GenerateAccessToken(7, 1, "owner@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		_, _, err = svc.Refresh(ctx, accessToken)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
