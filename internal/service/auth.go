package service

import (
	"context"
	"errors"
	"strings"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
	"fleetdesk-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		tokens:   tokens,
	}
}

// Register creates the organization and its owner admin. This is the
// only path that sets is_owner.
func (s *authService) Register(ctx context.Context, orgName, name, email, password string) (*domain.User, string, string, error) {
	orgName = strings.TrimSpace(orgName)
	if orgName == "" {
		return nil, "", "", domain.Invalid("org_name", "must not be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, "", "", domain.Invalid("email", "must not be empty")
	}
	if len(password) < 8 {
		return nil, "", "", domain.Invalid("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	org := &domain.Organization{Name: orgName}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		OrgID:        org.ID,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsOwner:      true,
		Status:       domain.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if user.Status != domain.UserStatusActive {
		return nil, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	return user, access, refresh, err
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.ErrUnauthorized
	}

	// Re-read the user so revoked accounts and role changes take effect
	// on refresh.
	user, err := s.userRepo.GetByID(ctx, claims.OrgID, claims.UserID)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	if user.Status != domain.UserStatusActive {
		return "", "", domain.ErrUnauthorized
	}

	access, refresh, err := s.issueTokens(user)
	return access, refresh, err
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.OrgID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.OrgID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
