package service

import (
	"context"
	"strings"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/logger"
	"fleetdesk-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	emailSvc EmailService
}

func NewUserService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, emailSvc EmailService) UserService {
	return &userService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		emailSvc: emailSvc,
	}
}

// CreateMember adds a staff account to the caller's organization.
// Admin only; is_owner is never set here.
func (s *userService) CreateMember(ctx context.Context, scope domain.Scope, u *domain.User, password string) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	if strings.TrimSpace(u.Email) == "" {
		return domain.Invalid("email", "must not be empty")
	}
	if !u.Role.Valid() {
		return domain.Invalid("role", "must be admin, manager or driver")
	}
	if len(password) < 8 {
		return domain.Invalid("password", "must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.OrgID = scope.OrgID
	u.PasswordHash = string(hash)
	u.IsOwner = false
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return err
	}

	// Invitation email is best effort; the account already exists.
	if org, err := s.orgRepo.GetByID(ctx, scope.OrgID); err == nil {
		if err := s.emailSvc.SendMemberInvitation(ctx, u.Email, u.Name, org.Name, password); err != nil {
			logger.Warn("Failed to send member invitation", "email", u.Email, "error", err)
		}
	}
	return nil
}

func (s *userService) GetMember(ctx context.Context, scope domain.Scope, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, scope.OrgID, id)
}

func (s *userService) ListMembers(ctx context.Context, scope domain.Scope, page, pageSize int32) ([]domain.User, int32, error) {
	return s.userRepo.ListByOrg(ctx, scope.OrgID, page, pageSize)
}

// UpdateMember lets admins manage any member. Non-admins may update
// their own record, but only the profile fields; role, status and
// vehicle assignment stay whatever an admin last set.
func (s *userService) UpdateMember(ctx context.Context, scope domain.Scope, u *domain.User) error {
	if !scope.IsAdmin() {
		if scope.UserID != u.ID {
			return domain.ErrForbidden
		}
		stored, err := s.userRepo.GetByID(ctx, scope.OrgID, u.ID)
		if err != nil {
			return err
		}
		u.Role = stored.Role
		u.Status = stored.Status
		u.AssignedVehicleID = stored.AssignedVehicleID
	}
	if !u.Role.Valid() {
		return domain.Invalid("role", "must be admin, manager or driver")
	}
	u.OrgID = scope.OrgID
	return s.userRepo.Update(ctx, u)
}
