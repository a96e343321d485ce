package service

import (
	"context"
	"strings"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type revenueService struct {
	revenueRepo repository.RevenueRepository
	fieldSvc    CustomFieldService
}

func NewRevenueService(revenueRepo repository.RevenueRepository, fieldSvc CustomFieldService) RevenueService {
	return &revenueService{
		revenueRepo: revenueRepo,
		fieldSvc:    fieldSvc,
	}
}

func (s *revenueService) Create(ctx context.Context, scope domain.Scope, r *domain.Revenue) error {
	if err := s.validate(ctx, scope, r); err != nil {
		return err
	}
	r.OrgID = scope.OrgID
	if r.Status == "" {
		r.Status = domain.LedgerStatusPending
	}
	return s.revenueRepo.Create(ctx, r)
}

func (s *revenueService) Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Revenue, error) {
	return s.revenueRepo.GetByID(ctx, scope.OrgID, id)
}

func (s *revenueService) List(ctx context.Context, scope domain.Scope, status domain.LedgerStatus, page, pageSize int32) ([]domain.Revenue, int32, error) {
	if status != "" && !status.Valid() {
		return nil, 0, domain.Invalid("status", "unknown ledger status")
	}
	return s.revenueRepo.ListByOrg(ctx, scope.OrgID, status, page, pageSize)
}

func (s *revenueService) Update(ctx context.Context, scope domain.Scope, r *domain.Revenue) error {
	if err := s.validate(ctx, scope, r); err != nil {
		return err
	}
	if r.Status != "" && !r.Status.Valid() {
		return domain.Invalid("status", "unknown ledger status")
	}
	r.OrgID = scope.OrgID
	return s.revenueRepo.Update(ctx, r)
}

func (s *revenueService) Delete(ctx context.Context, scope domain.Scope, id int32) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.revenueRepo.Delete(ctx, scope.OrgID, id)
}

func (s *revenueService) validate(ctx context.Context, scope domain.Scope, r *domain.Revenue) error {
	if r.AmountCents < 0 {
		return domain.Invalid("amount_cents", "must not be negative")
	}
	if strings.TrimSpace(r.Date) == "" {
		return domain.Invalid("date", "must not be empty")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return domain.Invalid("date", "want YYYY-MM-DD")
	}
	return s.fieldSvc.ValidateValues(ctx, scope.OrgID, domain.EntityRevenues, r.CustomFields)
}
