package service

import (
	"context"
	"strings"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	fieldSvc    CustomFieldService
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, fieldSvc CustomFieldService) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		fieldSvc:    fieldSvc,
	}
}

func (s *expenseService) Create(ctx context.Context, scope domain.Scope, e *domain.Expense) error {
	if err := s.validate(ctx, scope, e); err != nil {
		return err
	}
	e.OrgID = scope.OrgID
	if e.Status == "" {
		e.Status = domain.LedgerStatusPending
	}
	return s.expenseRepo.Create(ctx, e)
}

func (s *expenseService) Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(ctx, scope.OrgID, id)
}

func (s *expenseService) List(ctx context.Context, scope domain.Scope, status domain.LedgerStatus, page, pageSize int32) ([]domain.Expense, int32, error) {
	if status != "" && !status.Valid() {
		return nil, 0, domain.Invalid("status", "unknown ledger status")
	}
	return s.expenseRepo.ListByOrg(ctx, scope.OrgID, status, page, pageSize)
}

func (s *expenseService) Update(ctx context.Context, scope domain.Scope, e *domain.Expense) error {
	if err := s.validate(ctx, scope, e); err != nil {
		return err
	}
	if e.Status != "" && !e.Status.Valid() {
		return domain.Invalid("status", "unknown ledger status")
	}
	e.OrgID = scope.OrgID
	return s.expenseRepo.Update(ctx, e)
}

func (s *expenseService) Delete(ctx context.Context, scope domain.Scope, id int32) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.expenseRepo.Delete(ctx, scope.OrgID, id)
}

func (s *expenseService) validate(ctx context.Context, scope domain.Scope, e *domain.Expense) error {
	if e.AmountCents < 0 {
		return domain.Invalid("amount_cents", "must not be negative")
	}
	if strings.TrimSpace(e.Date) == "" {
		return domain.Invalid("date", "must not be empty")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return domain.Invalid("date", "want YYYY-MM-DD")
	}
	return s.fieldSvc.ValidateValues(ctx, scope.OrgID, domain.EntityExpenses, e.CustomFields)
}
