package service

import (
	"context"
	"strings"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	fieldSvc     CustomFieldService
}

func NewActivityService(activityRepo repository.ActivityRepository, fieldSvc CustomFieldService) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		fieldSvc:     fieldSvc,
	}
}

// Create persists the activity and, when action is revenue or expense,
// derives the matching ledger row from the activity's amount, date and
// description. Both inserts commit or roll back together.
func (s *activityService) Create(ctx context.Context, scope domain.Scope, a *domain.Activity, action domain.LedgerAction) (*domain.Revenue, *domain.Expense, error) {
	if err := s.validate(ctx, scope, a); err != nil {
		return nil, nil, err
	}
	if !action.Valid() {
		return nil, nil, domain.Invalid("ledger_action", "must be none, revenue or expense")
	}
	if action != domain.LedgerActionNone && a.AmountCents == nil {
		return nil, nil, domain.Invalid("amount_cents", "required when a ledger entry is requested")
	}
	a.OrgID = scope.OrgID

	var rev *domain.Revenue
	var exp *domain.Expense
	switch action {
	case domain.LedgerActionRevenue:
		rev = &domain.Revenue{
			OrgID:        a.OrgID,
			AmountCents:  *a.AmountCents,
			Description:  a.Description,
			Date:         a.Date,
			Status:       domain.LedgerStatusPending,
			CustomFields: domain.CustomFields{},
		}
	case domain.LedgerActionExpense:
		exp = &domain.Expense{
			OrgID:        a.OrgID,
			AmountCents:  *a.AmountCents,
			Description:  a.Description,
			Date:         a.Date,
			Status:       domain.LedgerStatusPending,
			CustomFields: domain.CustomFields{},
		}
	}

	if err := s.activityRepo.CreateWithLedger(ctx, a, rev, exp); err != nil {
		return nil, nil, err
	}
	return rev, exp, nil
}

func (s *activityService) Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Activity, error) {
	return s.activityRepo.GetByID(ctx, scope.OrgID, id)
}

func (s *activityService) List(ctx context.Context, scope domain.Scope, filter repository.ActivityFilter, page, pageSize int32) ([]domain.Activity, int32, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, 0, domain.Invalid("type", "unknown activity type")
	}
	return s.activityRepo.ListByOrg(ctx, scope.OrgID, filter, page, pageSize)
}

// Update never touches ledger rows; an entry created alongside the
// activity keeps its own life cycle.
func (s *activityService) Update(ctx context.Context, scope domain.Scope, a *domain.Activity) error {
	if err := s.validate(ctx, scope, a); err != nil {
		return err
	}
	a.OrgID = scope.OrgID
	return s.activityRepo.Update(ctx, a)
}

func (s *activityService) Delete(ctx context.Context, scope domain.Scope, id int32) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.activityRepo.Delete(ctx, scope.OrgID, id)
}

func (s *activityService) validate(ctx context.Context, scope domain.Scope, a *domain.Activity) error {
	if !a.Type.Valid() {
		return domain.Invalid("type", "unknown activity type")
	}
	if strings.TrimSpace(a.Date) == "" {
		return domain.Invalid("date", "must not be empty")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return domain.Invalid("date", "want YYYY-MM-DD")
	}
	if a.AmountCents != nil && *a.AmountCents < 0 {
		return domain.Invalid("amount_cents", "must not be negative")
	}
	if a.Recurring {
		if a.Frequency == nil {
			return domain.Invalid("frequency", "required for recurring activities")
		}
		if !a.Frequency.Valid() {
			return domain.Invalid("frequency", "must be daily, weekly or monthly")
		}
	} else if a.Frequency != nil {
		return domain.Invalid("frequency", "only allowed for recurring activities")
	}
	return s.fieldSvc.ValidateValues(ctx, scope.OrgID, domain.EntityActivities, a.CustomFields)
}
