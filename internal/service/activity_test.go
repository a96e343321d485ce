package service

import (
	"context"
	"testing"

	"fleetdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testScope() domain.Scope {
	return domain.Scope{UserID: 7, OrgID: 1, Role: domain.RoleAdmin}
}

func int32Ptr(v int32) *int32 { return &v }
func int64Ptr(v int64) *int64 { return &v }

func noFields() *MockCustomFieldRepo {
	fieldRepo := new(MockCustomFieldRepo)
	fieldRepo.On("ListByEntity", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.CustomFieldDefinition{}, nil)
	return fieldRepo
}

func TestActivityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("RevenueAction", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := NewActivityService(repo, NewCustomFieldService(noFields()))

		a := &domain.Activity{
			VehicleID:   int32Ptr(3),
			Type:        domain.ActivityTypePayment,
			Description: "Weekly rent",
			AmountCents: int64Ptr(25000),
			Date:        "2026-08-20",
		}

		repo.On("CreateWithLedger", mock.Anything, a, mock.AnythingOfType("*domain.Revenue"), (*domain.Expense)(nil)).
			Return(nil)

		rev, exp, err := svc.Create(ctx, testScope(), a, domain.LedgerActionRevenue)
		assert.NoError(t, err)
		assert.Nil(t, exp)
		if assert.NotNil(t, rev) {
			assert.Equal(t, int64(25000), rev.AmountCents)
			assert.Equal(t, "Weekly rent", rev.Description)
			assert.Equal(t, "2026-08-20", rev.Date)
			assert.Equal(t, domain.LedgerStatusPending, rev.Status)
			assert.Equal(t, int32(1), rev.OrgID)
		}
		repo.AssertExpectations(t)
	})

	t.Run("ExpenseAction", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := NewActivityService(repo, NewCustomFieldService(noFields()))

		a := &domain.Activity{
			VehicleID:   int32Ptr(3),
			Type:        domain.ActivityTypeRepair,
			AmountCents: int64Ptr(9000),
			Date:        "2026-08-20",
		}

		repo.On("CreateWithLedger", mock.Anything, a, (*domain.Revenue)(nil), mock.AnythingOfType("*domain.Expense")).
			Return(nil)

		rev, exp, err := svc.Create(ctx, testScope(), a, domain.LedgerActionExpense)
		assert.NoError(t, err)
		assert.Nil(t, rev)
		if assert.NotNil(t, exp) {
			assert.Equal(t, int64(9000), exp.AmountCents)
			assert.Equal(t, domain.LedgerStatusPending, exp.Status)
		}
		repo.AssertExpectations(t)
	})

	t.Run("NoAction", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := NewActivityService(repo, NewCustomFieldService(noFields()))

		a := &domain.Activity{
			VehicleID: int32Ptr(3),
			Type:      domain.ActivityTypeIncident,
			Date:      "2026-08-20",
		}

		repo.On("CreateWithLedger", mock.Anything, a, (*domain.Revenue)(nil), (*domain.Expense)(nil)).
			Return(nil)

		rev, exp, err := svc.Create(ctx, testScope(), a, domain.LedgerActionNone)
		assert.NoError(t, err)
		assert.Nil(t, rev)
		assert.Nil(t, exp)
		repo.AssertExpectations(t)
	})

	t.Run("LedgerActionWithoutAmount", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := NewActivityService(repo, NewCustomFieldService(noFields()))

		a := &domain.Activity{
			VehicleID: int32Ptr(3),
			Type:      domain.ActivityTypePayment,
			Date:      "2026-08-20",
		}

		_, _, err := svc.Create(ctx, testScope(), a, domain.LedgerActionRevenue)
		assert.True(t, domain.IsValidation(err))
		repo.AssertNotCalled(t, "CreateWithLedger", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NoVehicleOrDriver", func(t *testing.T) {
		// Both references are nullable; a general maintenance cost with
		// no vehicle or driver still gets its expense.
		repo := new(MockActivityRepo)
		svc := NewActivityService(repo, NewCustomFieldService(noFields()))

		a := &domain.Activity{
			Type:        domain.ActivityTypeMaintenance,
			AmountCents: int64Ptr(15000),
			Date:        "2026-08-20",
		}

		repo.On("CreateWithLedger", mock.Anything, a, (*domain.Revenue)(nil), mock.AnythingOfType("*domain.Expense")).
			Return(nil)

		rev, exp, err := svc.Create(ctx, testScope(), a, domain.LedgerActionExpense)
		assert.NoError(t, err)
		assert.Nil(t, rev)
		if assert.NotNil(t, exp) {
			assert.Equal(t, int64(15000), exp.AmountCents)
			assert.Equal(t, domain.LedgerStatusPending, exp.Status)
		}
		repo.AssertExpectations(t)
	})

	t.Run("RecurringRequiresFrequency", func(t *testing.T) {
		repo := new(MockActivityRepo)
		svc := NewActivityService(repo, NewCustomFieldService(noFields()))

		a := &domain.Activity{
			VehicleID: int32Ptr(3),
			Type:      domain.ActivityTypePayment,
			Date:      "2026-08-20",
			Recurring: true,
		}

		_, _, err := svc.Create(ctx, testScope(), a, domain.LedgerActionNone)
		assert.True(t, domain.IsValidation(err))
	})
}
