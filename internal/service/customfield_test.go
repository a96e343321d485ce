package service

import (
	"context"
	"testing"

	"fleetdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomFieldService_DefineField(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminOnly", func(t *testing.T) {
		repo := new(MockCustomFieldRepo)
		svc := NewCustomFieldService(repo)

		scope := domain.Scope{UserID: 7, OrgID: 1, Role: domain.RoleDriver}
		err := svc.DefineField(ctx, scope, &domain.CustomFieldDefinition{
			Entity: domain.EntityVehicles,
			Name:   "color",
			Type:   domain.FieldTypeText,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ScopesToCallerOrg", func(t *testing.T) {
		repo := new(MockCustomFieldRepo)
		svc := NewCustomFieldService(repo)

		def := &domain.CustomFieldDefinition{
			OrgID:  99, // caller-supplied value is ignored
			Entity: domain.EntityDrivers,
			Name:   "badge_number",
			Type:   domain.FieldTypeText,
		}
		repo.On("Create", mock.Anything, def).Return(nil)

		err := svc.DefineField(ctx, testScope(), def)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), def.OrgID)
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		svc := NewCustomFieldService(new(MockCustomFieldRepo))

		err := svc.DefineField(ctx, testScope(), &domain.CustomFieldDefinition{
			Entity: domain.EntityVehicles,
			Name:   "color",
			Type:   "enum",
		})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestCustomFieldService_ValidateValues(t *testing.T) {
	ctx := context.Background()

	defs := []domain.CustomFieldDefinition{
		{OrgID: 1, Entity: domain.EntityVehicles, Name: "color", Type: domain.FieldTypeText},
		{OrgID: 1, Entity: domain.EntityVehicles, Name: "mileage", Type: domain.FieldTypeNumber},
		{OrgID: 1, Entity: domain.EntityVehicles, Name: "inspected_on", Type: domain.FieldTypeDate},
		{OrgID: 1, Entity: domain.EntityVehicles, Name: "insured", Type: domain.FieldTypeBoolean, Required: true},
	}

	newSvc := func() CustomFieldService {
		repo := new(MockCustomFieldRepo)
		repo.On("ListByEntity", mock.Anything, int32(1), domain.EntityVehicles).Return(defs, nil)
		return NewCustomFieldService(repo)
	}

	t.Run("ValidBag", func(t *testing.T) {
		err := newSvc().ValidateValues(ctx, 1, domain.EntityVehicles, domain.CustomFields{
			"color":        "red",
			"mileage":      float64(123000),
			"inspected_on": "2026-05-01",
			"insured":      true,
		})
		assert.NoError(t, err)
	})

	t.Run("MissingRequired", func(t *testing.T) {
		err := newSvc().ValidateValues(ctx, 1, domain.EntityVehicles, domain.CustomFields{
			"color": "red",
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("WrongNumberType", func(t *testing.T) {
		err := newSvc().ValidateValues(ctx, 1, domain.EntityVehicles, domain.CustomFields{
			"mileage": "a lot",
			"insured": true,
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("BadDate", func(t *testing.T) {
		err := newSvc().ValidateValues(ctx, 1, domain.EntityVehicles, domain.CustomFields{
			"inspected_on": "05/01/2026",
			"insured":      true,
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("UndefinedKeysPassThrough", func(t *testing.T) {
		err := newSvc().ValidateValues(ctx, 1, domain.EntityVehicles, domain.CustomFields{
			"insured": true,
			"notes":   "anything goes",
		})
		assert.NoError(t, err)
	})
}
