package postgres

import (
	"context"
	"testing"
	"time"

	"fleetdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCustomFieldRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomFieldRepository(db)

	t.Run("Success", func(t *testing.T) {
		def := &domain.CustomFieldDefinition{
			OrgID:    1,
			Entity:   domain.EntityVehicles,
			Name:     "insurance_expiry",
			Type:     domain.FieldTypeDate,
			Required: true,
		}

		mock.ExpectQuery("INSERT INTO custom_field_definitions").
			WithArgs(def.OrgID, def.Entity, def.Name, def.Type, def.Required, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		err := repo.Create(context.Background(), def)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), def.ID)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		def := &domain.CustomFieldDefinition{
			OrgID:  1,
			Entity: domain.EntityVehicles,
			Name:   "insurance_expiry",
			Type:   domain.FieldTypeDate,
		}

		mock.ExpectQuery("INSERT INTO custom_field_definitions").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), def)
		assert.ErrorIs(t, err, domain.ErrDuplicateField)
	})
}

func TestCustomFieldRepository_ListByEntity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewCustomFieldRepository(db)
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "org_id", "entity", "name", "field_type", "required", "created_on"}).
		AddRow(3, 1, "vehicles", "insurance_expiry", "date", true, created).
		AddRow(4, 1, "vehicles", "mileage", "number", false, created)

	mock.ExpectQuery("FROM custom_field_definitions").
		WithArgs(int32(1), domain.EntityVehicles).
		WillReturnRows(rows)

	defs, err := repo.ListByEntity(context.Background(), 1, domain.EntityVehicles)
	assert.NoError(t, err)
	if assert.Len(t, defs, 2) {
		assert.Equal(t, "insurance_expiry", defs[0].Name)
		assert.True(t, defs[0].Required)
		assert.Equal(t, domain.FieldTypeNumber, defs[1].Type)
	}
}
