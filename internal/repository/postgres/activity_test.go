package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func int32Ptr(v int32) *int32 { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestActivityRepository_CreateWithLedger(t *testing.T) {
	t.Run("ActivityOnly", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewActivityRepository(db)
		a := &domain.Activity{
			OrgID:       1,
			VehicleID:   int32Ptr(3),
			Type:        domain.ActivityTypeMaintenance,
			Description: "Oil change",
			Date:        "2026-08-20",
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO activities").
			WithArgs(a.OrgID, a.VehicleID, a.DriverID, a.Type, a.Description,
				a.AmountCents, a.Date, a.Recurring, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectCommit()

		err = repo.CreateWithLedger(context.Background(), a, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), a.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WithRevenue", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewActivityRepository(db)
		a := &domain.Activity{
			OrgID:       1,
			VehicleID:   int32Ptr(3),
			Type:        domain.ActivityTypePayment,
			Description: "Weekly rent",
			AmountCents: int64Ptr(25000),
			Date:        "2026-08-20",
		}
		rev := &domain.Revenue{
			OrgID:       1,
			AmountCents: 25000,
			Description: "Weekly rent",
			Date:        "2026-08-20",
			Status:      domain.LedgerStatusPending,
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO activities").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery("INSERT INTO revenues").
			WithArgs(rev.OrgID, sqlmock.AnyArg(), rev.AmountCents, rev.Description,
				rev.Date, rev.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
		mock.ExpectCommit()

		err = repo.CreateWithLedger(context.Background(), a, rev, nil)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), a.ID)
		assert.Equal(t, int32(55), rev.ID)
		if assert.NotNil(t, rev.ActivityID) {
			assert.Equal(t, a.ID, *rev.ActivityID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenLedgerInsertFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := NewActivityRepository(db)
		a := &domain.Activity{
			OrgID:       1,
			DriverID:    int32Ptr(4),
			Type:        domain.ActivityTypeRepair,
			AmountCents: int64Ptr(9000),
			Date:        "2026-08-20",
		}
		exp := &domain.Expense{
			OrgID:       1,
			AmountCents: 9000,
			Date:        "2026-08-20",
			Status:      domain.LedgerStatusPending,
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO activities").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
		mock.ExpectQuery("INSERT INTO expenses").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err = repo.CreateWithLedger(context.Background(), a, nil, exp)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestActivityRepository_SpawnOccurrence(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewActivityRepository(db)
	freq := domain.FrequencyWeekly
	template := &domain.Activity{
		ID:          20,
		OrgID:       1,
		VehicleID:   int32Ptr(3),
		Type:        domain.ActivityTypePayment,
		AmountCents: int64Ptr(25000),
		Date:        "2026-08-20",
		Recurring:   true,
		Frequency:   &freq,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO activities").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	mock.ExpectExec("UPDATE activities SET date").
		WithArgs("2026-08-27", template.ID, template.OrgID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	occurrence, err := repo.SpawnOccurrence(context.Background(), template, "2026-08-27")
	assert.NoError(t, err)
	assert.Equal(t, int32(31), occurrence.ID)
	assert.False(t, occurrence.Recurring)
	assert.Equal(t, "2026-08-20", occurrence.Date)
	assert.Equal(t, "2026-08-27", template.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListDueRecurring(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewActivityRepository(db)
	due := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "org_id", "vehicle_id", "driver_id", "type",
		"description", "amount_cents", "date", "recurring", "recurring_frequency",
		"custom_fields", "created_on"}).
		AddRow(20, 1, 3, nil, "payment", "Weekly rent", 25000, due, true, "weekly", []byte(`{}`), due)

	mock.ExpectQuery("FROM activities WHERE recurring = true").
		WithArgs("2026-08-20").
		WillReturnRows(rows)

	templates, err := repo.ListDueRecurring(context.Background(), "2026-08-20")
	assert.NoError(t, err)
	if assert.Len(t, templates, 1) {
		assert.Equal(t, int32(20), templates[0].ID)
		assert.Equal(t, "2026-08-20", templates[0].Date)
		if assert.NotNil(t, templates[0].Frequency) {
			assert.Equal(t, domain.FrequencyWeekly, *templates[0].Frequency)
		}
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
