package postgres

import (
	"context"
	"testing"

	"fleetdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReportRepository_Totals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReportRepository(db)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_cents\), 0\) FROM revenues`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(120000))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount_cents\), 0\) FROM expenses`).
		WithArgs(int32(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(45000))

	revenue, err := repo.TotalRevenueCents(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(120000), revenue)

	expense, err := repo.TotalExpenseCents(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(45000), expense)
}

func TestReportRepository_RevenueByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"status", "sum"}).
		AddRow("complete", 90000).
		AddRow("pending", 30000)

	mock.ExpectQuery("SELECT status, SUM\\(amount_cents\\) FROM revenues").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	sums, err := repo.RevenueByStatus(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(90000), sums[domain.LedgerStatusComplete])
	assert.Equal(t, int64(30000), sums[domain.LedgerStatusPending])
	// Absent statuses are simply missing; the service zero-fills.
	_, ok := sums[domain.LedgerStatusPastDue]
	assert.False(t, ok)
}

func TestReportRepository_VehicleStatusBreakdown(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("available", 4).
		AddRow("rented", 7)

	mock.ExpectQuery("SELECT status, count\\(\\*\\) FROM vehicles").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	counts, err := repo.VehicleStatusBreakdown(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(4), counts[domain.VehicleStatusAvailable])
	assert.Equal(t, int32(7), counts[domain.VehicleStatusRented])
}
