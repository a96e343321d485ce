package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRevenueRepository_MarkPastDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRevenueRepository(db)

	mock.ExpectExec("UPDATE revenues SET status = 'past_due'").
		WithArgs("2026-08-29").
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.MarkPastDue(context.Background(), "2026-08-29")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueRepository_CountPastDueByOrg(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRevenueRepository(db)

	rows := sqlmock.NewRows([]string{"org_id", "count"}).
		AddRow(1, 4).
		AddRow(3, 1)

	mock.ExpectQuery("SELECT org_id, count\\(\\*\\) FROM revenues").
		WillReturnRows(rows)

	counts, err := repo.CountPastDueByOrg(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[int32]int32{1: 4, 3: 1}, counts)
}
