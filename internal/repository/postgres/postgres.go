package postgres

import (
	"database/sql"

	"fleetdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrganizationRepository
	repository.UserRepository
	repository.VehicleRepository
	repository.DriverRepository
	repository.ActivityRepository
	repository.RevenueRepository
	repository.ExpenseRepository
	repository.CustomFieldRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		OrganizationRepository: NewOrganizationRepository(db),
		UserRepository:         NewUserRepository(db),
		VehicleRepository:      NewVehicleRepository(db),
		DriverRepository:       NewDriverRepository(db),
		ActivityRepository:     NewActivityRepository(db),
		RevenueRepository:      NewRevenueRepository(db),
		ExpenseRepository:      NewExpenseRepository(db),
		CustomFieldRepository:  NewCustomFieldRepository(db),
		ReportRepository:       NewReportRepository(db),
	}
}
