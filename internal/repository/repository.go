package repository

import (
	"context"
	"fleetdesk-backend/internal/domain"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id int32) (*domain.Organization, error)
	ListAll(ctx context.Context) ([]domain.Organization, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByOrg(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.User, int32, error)
	Update(ctx context.Context, user *domain.User) error
	GetOwner(ctx context.Context, orgID int32) (*domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.Vehicle, error)
	ListByOrg(ctx context.Context, orgID int32, status domain.VehicleStatus, page, pageSize int32) ([]domain.Vehicle, int32, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, orgID, id int32) error
	UpdatePhotos(ctx context.Context, orgID, id int32, photos []string) error
}

type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.Driver, error)
	ListByOrg(ctx context.Context, orgID int32, status domain.DriverStatus, page, pageSize int32) ([]domain.Driver, int32, error)
	Update(ctx context.Context, d *domain.Driver) error
	Delete(ctx context.Context, orgID, id int32) error
	SetDocument(ctx context.Context, orgID, id int32, docType, url string) error
}

// ActivityFilter narrows ListByOrg. Zero values mean "no filter".
type ActivityFilter struct {
	VehicleID int32
	DriverID  int32
	Type      domain.ActivityType
}

type ActivityRepository interface {
	// CreateWithLedger persists the activity and, when rev or exp is
	// non-nil (never both), the derived ledger row in one transaction.
	CreateWithLedger(ctx context.Context, a *domain.Activity, rev *domain.Revenue, exp *domain.Expense) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.Activity, error)
	ListByOrg(ctx context.Context, orgID int32, filter ActivityFilter, page, pageSize int32) ([]domain.Activity, int32, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, orgID, id int32) error

	// Recurring templates: ListDueRecurring returns templates whose next
	// due date is on or before asOf; SpawnOccurrence inserts the concrete
	// copy and advances the template date in one transaction.
	ListDueRecurring(ctx context.Context, asOf string) ([]domain.Activity, error)
	SpawnOccurrence(ctx context.Context, template *domain.Activity, nextDate string) (*domain.Activity, error)
}

type RevenueRepository interface {
	Create(ctx context.Context, r *domain.Revenue) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.Revenue, error)
	ListByOrg(ctx context.Context, orgID int32, status domain.LedgerStatus, page, pageSize int32) ([]domain.Revenue, int32, error)
	Update(ctx context.Context, r *domain.Revenue) error
	Delete(ctx context.Context, orgID, id int32) error
	MarkPastDue(ctx context.Context, asOf string) (int64, error)
	CountPastDueByOrg(ctx context.Context) (map[int32]int32, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, orgID, id int32) (*domain.Expense, error)
	ListByOrg(ctx context.Context, orgID int32, status domain.LedgerStatus, page, pageSize int32) ([]domain.Expense, int32, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, orgID, id int32) error
	MarkPastDue(ctx context.Context, asOf string) (int64, error)
	CountPastDueByOrg(ctx context.Context) (map[int32]int32, error)
}

type CustomFieldRepository interface {
	Create(ctx context.Context, def *domain.CustomFieldDefinition) error
	ListByEntity(ctx context.Context, orgID int32, entity domain.CustomFieldEntity) ([]domain.CustomFieldDefinition, error)
	Delete(ctx context.Context, orgID, id int32) error
}

// ReportRepository derives all dashboard and finance figures with
// aggregate queries; callers never fetch whole tables.
type ReportRepository interface {
	TotalRevenueCents(ctx context.Context, orgID int32) (int64, error)
	TotalExpenseCents(ctx context.Context, orgID int32) (int64, error)
	RevenueByStatus(ctx context.Context, orgID int32) (map[domain.LedgerStatus]int64, error)
	ExpenseByStatus(ctx context.Context, orgID int32) (map[domain.LedgerStatus]int64, error)
	ActivityCountByType(ctx context.Context, orgID int32) (map[domain.ActivityType]int32, error)
	VehicleStatusBreakdown(ctx context.Context, orgID int32) (map[domain.VehicleStatus]int32, error)
	VehicleCount(ctx context.Context, orgID int32) (int32, error)
	DriverCount(ctx context.Context, orgID int32) (int32, error)
}
