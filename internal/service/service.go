package service

import (
	"context"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type AuthService interface {
	// Register creates an organization and its owner admin in one call.
	Register(ctx context.Context, orgName, name, email, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	CreateMember(ctx context.Context, scope domain.Scope, u *domain.User, password string) error
	GetMember(ctx context.Context, scope domain.Scope, id int32) (*domain.User, error)
	ListMembers(ctx context.Context, scope domain.Scope, page, pageSize int32) ([]domain.User, int32, error)
	UpdateMember(ctx context.Context, scope domain.Scope, u *domain.User) error
}

type VehicleService interface {
	Create(ctx context.Context, scope domain.Scope, v *domain.Vehicle) error
	Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Vehicle, error)
	List(ctx context.Context, scope domain.Scope, status domain.VehicleStatus, page, pageSize int32) ([]domain.Vehicle, int32, error)
	Update(ctx context.Context, scope domain.Scope, v *domain.Vehicle) error
	Delete(ctx context.Context, scope domain.Scope, id int32) error
	AddPhoto(ctx context.Context, scope domain.Scope, id int32, url string) (*domain.Vehicle, error)
}

type DriverService interface {
	Create(ctx context.Context, scope domain.Scope, d *domain.Driver) error
	Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Driver, error)
	List(ctx context.Context, scope domain.Scope, status domain.DriverStatus, page, pageSize int32) ([]domain.Driver, int32, error)
	Update(ctx context.Context, scope domain.Scope, d *domain.Driver) error
	Delete(ctx context.Context, scope domain.Scope, id int32) error
	SetDocument(ctx context.Context, scope domain.Scope, id int32, docType, url string) error
}

type ActivityService interface {
	// Create persists the activity and, per action, at most one derived
	// ledger row. The two writes share a transaction.
	Create(ctx context.Context, scope domain.Scope, a *domain.Activity, action domain.LedgerAction) (*domain.Revenue, *domain.Expense, error)
	Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Activity, error)
	List(ctx context.Context, scope domain.Scope, filter repository.ActivityFilter, page, pageSize int32) ([]domain.Activity, int32, error)
	Update(ctx context.Context, scope domain.Scope, a *domain.Activity) error
	Delete(ctx context.Context, scope domain.Scope, id int32) error
}

type RevenueService interface {
	Create(ctx context.Context, scope domain.Scope, r *domain.Revenue) error
	Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Revenue, error)
	List(ctx context.Context, scope domain.Scope, status domain.LedgerStatus, page, pageSize int32) ([]domain.Revenue, int32, error)
	Update(ctx context.Context, scope domain.Scope, r *domain.Revenue) error
	Delete(ctx context.Context, scope domain.Scope, id int32) error
}

type ExpenseService interface {
	Create(ctx context.Context, scope domain.Scope, e *domain.Expense) error
	Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Expense, error)
	List(ctx context.Context, scope domain.Scope, status domain.LedgerStatus, page, pageSize int32) ([]domain.Expense, int32, error)
	Update(ctx context.Context, scope domain.Scope, e *domain.Expense) error
	Delete(ctx context.Context, scope domain.Scope, id int32) error
}

type CustomFieldService interface {
	DefineField(ctx context.Context, scope domain.Scope, def *domain.CustomFieldDefinition) error
	ListFields(ctx context.Context, scope domain.Scope, entity domain.CustomFieldEntity) ([]domain.CustomFieldDefinition, error)
	DeleteField(ctx context.Context, scope domain.Scope, id int32) error
	// ValidateValues checks a value bag against the entity's definitions.
	ValidateValues(ctx context.Context, orgID int32, entity domain.CustomFieldEntity, values domain.CustomFields) error
}

type ReportService interface {
	Dashboard(ctx context.Context, scope domain.Scope) (*domain.DashboardSummary, error)
	Finances(ctx context.Context, scope domain.Scope) (*domain.FinanceSummary, error)
}

type EmailService interface {
	SendMemberInvitation(ctx context.Context, email, name, orgName, tempPassword string) error
	SendPastDueReminder(ctx context.Context, email, name, orgName string, revenueCount, expenseCount int32) error
}
