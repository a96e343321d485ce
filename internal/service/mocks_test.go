package service

import (
	"context"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) CreateWithLedger(ctx context.Context, a *domain.Activity, rev *domain.Revenue, exp *domain.Expense) error {
	args := m.Called(ctx, a, rev, exp)
	return args.Error(0)
}
func (m *MockActivityRepo) GetByID(ctx context.Context, orgID, id int32) (*domain.Activity, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) ListByOrg(ctx context.Context, orgID int32, filter repository.ActivityFilter, page, pageSize int32) ([]domain.Activity, int32, error) {
	args := m.Called(ctx, orgID, filter, page, pageSize)
	return args.Get(0).([]domain.Activity), args.Get(1).(int32), args.Error(2)
}
func (m *MockActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockActivityRepo) Delete(ctx context.Context, orgID, id int32) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
func (m *MockActivityRepo) ListDueRecurring(ctx context.Context, asOf string) ([]domain.Activity, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) SpawnOccurrence(ctx context.Context, template *domain.Activity, nextDate string) (*domain.Activity, error) {
	args := m.Called(ctx, template, nextDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

// MockCustomFieldRepo
type MockCustomFieldRepo struct {
	mock.Mock
}

func (m *MockCustomFieldRepo) Create(ctx context.Context, def *domain.CustomFieldDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}
func (m *MockCustomFieldRepo) ListByEntity(ctx context.Context, orgID int32, entity domain.CustomFieldEntity) ([]domain.CustomFieldDefinition, error) {
	args := m.Called(ctx, orgID, entity)
	return args.Get(0).([]domain.CustomFieldDefinition), args.Error(1)
}
func (m *MockCustomFieldRepo) Delete(ctx context.Context, orgID, id int32) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) TotalRevenueCents(ctx context.Context, orgID int32) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockReportRepo) TotalExpenseCents(ctx context.Context, orgID int32) (int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockReportRepo) RevenueByStatus(ctx context.Context, orgID int32) (map[domain.LedgerStatus]int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(map[domain.LedgerStatus]int64), args.Error(1)
}
func (m *MockReportRepo) ExpenseByStatus(ctx context.Context, orgID int32) (map[domain.LedgerStatus]int64, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(map[domain.LedgerStatus]int64), args.Error(1)
}
func (m *MockReportRepo) ActivityCountByType(ctx context.Context, orgID int32) (map[domain.ActivityType]int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(map[domain.ActivityType]int32), args.Error(1)
}
func (m *MockReportRepo) VehicleStatusBreakdown(ctx context.Context, orgID int32) (map[domain.VehicleStatus]int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(map[domain.VehicleStatus]int32), args.Error(1)
}
func (m *MockReportRepo) VehicleCount(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReportRepo) DriverCount(ctx context.Context, orgID int32) (int32, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(int32), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, orgID, id int32) (*domain.User, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByOrg(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, orgID, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetOwner(ctx context.Context, orgID int32) (*domain.User, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendMemberInvitation(ctx context.Context, email, name, orgName, tempPassword string) error {
	args := m.Called(ctx, email, name, orgName, tempPassword)
	return args.Error(0)
}
func (m *MockEmailService) SendPastDueReminder(ctx context.Context, email, name, orgName string, revenueCount, expenseCount int32) error {
	args := m.Called(ctx, email, name, orgName, revenueCount, expenseCount)
	return args.Error(0)
}

// MockOrgRepo
type MockOrgRepo struct {
	mock.Mock
}

func (m *MockOrgRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrgRepo) GetByID(ctx context.Context, id int32) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrgRepo) ListAll(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
