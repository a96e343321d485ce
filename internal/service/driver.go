package service

import (
	"context"
	"strings"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type driverService struct {
	driverRepo repository.DriverRepository
	fieldSvc   CustomFieldService
}

func NewDriverService(driverRepo repository.DriverRepository, fieldSvc CustomFieldService) DriverService {
	return &driverService{
		driverRepo: driverRepo,
		fieldSvc:   fieldSvc,
	}
}

func (s *driverService) Create(ctx context.Context, scope domain.Scope, d *domain.Driver) error {
	if err := s.validate(ctx, scope, d); err != nil {
		return err
	}
	d.OrgID = scope.OrgID
	if d.Status == "" {
		d.Status = domain.DriverStatusActive
	}
	return s.driverRepo.Create(ctx, d)
}

func (s *driverService) Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Driver, error) {
	return s.driverRepo.GetByID(ctx, scope.OrgID, id)
}

func (s *driverService) List(ctx context.Context, scope domain.Scope, status domain.DriverStatus, page, pageSize int32) ([]domain.Driver, int32, error) {
	if status != "" && !status.Valid() {
		return nil, 0, domain.Invalid("status", "unknown driver status")
	}
	return s.driverRepo.ListByOrg(ctx, scope.OrgID, status, page, pageSize)
}

func (s *driverService) Update(ctx context.Context, scope domain.Scope, d *domain.Driver) error {
	if err := s.validate(ctx, scope, d); err != nil {
		return err
	}
	d.OrgID = scope.OrgID
	return s.driverRepo.Update(ctx, d)
}

func (s *driverService) Delete(ctx context.Context, scope domain.Scope, id int32) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.driverRepo.Delete(ctx, scope.OrgID, id)
}

// SetDocument patches one document slot (e.g. "license") to a stored
// file URL.
func (s *driverService) SetDocument(ctx context.Context, scope domain.Scope, id int32, docType, url string) error {
	docType = strings.TrimSpace(docType)
	if docType == "" {
		return domain.Invalid("document_type", "must not be empty")
	}
	if strings.TrimSpace(url) == "" {
		return domain.Invalid("url", "must not be empty")
	}
	return s.driverRepo.SetDocument(ctx, scope.OrgID, id, docType, url)
}

func (s *driverService) validate(ctx context.Context, scope domain.Scope, d *domain.Driver) error {
	if strings.TrimSpace(d.Name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if strings.TrimSpace(d.LicenseNumber) == "" {
		return domain.Invalid("license_number", "must not be empty")
	}
	if d.Status != "" && !d.Status.Valid() {
		return domain.Invalid("status", "unknown driver status")
	}
	return s.fieldSvc.ValidateValues(ctx, scope.OrgID, domain.EntityDrivers, d.CustomFields)
}
