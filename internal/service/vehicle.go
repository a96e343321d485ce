package service

import (
	"context"
	"strings"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	fieldSvc    CustomFieldService
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, fieldSvc CustomFieldService) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		fieldSvc:    fieldSvc,
	}
}

func (s *vehicleService) Create(ctx context.Context, scope domain.Scope, v *domain.Vehicle) error {
	if err := s.validate(ctx, scope, v); err != nil {
		return err
	}
	v.OrgID = scope.OrgID
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	if v.Photos == nil {
		v.Photos = []string{}
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) Get(ctx context.Context, scope domain.Scope, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, scope.OrgID, id)
}

func (s *vehicleService) List(ctx context.Context, scope domain.Scope, status domain.VehicleStatus, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	if status != "" && !status.Valid() {
		return nil, 0, domain.Invalid("status", "unknown vehicle status")
	}
	return s.vehicleRepo.ListByOrg(ctx, scope.OrgID, status, page, pageSize)
}

func (s *vehicleService) Update(ctx context.Context, scope domain.Scope, v *domain.Vehicle) error {
	if err := s.validate(ctx, scope, v); err != nil {
		return err
	}
	v.OrgID = scope.OrgID
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) Delete(ctx context.Context, scope domain.Scope, id int32) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.vehicleRepo.Delete(ctx, scope.OrgID, id)
}

// AddPhoto appends a stored photo URL, preserving upload order.
func (s *vehicleService) AddPhoto(ctx context.Context, scope domain.Scope, id int32, url string) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, scope.OrgID, id)
	if err != nil {
		return nil, err
	}
	v.Photos = append(v.Photos, url)
	if err := s.vehicleRepo.UpdatePhotos(ctx, scope.OrgID, id, v.Photos); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) validate(ctx context.Context, scope domain.Scope, v *domain.Vehicle) error {
	if strings.TrimSpace(v.Brand) == "" {
		return domain.Invalid("brand", "must not be empty")
	}
	if strings.TrimSpace(v.Plate) == "" {
		return domain.Invalid("plate", "must not be empty")
	}
	if v.Status != "" && !v.Status.Valid() {
		return domain.Invalid("status", "unknown vehicle status")
	}
	return s.fieldSvc.ValidateValues(ctx, scope.OrgID, domain.EntityVehicles, v.CustomFields)
}
