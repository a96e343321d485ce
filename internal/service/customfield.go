package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/repository"
)

type customFieldService struct {
	fieldRepo repository.CustomFieldRepository
}

func NewCustomFieldService(fieldRepo repository.CustomFieldRepository) CustomFieldService {
	return &customFieldService{fieldRepo: fieldRepo}
}

func (s *customFieldService) DefineField(ctx context.Context, scope domain.Scope, def *domain.CustomFieldDefinition) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if !def.Entity.Valid() {
		return domain.Invalid("entity", "unknown entity table")
	}
	if !def.Type.Valid() {
		return domain.Invalid("type", "must be text, number, date or boolean")
	}
	def.OrgID = scope.OrgID
	return s.fieldRepo.Create(ctx, def)
}

func (s *customFieldService) ListFields(ctx context.Context, scope domain.Scope, entity domain.CustomFieldEntity) ([]domain.CustomFieldDefinition, error) {
	if !entity.Valid() {
		return nil, domain.Invalid("entity", "unknown entity table")
	}
	return s.fieldRepo.ListByEntity(ctx, scope.OrgID, entity)
}

// DeleteField removes the definition only. Stored values on existing
// rows are orphaned, not cleared: values live denormalized on each row
// and readers ignore keys without a live definition.
func (s *customFieldService) DeleteField(ctx context.Context, scope domain.Scope, id int32) error {
	if !scope.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.fieldRepo.Delete(ctx, scope.OrgID, id)
}

// ValidateValues enforces the declared type of each custom field at
// write time: text -> string, number -> float64, date -> 2006-01-02,
// boolean -> bool. Required fields must be present and non-empty.
// Keys with no definition pass through untouched.
func (s *customFieldService) ValidateValues(ctx context.Context, orgID int32, entity domain.CustomFieldEntity, values domain.CustomFields) error {
	defs, err := s.fieldRepo.ListByEntity(ctx, orgID, entity)
	if err != nil {
		return err
	}

	for _, def := range defs {
		value, present := values[def.Name]
		if !present || value == nil {
			if def.Required {
				return domain.Invalid(def.Name, "required custom field is missing")
			}
			continue
		}
		if err := checkFieldType(def, value); err != nil {
			return err
		}
	}
	return nil
}

func checkFieldType(def domain.CustomFieldDefinition, value any) error {
	switch def.Type {
	case domain.FieldTypeText:
		str, ok := value.(string)
		if !ok {
			return domain.Invalid(def.Name, "expected text")
		}
		if def.Required && strings.TrimSpace(str) == "" {
			return domain.Invalid(def.Name, "required custom field is empty")
		}
	case domain.FieldTypeNumber:
		// JSON numbers decode as float64.
		if _, ok := value.(float64); !ok {
			return domain.Invalid(def.Name, "expected number")
		}
	case domain.FieldTypeDate:
		str, ok := value.(string)
		if !ok {
			return domain.Invalid(def.Name, "expected date string")
		}
		if _, err := time.Parse("2006-01-02", str); err != nil {
			return domain.Invalid(def.Name, fmt.Sprintf("invalid date %q, want YYYY-MM-DD", str))
		}
	case domain.FieldTypeBoolean:
		if _, ok := value.(bool); !ok {
			return domain.Invalid(def.Name, "expected boolean")
		}
	}
	return nil
}
