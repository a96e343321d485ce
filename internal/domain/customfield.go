package domain

// CustomFields is the open attribute bag stored denormalized on the
// owning row (jsonb). Values are validated against the org's field
// definitions at write time and never indexed.
type CustomFields map[string]any

type CustomFieldEntity string

const (
	EntityVehicles   CustomFieldEntity = "vehicles"
	EntityDrivers    CustomFieldEntity = "drivers"
	EntityActivities CustomFieldEntity = "activities"
	EntityRevenues   CustomFieldEntity = "revenues"
	EntityExpenses   CustomFieldEntity = "expenses"
)

type CustomFieldType string

const (
	FieldTypeText    CustomFieldType = "text"
	FieldTypeNumber  CustomFieldType = "number"
	FieldTypeDate    CustomFieldType = "date"
	FieldTypeBoolean CustomFieldType = "boolean"
)

// CustomFieldDefinition declares an ad-hoc typed field for one entity
// table within one organization. Names are unique per (org, entity).
type CustomFieldDefinition struct {
	ID        int32             `json:"id"`
	OrgID     int32             `json:"org_id"`
	Entity    CustomFieldEntity `json:"entity"`
	Name      string            `json:"name"`
	Type      CustomFieldType   `json:"type"`
	Required  bool              `json:"required"`
	CreatedOn string            `json:"created_on"`
}

func (e CustomFieldEntity) Valid() bool {
	switch e {
	case EntityVehicles, EntityDrivers, EntityActivities, EntityRevenues, EntityExpenses:
		return true
	}
	return false
}

func (t CustomFieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean:
		return true
	}
	return false
}
