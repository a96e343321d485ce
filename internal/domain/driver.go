package domain

type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusInactive DriverStatus = "inactive"
)

type Driver struct {
	ID            int32             `json:"id"`
	OrgID         int32             `json:"org_id"`
	Name          string            `json:"name"`
	LicenseNumber string            `json:"license_number"`
	Phone         string            `json:"phone"`
	Documents     map[string]string `json:"documents"` // document type -> storage URL
	CustomFields  CustomFields      `json:"custom_fields,omitempty"`
	Status        DriverStatus      `json:"status"`
	CreatedOn     string            `json:"created_on"`
}

func (s DriverStatus) Valid() bool {
	return s == DriverStatusActive || s == DriverStatusInactive
}
