package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusRented      VehicleStatus = "rented"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// VehicleStatuses lists every status bucket in display order. Reports
// zero-fill from this list so absent groups still appear.
var VehicleStatuses = []VehicleStatus{
	VehicleStatusAvailable,
	VehicleStatusRented,
	VehicleStatusMaintenance,
}

type Vehicle struct {
	ID           int32         `json:"id"`
	OrgID        int32         `json:"org_id"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Year         int32         `json:"year"`
	Plate        string        `json:"plate"`
	Status       VehicleStatus `json:"status"`
	Photos       []string      `json:"photos"` // ordered storage URLs
	CustomFields CustomFields  `json:"custom_fields,omitempty"`
	CreatedOn    string        `json:"created_on"`
}

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented, VehicleStatusMaintenance:
		return true
	}
	return false
}
