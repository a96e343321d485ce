package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleDriver  Role = "driver"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID                int32      `json:"id"`
	OrgID             int32      `json:"org_id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	PasswordHash      string     `json:"-"`
	Role              Role       `json:"role"`
	IsOwner           bool       `json:"is_owner"`
	AssignedVehicleID *int32     `json:"assigned_vehicle_id,omitempty"` // weak reference
	Status            UserStatus `json:"status"`
	CreatedOn         string     `json:"created_on"`
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDriver:
		return true
	}
	return false
}
