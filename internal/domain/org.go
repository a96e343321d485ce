package domain

// Organization is the root of multi-tenancy. Every other entity belongs
// to exactly one organization, directly or through an activity.
type Organization struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"` // immutable after registration
	CreatedOn string `json:"created_on"`
}
