package domain

// Scope is the request-scoped identity derived from the access token.
// Every store call is keyed by OrgID from here, never from request
// payloads.
type Scope struct {
	UserID int32
	OrgID  int32
	Role   Role
}

func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
