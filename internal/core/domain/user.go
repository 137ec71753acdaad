package domain

// UserRole is the dealership role carried in the caller's token.
type UserRole string

const (
	RoleMember  UserRole = "member"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleMember, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID string   `json:"userID"`
	Role   UserRole `json:"role"`
}

// CanManage reports whether the actor may act on other salespeople's data.
func (a Actor) CanManage() bool {
	return a.Role == RoleManager || a.Role == RoleAdmin
}
