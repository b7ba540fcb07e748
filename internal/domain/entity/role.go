// Package entity contains the core business objects of the project.
package entity

// Role represents the access tier a user holds in the system.
type Role string

const (
	// RoleUser indicates a regular user who browses stores and submits ratings.
	RoleUser Role = "user"
	// RoleStoreOwner indicates a user who owns one or more stores.
	RoleStoreOwner Role = "store_owner"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStoreOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw string into a Role, reporting whether it is
// one of the known values. The empty string parses to RoleUser.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleUser, true
	}

	role := Role(s)

	return role, role.IsValid()
}
