// Package entity holds the storefront's business objects.
package entity

import "slices"

// Role is the account tier stored on users.role.
type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER" // moderates catalog, reviews deposits and tickets
	RoleAdmin   Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return slices.Contains(Roles{RoleUser, RoleManager, RoleAdmin}, r)
}

// IsStaff reports whether the role may use the admin surface.
func (r Role) IsStaff() bool {
	return StaffRoles().Contains(r)
}

type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// StaffRoles is the tier accepted by most /api/admin routes.
func StaffRoles() Roles {
	return Roles{RoleAdmin, RoleManager}
}
