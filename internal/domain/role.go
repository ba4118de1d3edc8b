package domain

import "slices"

// Role is the kind of account a token was issued for.
type Role string

const (
	// RoleOwner lists properties, decides on requests and settles balances
	RoleOwner Role = "owner"

	// RoleTenant browses properties, applies for tenancy and reports payments
	RoleTenant Role = "tenant"

	// RoleAdmin may trigger background jobs on demand
	RoleAdmin Role = "admin"
)

var ValidRoles = []Role{RoleOwner, RoleTenant, RoleAdmin}

func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
