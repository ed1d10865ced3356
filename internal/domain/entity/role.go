// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role is the tag determining which profile variant a User owns.
type Role string

const (
	// RoleCustomer marks an account that books venues.
	RoleCustomer Role = "CUSTOMER"
	// RoleProvider marks an account that lists venues.
	RoleProvider Role = "PROVIDER"
	// RoleAdmin marks a back-office account.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	default:
		return false
	}
}

// NormalizeRole upper-cases a raw role tag so that "customer" and "CUSTOMER"
// compare equal. The result is not guaranteed to be valid.
func NormalizeRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}
