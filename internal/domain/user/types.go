package user

import "strings"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// NewRole accepts any casing and surrounding whitespace, rejecting unknown values.
func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ParseRole is the lenient read path for stored values: unknown or empty reads as customer.
func ParseRole(s string) Role {
	role, err := NewRole(s)
	if err != nil {
		return RoleCustomer
	}
	return role
}
