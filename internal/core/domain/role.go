package domain

import "fmt"

// Role represents user role in the system
type Role string

const (
	RoleAdmin      Role = "admin"
	RolePharmacist Role = "pharmacist"
)

// ParseRole converts a string into a known Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RolePharmacist:
		return RolePharmacist, nil
	default:
		return "", fmt.Errorf("unknown role %q: %w", s, ErrInvalidInput)
	}
}

// Is reports whether the role equals the required role.
// There is no hierarchy: admin does not implicitly satisfy
// a pharmacist-only check.
func (r Role) Is(required Role) bool {
	return r == required
}

func (r Role) String() string {
	return string(r)
}
