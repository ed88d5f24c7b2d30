package auth

import "fmt"

// Role is the closed set of account roles. Keeping it a distinct type forces
// authorization points to match against the constants instead of raw strings.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleTrainer    Role = "trainer"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperadmin:
		return RoleSuperadmin, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTrainer:
		return RoleTrainer, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}
