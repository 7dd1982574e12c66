package entity

// Role is the authorization role stored on a user. The stored name carries the
// ROLE_ prefix; only the single-user API response strips it.
type Role string

const (
	RoleAdmin  Role = "ROLE_ADMIN"
	RoleClient Role = "ROLE_CLIENT"
)

// IsValid reports whether r is one of the two defined roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}
