package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
//
// The password is stored and compared as plain text; hashing is handled by the
// surrounding platform, not by this service.
type User struct {
	ID        int64
	FullName  string
	Username  string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds an unpersisted user. The identifier stays zero until the
// first successful save assigns it. An empty role defaults to ROLE_CLIENT.
func NewUser(fullName, username, email, password string, role Role) *User {
	if role == "" {
		role = RoleClient
	}
	return &User{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}
}

// UserProjection is the reduced read-only view used by the paginated listing.
// It never carries the password field. Role holds the stored enumerant name
// unchanged (e.g. "ROLE_CLIENT").
type UserProjection struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
