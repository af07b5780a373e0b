package models

// Role of the logged-in account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// SessionRecord marks who is currently logged in and with what role.
type SessionRecord struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
