package models

// Credential is an admin email/password pair. Passwords are stored as
// entered; this layer is a local prototype, not a security boundary.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
