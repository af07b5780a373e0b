// Package models defines client-side data models of the portal's local
// account layer and the storage keys they live under.
package models

// Storage keys. Every value is one JSON document.
const (
	KeyAdminCredentials  = "admin_credentials"
	KeySession           = "user"
	KeyLegacyAdminUser   = "admin_user"
	KeySavedLogins       = "savedLogins"
	KeyPreferredLanguage = "preferredLanguage"
)
