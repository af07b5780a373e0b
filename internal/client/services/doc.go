// Package services implements the local account layer of the portal client
// on top of a kv.Store:
//
//   - CredentialStore: admin email/password collection with a fixed
//     per-operation failure policy.
//   - SessionService: the single current-session record and the role gate.
//   - AuthService: the login protocol (fallback pair, stored credentials,
//     first-admin bootstrap) with its state machine.
//   - AdminService: admin settings (list, add, remove but never the last).
//   - SavedLogins: bounded most-recently-used list of prior logins.
//   - Preferences: preferred UI language.
//   - PasswordReset: forgot-password request check.
//
// Storage failures inside boolean or fail-soft operations are logged and
// absorbed; validation failures are returned as sentinel errors from
// package common.
package services
