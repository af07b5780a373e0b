// Package cli provides the interactive terminal front end of the portal's
// local account layer.
//
// It wires configuration, the SQLite-backed key-value store and the
// services, then runs a REPL. Logged out, the REPL offers login (with the
// saved-logins shortcuts), forgot-password and language selection; logged
// in, it adds whoami, the admin settings commands and logout.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
