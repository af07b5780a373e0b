// Package client bootstraps the local persistence of the portal client.
//
// InitDatabase opens the SQLite file, limits the pool to one connection and
// applies the embedded goose migrations; InitRepositories wraps the result
// in a kv.SQLiteStore. Failures from InitRepositories match
// ErrLocalDataNotAvailable with errors.Is.
package client
