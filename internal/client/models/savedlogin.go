package models

import "time"

// SavedLogin is a remembered successful login shown as a shortcut.
type SavedLogin struct {
	// ID is a time-ordered UUID assigned when the entry is first saved
	// or replaced.
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Country  string    `json:"country"`
	LastUsed time.Time `json:"lastUsed"`
	Avatar   string    `json:"avatar,omitempty"`
}
