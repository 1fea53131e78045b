// Package user resolves the identity recorded on board members and card
// assignees when none is given
package user

import (
	"os"
	"os/user"
)

// Fallback is returned when no username can be found
const Fallback = "unknown"

// CurrentUsername returns the OS username, then $USER, then Fallback
func CurrentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Fallback
}

// OrCurrent returns id when set and the current username otherwise
func OrCurrent(id string) string {
	if id != "" {
		return id
	}
	return CurrentUsername()
}
