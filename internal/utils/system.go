package utils

import (
	"os"
	"os/user"
	"strings"
)

// DefaultDisplayName returns the name to greet the current OS user with:
// the account's full name when one is set, otherwise the login name.
// It returns "" when neither can be determined.
func DefaultDisplayName() string {
	u, err := user.Current()
	if err != nil {
		return os.Getenv("USER")
	}
	// GECOS fields may carry extra comma-separated data after the name.
	if full, _, _ := strings.Cut(u.Name, ","); strings.TrimSpace(full) != "" {
		return strings.TrimSpace(full)
	}
	return u.Username
}
