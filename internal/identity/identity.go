// Package identity resolves who owns a freshly created list.
package identity

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is returned when no identity can be found.
const Unknown = "unknown"

// lookup is swapped in tests.
var lookup = func() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Current returns the invoking user's name: the OS account first, then
// $USER, then $USERNAME.
func Current() string {
	if name, err := lookup(); err == nil {
		// Windows reports DOMAIN\name.
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	for _, key := range []string{"USER", "USERNAME"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return Unknown
}
