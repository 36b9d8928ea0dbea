//go:build !android

// Package hostzone reports the platform's currently configured time zone.
package hostzone

import (
	"os"
	"strings"
)

// Init is a no-op on non-Android platforms; Go's time package initializes
// time.Local from the system zone by itself.
func Init() {}

// Default returns the host's configured zone ID, or "" when it cannot be
// determined. time.Local.String() is not used because it reports "Local",
// not an IANA ID.
func Default() string {
	if tz := os.Getenv("TZ"); tz != "" && tz != ":" {
		return strings.TrimPrefix(tz, ":")
	}

	if b, err := os.ReadFile("/etc/timezone"); err == nil {
		if tzName := strings.TrimSpace(string(b)); tzName != "" {
			return tzName
		}
	}

	// Debian-less systems symlink /etc/localtime into the zoneinfo tree.
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(link, "zoneinfo/"); i >= 0 {
			return link[i+len("zoneinfo/"):]
		}
	}

	return ""
}
