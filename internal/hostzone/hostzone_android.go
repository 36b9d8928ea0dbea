//go:build android

// Package hostzone reports the platform's currently configured time zone.
package hostzone

import (
	"os/exec"
	"strings"
	"time"
	_ "time/tzdata" // Embed timezone database for Android
)

// Init sets time.Local to the device's configured zone. On Android,
// time.Local defaults to UTC; the real setting lives in a system property.
// If detection fails, time.Local remains UTC.
func Init() {
	tzName := Default()
	if tzName == "" {
		return
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return
	}

	time.Local = loc
}

// Default returns the device's configured zone ID, or "" when it cannot be
// determined.
func Default() string {
	// persist.sys.timezone is the persisted Android system timezone.
	if output, err := exec.Command("getprop", "persist.sys.timezone").Output(); err == nil {
		if tzName := strings.TrimSpace(string(output)); tzName != "" {
			return tzName
		}
	}

	return ""
}
