package detection

// Authority is the external collaborator that actually applies suggested
// times and zones to the running system. The engine only proposes; it never
// reads back the wall clock it is suggesting into.
type Authority interface {
	// SuggestTime proposes a UTC instant, stamped with the monotonic
	// instant the underlying signal was received at.
	SuggestTime(phoneID int, t Timestamped[int64])

	// SuggestTimeZone proposes a zone ID.
	SuggestTimeZone(zoneID string)

	// TimeZoneInitialized reports whether the device's zone setting has
	// ever been explicitly set by any means.
	TimeZoneInitialized() bool

	// AutoTimeZoneEnabled reports the user's automatic zone detection
	// preference.
	AutoTimeZoneEnabled() bool

	// AutoTimeEnabled reports the user's automatic time preference.
	AutoTimeEnabled() bool
}
