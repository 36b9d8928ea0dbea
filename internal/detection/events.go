package detection

import "github.com/osa030/nitz-engine/internal/nitz"

// Event is one externally-observed occurrence delivered to the engine.
// Events are dispatched in arrival order on a single goroutine, so replaying
// the same sequence always produces the same decisions.
type Event interface {
	isEvent()
}

// SignalReceivedEvent carries a decoded NITZ signal stamped with its
// monotonic receipt instant.
type SignalReceivedEvent struct {
	Signal Timestamped[nitz.Signal]
}

// CountryDetectedEvent carries the serving-network country code. Changed
// reports whether it differs from the previously delivered one.
type CountryDetectedEvent struct {
	Country string
	Changed bool
}

// CountryUnavailableEvent reports loss of the serving-network country.
type CountryUnavailableEvent struct{}

// NetworkAvailableEvent reports the network coming up.
type NetworkAvailableEvent struct{}

// NetworkUnavailableEvent reports loss of the network.
type NetworkUnavailableEvent struct{}

// AirplaneModeEvent reports an airplane-mode toggle in either direction.
type AirplaneModeEvent struct {
	On bool
}

// AutoTimeZoneEnabledEvent reports the user enabling automatic zone
// detection.
type AutoTimeZoneEnabledEvent struct{}

func (SignalReceivedEvent) isEvent()      {}
func (CountryDetectedEvent) isEvent()     {}
func (CountryUnavailableEvent) isEvent()  {}
func (NetworkAvailableEvent) isEvent()    {}
func (NetworkUnavailableEvent) isEvent()  {}
func (AirplaneModeEvent) isEvent()        {}
func (AutoTimeZoneEnabledEvent) isEvent() {}
