// Package detection holds the stateful NITZ time/time-zone detection engine:
// a single-writer state machine fed by network events, deciding what to
// suggest to the system's time authority.
package detection

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/nitz-engine/internal/nitz"
	"github.com/osa030/nitz-engine/internal/tzlookup"
)

// Controller is one detection engine instance, one per modem. Its event
// handlers mutate internal state and must be invoked strictly sequentially;
// wrap it in a Queue when events can arrive from multiple goroutines.
type Controller struct {
	cfg       Config
	authority Authority
	clock     Clock
	wake      WakeLock
	lookup    tzlookup.Lookup
	ring      *Ring

	// Detection state. Owned exclusively by the event handlers.
	lastAcceptedTime       *Timestamped[int64]
	latestSignal           *Timestamped[nitz.Signal]
	haveCountry            bool
	countryISO             string
	savedZone              string
	zoneDetectionSucceeded bool

	// lastAppliedZone only suppresses duplicate diagnostics; it takes no
	// part in decisions and survives resets.
	lastAppliedZone string
}

// NewController wires an engine instance. authority and clock are required;
// wake may be nil (no-op) and ring may be nil (diagnostics dropped).
func NewController(cfg Config, authority Authority, clock Clock, wake WakeLock, lookup tzlookup.Lookup, ring *Ring) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if authority == nil {
		return nil, errors.New("authority is required")
	}
	if clock == nil {
		return nil, errors.New("clock is required")
	}
	if wake == nil {
		wake = NopWakeLock{}
	}
	return &Controller{
		cfg:       cfg,
		authority: authority,
		clock:     clock,
		wake:      wake,
		lookup:    lookup,
		ring:      ring,
	}, nil
}

// HandleSignalReceived processes a newly decoded NITZ signal: it is cached
// unconditionally, then zone resolution and time resolution both run.
func (c *Controller) HandleSignalReceived(sig Timestamped[nitz.Signal]) {
	if sig.Value.OriginText == "" {
		// Decoded signals always carry their origin text; an empty one is
		// a construction bug, not bad network input.
		panic("detection: signal with empty origin text")
	}

	c.logDecision("signal received: %v", sig.Value)
	c.latestSignal = &sig
	c.resolveZone(sig)
	c.resolveTime(sig)
}

// HandleCountryDetected processes a serving-network country code. changed
// reports whether it differs from the previously delivered one.
func (c *Controller) HandleCountryDetected(country string, changed bool) {
	wasUnknown := !c.haveCountry
	c.haveCountry = true
	c.countryISO = country
	c.logDecision("country detected: %q (changed=%v)", country, changed)

	if country != "" && !c.zoneDetectionSucceeded {
		c.tryCountryFallback(country)
	}
	if (changed || wasUnknown) && c.latestSignal != nil {
		c.resolveZone(*c.latestSignal)
	}
}

// HandleCountryUnavailable processes loss of the serving-network country.
// The cached signal deliberately survives: a later country can still combine
// with it.
func (c *Controller) HandleCountryUnavailable() {
	c.logDecision("country unavailable; zone state reset")
	c.haveCountry = false
	c.countryISO = ""
	c.savedZone = ""
	c.zoneDetectionSucceeded = false
}

// HandleNetworkAvailable notes the network came (back) up. Confidence must
// be re-earned, but nothing else is forgotten.
func (c *Controller) HandleNetworkAvailable() {
	c.logDecision("network available")
	c.zoneDetectionSucceeded = false
}

// HandleNetworkUnavailable processes loss of the network. Signal-derived
// state is cleared; country knowledge outlives the radio signal, so the
// country-only fallback runs immediately if one is still known.
func (c *Controller) HandleNetworkUnavailable() {
	c.logDecision("network unavailable; signal state reset")
	c.lastAcceptedTime = nil
	c.latestSignal = nil
	c.zoneDetectionSucceeded = false
	c.savedZone = ""

	if c.haveCountry && c.countryISO != "" {
		c.tryCountryFallback(c.countryISO)
	}
}

// HandleAirplaneModeChanged resets everything on both entry and exit: state
// collected before a flight is unlikely to still be valid after it.
func (c *Controller) HandleAirplaneModeChanged(on bool) {
	c.logDecision("airplane mode %v; full reset", on)
	c.lastAcceptedTime = nil
	c.latestSignal = nil
	c.haveCountry = false
	c.countryISO = ""
	c.savedZone = ""
	c.zoneDetectionSucceeded = false
}

// HandleAutoTimeZoneEnabled catches up on a decision made while the user
// preference was off.
func (c *Controller) HandleAutoTimeZoneEnabled() {
	if c.savedZone == "" {
		return
	}
	c.applyZone(c.savedZone, "automatic zone detection enabled")
}

// resolveZone runs the disambiguation priority chain for a signal. When the
// chain cannot decide, savedZone is left alone: an old-but-not-invalidated
// decision beats oscillating to nothing.
func (c *Controller) resolveZone(sig Timestamped[nitz.Signal]) {
	s := sig.Value
	at := time.UnixMilli(s.UTCTimeMillis)
	// An absent DST field matches like "not in DST"; the distinction only
	// changes behavior in the mode-1 raw-offset adjustment, which takes the
	// amount separately.
	isDST, _ := s.InDaylightTime()
	var dstMillis int32
	if s.DSTOffsetMillis != nil {
		dstMillis = *s.DSTOffsetMillis
	}

	// 1. A host zone hint is authoritative.
	if s.DebugHostZone != "" {
		c.commitZone(s.DebugHostZone, "host zone hint")
		return
	}

	// 2. Without a country there is nothing safe to decide yet.
	if !c.haveCountry {
		c.logDecision("zone undecided: no country yet for %q", s.OriginText)
		return
	}

	// 3. An empty country (test/bogus MCC network) leaves only the offset
	// to go on; imprecision is expected.
	if c.countryISO == "" {
		if zone := c.lookup.ByOffsetDST(s.LocalOffsetMillis, isDST, dstMillis, at); zone != "" {
			c.commitZone(zone, "offset-only lookup, empty country")
		} else {
			c.logDecision("zone undecided: offset-only lookup found nothing for %q", s.OriginText)
		}
		return
	}

	// 4. Some networks erroneously broadcast offset zero during transient
	// states. Once the device's zone has been set by any means, refuse to
	// move it to UTC on the word of a country that does not use UTC.
	if c.authority.TimeZoneInitialized() && s.LocalOffsetMillis == 0 && !tzlookup.CountryUsesUTC(c.countryISO) {
		c.logDecision("zone undecided: suspected bogus zero-offset signal %q in country %q", s.OriginText, c.countryISO)
		return
	}

	// 5. Offset plus country is the highest-confidence combination.
	if zone := c.lookup.ByOffsetDSTCountry(s.LocalOffsetMillis, isDST, at, c.countryISO); zone != "" {
		c.commitZone(zone, "offset+country lookup")
		return
	}

	// 6. Fall back to the country's representative zone when it is safe.
	if zone, q, ok := c.lookup.ByCountry(c.countryISO, at); ok {
		if q == tzlookup.QualitySingleZone || q == tzlookup.QualityDefaultBoosted {
			c.commitZone(zone, fmt.Sprintf("country fallback (%v)", q))
			return
		}
		c.logDecision("zone undecided: country %q quality %v", c.countryISO, q)
		return
	}
	c.logDecision("zone undecided: country %q not in table", c.countryISO)
}

// tryCountryFallback attempts the country-only lookup outside the signal
// path (country became known, or the network vanished while the country
// survived).
func (c *Controller) tryCountryFallback(country string) {
	// The instant only matters for multi-zone offset agreement; use the
	// cached signal's claim when there is one, the wall clock otherwise.
	at := time.Now()
	if c.latestSignal != nil {
		at = time.UnixMilli(c.latestSignal.Value.UTCTimeMillis)
	}

	zone, q, ok := c.lookup.ByCountry(country, at)
	if !ok {
		c.logDecision("country fallback: %q not in table", country)
		return
	}
	if q != tzlookup.QualitySingleZone && q != tzlookup.QualityDefaultBoosted {
		c.logDecision("country fallback: %q quality %v, not confident", country, q)
		return
	}
	c.commitZone(zone, fmt.Sprintf("country fallback (%v)", q))
}

// commitZone records a confident decision and pushes it when the user
// preference allows, caching it for catch-up otherwise.
func (c *Controller) commitZone(zone, reason string) {
	c.savedZone = zone
	c.zoneDetectionSucceeded = true

	if !c.authority.AutoTimeZoneEnabled() {
		c.logDecision("zone %q decided (%s); automatic zone detection off, cached", zone, reason)
		return
	}
	c.applyZone(zone, reason)
}

func (c *Controller) applyZone(zone, reason string) {
	if zone != c.lastAppliedZone {
		c.logDecision("zone %q applied (%s)", zone, reason)
		c.lastAppliedZone = zone
	}
	c.authority.SuggestTimeZone(zone)
}

// resolveTime validates the signal's receipt age and applies the rate
// limiter before suggesting the claimed instant.
func (c *Controller) resolveTime(sig Timestamped[nitz.Signal]) {
	if c.cfg.IgnoreNetworkTime {
		c.logDecision("time suggestion skipped: network time ignored by override")
		return
	}

	age := c.elapsedUnderWakeLock() - sig.AtElapsed
	if age < 0 || age > c.cfg.MaxSignalAge {
		c.logDecision("time suggestion discarded: implausible signal age %v for %q", age, sig.Value.OriginText)
		return
	}

	cand := Timestamped[int64]{AtElapsed: sig.AtElapsed, Value: sig.Value.UTCTimeMillis}
	if c.lastAcceptedTime != nil && shouldSuppress(*c.lastAcceptedTime, cand, c.cfg.UpdateSpacing, c.cfg.UpdateDiff) {
		c.logDecision("time suggestion suppressed: within %v of last accepted sample", c.cfg.UpdateSpacing)
		return
	}

	c.authority.SuggestTime(c.cfg.PhoneID, cand)
	c.lastAcceptedTime = &cand
	if c.authority.AutoTimeEnabled() {
		c.logDecision("time suggested: utc=%d at=%v", cand.Value, cand.AtElapsed)
	} else {
		c.logDecision("time suggested (automatic time off at authority): utc=%d at=%v", cand.Value, cand.AtElapsed)
	}
}

// elapsedUnderWakeLock reads the monotonic clock with the wake lock held, so
// the device cannot suspend mid-read. Released on every exit path.
func (c *Controller) elapsedUnderWakeLock() time.Duration {
	c.wake.Acquire()
	defer c.wake.Release()
	return c.clock.ElapsedRealtime()
}

// logDecision records a diagnostics line; failure to log never fails a
// decision.
func (c *Controller) logDecision(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	c.ring.Add(fmt.Sprintf("phone%d: %s", c.cfg.PhoneID, line))
	zlog.Debug().Int("phone", c.cfg.PhoneID).Msg(line)
}
