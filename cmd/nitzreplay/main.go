// Package main provides the nitzreplay entry point: it replays a recorded
// trace of network time events through the detection engine and prints every
// decision, for reproducing field reports deterministically.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // keep replay results independent of host zone files

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/nitz-engine/internal/detection"
	"github.com/osa030/nitz-engine/internal/hostzone"
	"github.com/osa030/nitz-engine/internal/logger"
	"github.com/osa030/nitz-engine/internal/nitz"
	"github.com/osa030/nitz-engine/internal/tzlookup"
)

var (
	app     = kingpin.New("nitzreplay", "Replay a NITZ event trace through the detection engine")
	verbose = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Envar("VERBOSE").Bool()
	logfile = app.Flag("logfile", "Path to log file (default: stdout)").Envar("LOGFILE").String()

	spacing    = app.Flag("spacing", "Minimum monotonic gap between time suggestions").Default("10m").Envar("NITZ_UPDATE_SPACING").Duration()
	diff       = app.Flag("diff", "Drift tolerance inside the spacing window").Default("2s").Envar("NITZ_UPDATE_DIFF").Duration()
	ignoreTime = app.Flag("ignore-time", "Suppress time suggestions (zone detection stays active)").Bool()

	autoTZ   = app.Flag("auto-zone", "Authority reports automatic zone detection enabled").Default("true").Bool()
	autoTime = app.Flag("auto-time", "Authority reports automatic time enabled").Default("true").Bool()
	tzInit   = app.Flag("zone-initialized", "Authority reports the zone setting was set before").Bool()

	traceFile = app.Arg("trace", "Event trace file (one event per line)").Required().String()
)

func init() {
	hostzone.Init()
}

// stubAuthority prints what a real time authority would have applied.
type stubAuthority struct {
	autoTZ   bool
	autoTime bool
	tzInit   bool
}

func (a *stubAuthority) SuggestTime(phoneID int, t detection.Timestamped[int64]) {
	zlog.Info().Int("phone", phoneID).
		Str("utc", time.UnixMilli(t.Value).UTC().Format(time.RFC3339)).
		Dur("at", t.AtElapsed).
		Msg("time suggestion")
}

func (a *stubAuthority) SuggestTimeZone(zoneID string) {
	zlog.Info().Str("zone", zoneID).Msg("zone suggestion")
}

func (a *stubAuthority) TimeZoneInitialized() bool { return a.tzInit }
func (a *stubAuthority) AutoTimeZoneEnabled() bool { return a.autoTZ }
func (a *stubAuthority) AutoTimeEnabled() bool     { return a.autoTime }

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logger.Init(*verbose, *logfile); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	f, err := os.Open(*traceFile)
	if err != nil {
		zlog.Error().Msgf("Failed to open trace: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	authority := &stubAuthority{autoTZ: *autoTZ, autoTime: *autoTime, tzInit: *tzInit}
	clock := detection.NewManualClock(0)
	ring := detection.NewRing(256)
	lookup := tzlookup.New(tzlookup.DefaultTable(), hostzone.Default)

	registry := detection.NewRegistry(func(phoneID int) *detection.Queue {
		cfg := detection.DefaultConfig(phoneID)
		cfg.UpdateSpacing = *spacing
		cfg.UpdateDiff = *diff
		cfg.IgnoreNetworkTime = *ignoreTime

		ctrl, err := detection.NewController(cfg, authority, clock, nil, lookup, ring)
		if err != nil {
			zlog.Error().Msgf("Failed to build controller for phone %d: %v", phoneID, err)
			os.Exit(1)
		}
		return detection.NewQueue(ctrl, 16)
	})

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := replayLine(registry, clock, line); err != nil {
			zlog.Warn().Msgf("Line %d skipped: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		zlog.Error().Msgf("Failed reading trace: %v", err)
		os.Exit(1)
	}

	registry.StopAll()
	for _, entry := range ring.Dump() {
		fmt.Println(entry)
	}
}

// replayLine parses and delivers one trace line. Format:
//
//	advance <duration>                  move the replay clock
//	<phone> signal <nitz-string>
//	<phone> country <iso> [changed]
//	<phone> country-lost
//	<phone> network-up | network-down
//	<phone> airplane on|off
//	<phone> auto-zone-on
func replayLine(registry *detection.Registry, clock *detection.ManualClock, line string) error {
	fields := strings.Fields(line)

	if fields[0] == "advance" {
		if len(fields) != 2 {
			return fmt.Errorf("advance wants a duration: %q", line)
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			return fmt.Errorf("bad duration %q: %w", fields[1], err)
		}
		clock.Advance(d)
		return nil
	}

	if len(fields) < 2 {
		return fmt.Errorf("want \"<phone> <event> ...\": %q", line)
	}
	phoneID, err := strconv.Atoi(fields[0])
	if err != nil || phoneID < 0 {
		return fmt.Errorf("bad phone id %q", fields[0])
	}

	var ev detection.Event
	switch fields[1] {
	case "signal":
		if len(fields) != 3 {
			return fmt.Errorf("signal wants a NITZ string: %q", line)
		}
		s, err := nitz.Decode(fields[2])
		if err != nil {
			// Malformed signals are dropped, exactly as a live stack would.
			return err
		}
		ev = detection.SignalReceivedEvent{
			Signal: detection.Timestamped[nitz.Signal]{AtElapsed: clock.ElapsedRealtime(), Value: s},
		}
	case "country":
		if len(fields) < 3 {
			return fmt.Errorf("country wants an ISO code: %q", line)
		}
		// "-" stands for the empty country a test/bogus-MCC network reports.
		iso := strings.ToLower(fields[2])
		if iso == "-" {
			iso = ""
		}
		ev = detection.CountryDetectedEvent{
			Country: iso,
			Changed: len(fields) > 3 && fields[3] == "changed",
		}
	case "country-lost":
		ev = detection.CountryUnavailableEvent{}
	case "network-up":
		ev = detection.NetworkAvailableEvent{}
	case "network-down":
		ev = detection.NetworkUnavailableEvent{}
	case "airplane":
		if len(fields) != 3 || (fields[2] != "on" && fields[2] != "off") {
			return fmt.Errorf("airplane wants on|off: %q", line)
		}
		ev = detection.AirplaneModeEvent{On: fields[2] == "on"}
	case "auto-zone-on":
		ev = detection.AutoTimeZoneEnabledEvent{}
	default:
		return fmt.Errorf("unknown event %q", fields[1])
	}

	return registry.ForPhone(phoneID).Deliver(ev)
}
