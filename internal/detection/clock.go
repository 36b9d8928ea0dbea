package detection

import (
	"sync"
	"time"
)

// Timestamped pairs a value with the monotonic elapsed-realtime instant it
// was obtained at. Wall-clock deltas are meaningless before the wall clock
// itself is trusted, so every age/spacing computation in this package runs on
// these instants.
type Timestamped[T any] struct {
	AtElapsed time.Duration
	Value     T
}

// Clock supplies monotonic elapsed time. Implementations must never go
// backward, regardless of wall-clock adjustments.
type Clock interface {
	ElapsedRealtime() time.Duration
}

// SystemClock measures elapsed time from its construction using the runtime's
// monotonic reading.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) ElapsedRealtime() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a test clock advanced explicitly, for deterministic replay.
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
}

func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) ElapsedRealtime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward. Negative deltas are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// WakeLock is a scoped wake-like resource held around clock reads during
// signal validation, so the device cannot suspend between the two readings
// being compared.
type WakeLock interface {
	Acquire()
	Release()
}

// NopWakeLock is the default WakeLock for hosts without suspend semantics.
type NopWakeLock struct{}

func (NopWakeLock) Acquire() {}
func (NopWakeLock) Release() {}
