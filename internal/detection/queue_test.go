package detection

import (
	"testing"
	"time"
)

// replay drives one fresh controller through a fixed event sequence and
// returns the zone suggestions it produced.
func replay(t *testing.T, events []Event) []string {
	t.Helper()
	auth := &fakeAuthority{autoTZ: true, autoT: true}
	clock := NewManualClock(time.Minute)
	q := NewQueue(newTestController(t, auth, clock), 0)
	q.Start()
	for _, ev := range events {
		if err := q.Deliver(ev); err != nil {
			t.Fatalf("Deliver: %v", err)
		}
	}
	q.Stop()
	return auth.zones
}

func TestQueueDeterministicReplay(t *testing.T) {
	clock := NewManualClock(time.Minute)
	sig := decodeSignal(t, "21/06/15,10:30:00-20,1", clock.ElapsedRealtime())

	events := []Event{
		CountryDetectedEvent{Country: "us"},
		SignalReceivedEvent{Signal: sig},
		NetworkUnavailableEvent{},
		CountryDetectedEvent{Country: "jp", Changed: true},
		AirplaneModeEvent{On: true},
	}

	first := replay(t, events)
	second := replay(t, events)

	if len(first) == 0 {
		t.Fatal("replay produced no zone suggestions")
	}
	if len(first) != len(second) {
		t.Fatalf("replays diverged: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("replay suggestion %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestQueueStopRejectsDelivery(t *testing.T) {
	auth := &fakeAuthority{autoTZ: true, autoT: true}
	q := NewQueue(newTestController(t, auth, NewManualClock(0)), 0)
	q.Start()
	q.Stop()

	if err := q.Deliver(NetworkAvailableEvent{}); err == nil {
		t.Error("Deliver succeeded on a stopped queue")
	}
}

func TestRegistryIndependentPhones(t *testing.T) {
	auths := map[int]*fakeAuthority{}
	reg := NewRegistry(func(phoneID int) *Queue {
		auth := &fakeAuthority{autoTZ: true, autoT: true}
		auths[phoneID] = auth
		cfg := DefaultConfig(phoneID)
		ctrl, err := NewController(cfg, auth, NewManualClock(time.Minute), nil, newTestLookup(), nil)
		if err != nil {
			t.Fatalf("NewController: %v", err)
		}
		return NewQueue(ctrl, 0)
	})

	q0 := reg.ForPhone(0)
	q1 := reg.ForPhone(1)
	if q0 == q1 {
		t.Fatal("phones share a queue")
	}
	if again := reg.ForPhone(0); again != q0 {
		t.Fatal("ForPhone(0) not stable")
	}

	if err := q0.Deliver(CountryDetectedEvent{Country: "jp"}); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	reg.StopAll()

	if got := auths[0].lastZone(); got != "Asia/Tokyo" {
		t.Errorf("phone 0 zone = %q, want Asia/Tokyo", got)
	}
	if len(auths[1].zones) != 0 {
		t.Errorf("phone 1 saw phone 0's events: %v", auths[1].zones)
	}
}
