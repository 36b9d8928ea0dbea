package detection

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
)

// Queue serializes event delivery to a Controller. The controller's handlers
// require single-writer discipline; producers on any goroutine go through
// Deliver and the queue dispatches sequentially.
type Queue struct {
	ctrl   *Controller
	events chan Event
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewQueue wraps ctrl with a delivery queue of the given buffer size.
func NewQueue(ctrl *Controller, buffer int) *Queue {
	if buffer < 0 {
		buffer = 0
	}
	return &Queue{
		ctrl:   ctrl,
		events: make(chan Event, buffer),
	}
}

// Start begins dispatching. Events delivered before Start sit in the buffer.
func (q *Queue) Start() {
	q.ctx, q.cancel = context.WithCancel(context.Background())

	q.wg.Add(1)
	go q.run()
}

func (q *Queue) run() {
	defer q.wg.Done()
	for {
		select {
		case <-q.ctx.Done():
			return
		case ev := <-q.events:
			q.dispatch(ev)
		}
	}
}

func (q *Queue) dispatch(ev Event) {
	switch e := ev.(type) {
	case SignalReceivedEvent:
		q.ctrl.HandleSignalReceived(e.Signal)
	case CountryDetectedEvent:
		q.ctrl.HandleCountryDetected(e.Country, e.Changed)
	case CountryUnavailableEvent:
		q.ctrl.HandleCountryUnavailable()
	case NetworkAvailableEvent:
		q.ctrl.HandleNetworkAvailable()
	case NetworkUnavailableEvent:
		q.ctrl.HandleNetworkUnavailable()
	case AirplaneModeEvent:
		q.ctrl.HandleAirplaneModeChanged(e.On)
	case AutoTimeZoneEnabledEvent:
		q.ctrl.HandleAutoTimeZoneEnabled()
	default:
		zlog.Warn().Msgf("Unknown event type: %T", ev)
	}
}

// Deliver enqueues an event, blocking while the buffer is full. It fails
// once the queue has been stopped.
func (q *Queue) Deliver(ev Event) error {
	if q.ctx == nil {
		return errors.New("queue not started")
	}
	select {
	case <-q.ctx.Done():
		return errors.New("queue stopped")
	case q.events <- ev:
		return nil
	}
}

// Stop halts dispatch and waits for the in-flight event to finish. Buffered
// undispatched events are dropped.
func (q *Queue) Stop() {
	if q.cancel != nil {
		q.cancel()
	}
	q.wg.Wait()
}
