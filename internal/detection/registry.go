package detection

import "github.com/puzpuzpuz/xsync/v3"

// Registry holds one started Queue per phone. Each modem gets its own
// independent engine instance; there is no shared singleton.
type Registry struct {
	queues  *xsync.MapOf[int, *Queue]
	factory func(phoneID int) *Queue
}

// NewRegistry builds a registry. factory constructs (but must not start) the
// queue for a phone seen for the first time.
func NewRegistry(factory func(phoneID int) *Queue) *Registry {
	return &Registry{
		queues:  xsync.NewMapOf[int, *Queue](),
		factory: factory,
	}
}

// ForPhone returns the queue for a phone, creating and starting it on first
// use. Safe for concurrent use.
func (r *Registry) ForPhone(phoneID int) *Queue {
	q, _ := r.queues.LoadOrCompute(phoneID, func() *Queue {
		nq := r.factory(phoneID)
		nq.Start()
		return nq
	})
	return q
}

// StopAll stops every queue and empties the registry.
func (r *Registry) StopAll() {
	r.queues.Range(func(phoneID int, q *Queue) bool {
		q.Stop()
		r.queues.Delete(phoneID)
		return true
	})
}
