// Package transport carries events from the polling context to the dispatch
// context in the order they were sent.
package transport

import (
	"errors"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/metrics"
)

// ErrClosed is returned when sending on a closed transport.
var ErrClosed = errors.New("transport closed")

// Unbounded can be passed to New to create a queue which never blocks the
// sender.
const Unbounded = -1

// Emitter is the sending half of a transport.
type Emitter interface {
	// Send enqueues an event. event.None is discarded without being queued.
	// Send returns ErrClosed if the transport has been closed.
	Send(event.Event) error
}

// Queue is an ordered, single-consumer event transport.
type Queue interface {
	Emitter

	// Recv blocks until an event is available. It returns false once the
	// queue has been closed and every queued event has been received.
	Recv() (event.Event, bool)

	// TryRecv returns the next event without blocking, if there is one.
	TryRecv() (event.Event, bool)

	// Len returns the number of events waiting to be received.
	Len() int

	// Close closes the queue. Further sends fail; queued events can still be
	// received. Close may be called from either side, more than once.
	Close()
}

// New creates a Queue. A capacity of 0 creates a rendezvous queue, where
// Send blocks until the receiver takes the event. A positive capacity
// creates a bounded queue, and a negative capacity (Unbounded) creates a
// queue whose Send never blocks.
func New(capacity int) Queue {
	if capacity < 0 {
		return newUnbounded()
	}
	return newBounded(capacity)
}

// filter reports whether evt should be discarded at the transport boundary.
func filter(evt event.Event) bool {
	if event.IsNone(evt) {
		metrics.RecordFiltered()
		return true
	}
	return false
}
