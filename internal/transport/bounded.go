package transport

import (
	"sync"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/metrics"
)

// bounded is a Queue backed by a channel. With a capacity of 0 it is a
// rendezvous.
type bounded struct {
	ch   chan event.Event
	done chan struct{}
	once sync.Once
}

func newBounded(capacity int) *bounded {
	return &bounded{
		ch:   make(chan event.Event, capacity),
		done: make(chan struct{}),
	}
}

// Send implements Emitter.
func (q *bounded) Send(evt event.Event) error {
	if filter(evt) {
		return nil
	}
	// Check for closure first so that a send racing with Close on a queue
	// with free capacity does not succeed after the queue was closed.
	select {
	case <-q.done:
		metrics.RecordRejected()
		return ErrClosed
	default:
	}
	select {
	case q.ch <- evt:
		metrics.RecordSent()
		metrics.UpdateDepth(len(q.ch))
		return nil
	case <-q.done:
		metrics.RecordRejected()
		return ErrClosed
	}
}

// Recv implements Queue.
func (q *bounded) Recv() (event.Event, bool) {
	select {
	case evt := <-q.ch:
		metrics.UpdateDepth(len(q.ch))
		return evt, true
	case <-q.done:
		// Drain whatever was buffered before the close.
		return q.TryRecv()
	}
}

// TryRecv implements Queue.
func (q *bounded) TryRecv() (event.Event, bool) {
	select {
	case evt := <-q.ch:
		metrics.UpdateDepth(len(q.ch))
		return evt, true
	default:
		return nil, false
	}
}

// Len implements Queue.
func (q *bounded) Len() int {
	return len(q.ch)
}

// Close implements Queue.
func (q *bounded) Close() {
	q.once.Do(func() {
		close(q.done)
	})
}
