package transport

import (
	"sync"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/metrics"
)

// unbounded is a Queue backed by a growable slice. Send never blocks.
type unbounded struct {
	mu     sync.Mutex
	items  []event.Event
	head   int
	closed bool

	// ready holds a token whenever items may be non-empty or the queue has
	// been closed.
	ready chan struct{}
}

func newUnbounded() *unbounded {
	return &unbounded{
		items: make([]event.Event, 0, 64),
		ready: make(chan struct{}, 1),
	}
}

// Send implements Emitter.
func (q *unbounded) Send(evt event.Event) error {
	if filter(evt) {
		return nil
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		metrics.RecordRejected()
		return ErrClosed
	}
	q.items = append(q.items, evt)
	n := len(q.items) - q.head
	q.mu.Unlock()

	metrics.RecordSent()
	metrics.UpdateDepth(n)
	q.signal()
	return nil
}

// Recv implements Queue.
func (q *unbounded) Recv() (event.Event, bool) {
	for {
		q.mu.Lock()
		if evt, ok := q.pop(); ok {
			q.mu.Unlock()
			return evt, true
		}
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return nil, false
		}
		<-q.ready
	}
}

// TryRecv implements Queue.
func (q *unbounded) TryRecv() (event.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pop()
}

// Len implements Queue.
func (q *unbounded) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Close implements Queue.
func (q *unbounded) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

// pop removes the oldest event. The caller must hold q.mu.
func (q *unbounded) pop() (event.Event, bool) {
	if q.head == len(q.items) {
		return nil, false
	}
	evt := q.items[q.head]
	q.items[q.head] = nil
	q.head += 1
	if q.head == len(q.items) {
		// Reuse the backing array once the queue has been emptied.
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 0 && q.head >= cap(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		for i := n; i < len(q.items); i += 1 {
			q.items[i] = nil
		}
		q.items = q.items[:n]
		q.head = 0
	}
	metrics.UpdateDepth(len(q.items) - q.head)
	return evt, true
}

// signal wakes a receiver blocked in Recv, if any.
func (q *unbounded) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
