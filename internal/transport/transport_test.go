package transport_test

import (
	"sync"
	"testing"
	"time"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/transport"
)

var capacities = map[string]int{
	"rendezvous": 0,
	"bounded":    4,
	"unbounded":  transport.Unbounded,
}

func TestOrdering(t *testing.T) {
	const n = 1000
	for name, capacity := range capacities {
		t.Run(name, func(t *testing.T) {
			q := transport.New(capacity)
			go func() {
				for i := 0; i < n; i += 1 {
					if err := q.Send(event.WindowMove{X: int32(i)}); err != nil {
						t.Error(err)
						return
					}
					// None is filtered and must not disturb the order.
					_ = q.Send(event.None{})
				}
				q.Close()
			}()
			for i := 0; ; i += 1 {
				evt, ok := q.Recv()
				if !ok {
					if i != n {
						t.Fatalf("received %d events, want %d", i, n)
					}
					return
				}
				if evt != (event.WindowMove{X: int32(i)}) {
					t.Fatalf("event %d: got %s", i, evt)
				}
			}
		})
	}
}

func TestSendAfterClose(t *testing.T) {
	for name, capacity := range capacities {
		t.Run(name, func(t *testing.T) {
			q := transport.New(capacity)
			q.Close()
			q.Close()
			if err := q.Send(event.Tick{}); err != transport.ErrClosed {
				t.Fatalf("got %v, want ErrClosed", err)
			}
			if _, ok := q.Recv(); ok {
				t.Fatal("Recv on closed, empty queue returned an event")
			}
		})
	}
}

func TestCloseUnblocksSender(t *testing.T) {
	q := transport.New(0)
	errs := make(chan error)
	go func() {
		errs <- q.Send(event.Tick{})
	}()
	time.Sleep(10 * time.Millisecond)
	q.Close()
	select {
	case err := <-errs:
		if err != transport.ErrClosed {
			t.Fatalf("got %v, want ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("sender was not unblocked by Close")
	}
}

func TestDrainAfterClose(t *testing.T) {
	for _, capacity := range []int{8, transport.Unbounded} {
		q := transport.New(capacity)
		for i := 0; i < 3; i += 1 {
			if err := q.Send(event.WindowResize{Width: uint32(i)}); err != nil {
				t.Fatal(err)
			}
		}
		q.Close()
		for i := 0; i < 3; i += 1 {
			evt, ok := q.Recv()
			if !ok {
				t.Fatalf("capacity %d: queue closed before event %d was received", capacity, i)
			}
			if evt != (event.WindowResize{Width: uint32(i)}) {
				t.Fatalf("capacity %d: event %d: got %s", capacity, i, evt)
			}
		}
		if _, ok := q.Recv(); ok {
			t.Fatalf("capacity %d: received event after drain", capacity)
		}
	}
}

func TestNoneFiltered(t *testing.T) {
	q := transport.New(transport.Unbounded)
	if err := q.Send(event.None{}); err != nil {
		t.Fatal(err)
	}
	if err := q.Send(nil); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 0 {
		t.Fatalf("got length %d, want 0", q.Len())
	}
	if _, ok := q.TryRecv(); ok {
		t.Fatal("TryRecv returned a filtered event")
	}
}

func TestUnboundedNeverBlocks(t *testing.T) {
	q := transport.New(transport.Unbounded)
	for i := 0; i < 10000; i += 1 {
		if err := q.Send(event.Tick{}); err != nil {
			t.Fatal(err)
		}
	}
	if q.Len() != 10000 {
		t.Fatalf("got length %d, want 10000", q.Len())
	}
	for i := 0; i < 10000; i += 1 {
		if _, ok := q.TryRecv(); !ok {
			t.Fatalf("missing event %d", i)
		}
	}
}

func TestMultipleProducers(t *testing.T) {
	q := transport.New(transport.Unbounded)
	wg := sync.WaitGroup{}
	for p := 0; p < 4; p += 1 {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 250; i += 1 {
				_ = q.Send(event.WindowMove{X: int32(p), Y: int32(i)})
			}
		}(p)
	}
	wg.Wait()
	q.Close()

	// Order is FIFO per producer.
	last := map[int32]int32{0: -1, 1: -1, 2: -1, 3: -1}
	count := 0
	for {
		evt, ok := q.Recv()
		if !ok {
			break
		}
		move := evt.(event.WindowMove)
		if move.Y != last[move.X]+1 {
			t.Fatalf("producer %d: got %d after %d", move.X, move.Y, last[move.X])
		}
		last[move.X] = move.Y
		count += 1
	}
	if count != 1000 {
		t.Fatalf("received %d events, want 1000", count)
	}
}
