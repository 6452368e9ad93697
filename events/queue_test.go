package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/ripplefx/constants"
	"github.com/lixenwraith/ripplefx/input"
)

// TestQueueBasic tests basic push and drain operations
func TestQueueBasic(t *testing.T) {
	q := NewQueue()

	q.Push(input.Event{Action: input.ActionPress, Surface: 1, X: 1})
	q.Push(input.Event{Action: input.ActionRelease, Surface: 1, X: 2})
	q.Push(input.Event{Action: input.ActionCancel, Surface: 2, X: 3})

	drained := q.Drain()
	if len(drained) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(drained))
	}

	// Verify events are in FIFO order
	if drained[0].Action != input.ActionPress || drained[0].X != 1 {
		t.Errorf("Event 1 mismatch: %+v", drained[0])
	}
	if drained[1].Action != input.ActionRelease || drained[1].X != 2 {
		t.Errorf("Event 2 mismatch: %+v", drained[1])
	}
	if drained[2].Action != input.ActionCancel || drained[2].X != 3 {
		t.Errorf("Event 3 mismatch: %+v", drained[2])
	}

	// Second drain should return nothing
	if again := q.Drain(); len(again) != 0 {
		t.Errorf("Expected 0 events on second drain, got %d", len(again))
	}
}

// TestQueueConcurrent tests concurrent push operations from multiple goroutines
func TestQueueConcurrent(t *testing.T) {
	q := NewQueue()
	numGoroutines := 8
	eventsPerGoroutine := 16
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				q.Push(input.Event{
					Action: input.ActionPress,
					X:      id,
					Y:      j,
				})
			}
		}(i)
	}

	wg.Wait()

	drained := q.Drain()
	if len(drained) != totalEvents {
		t.Errorf("Expected %d events, got %d", totalEvents, len(drained))
	}

	// Per-producer ordering must hold even when producers interleave
	lastY := make(map[int]int)
	for _, ev := range drained {
		if prev, ok := lastY[ev.X]; ok && ev.Y <= prev {
			t.Errorf("Producer %d out of order: %d after %d", ev.X, ev.Y, prev)
		}
		lastY[ev.X] = ev.Y
	}
}

// TestQueueOverflow verifies oldest events are dropped when full
func TestQueueOverflow(t *testing.T) {
	q := NewQueue()
	total := constants.EventQueueSize + 10

	for i := 0; i < total; i++ {
		q.Push(input.Event{Action: input.ActionPress, X: i})
	}

	drained := q.Drain()
	if len(drained) != constants.EventQueueSize {
		t.Fatalf("Expected %d events after overflow, got %d", constants.EventQueueSize, len(drained))
	}

	// The survivors must be the newest events, still in order
	if drained[0].X != 10 {
		t.Errorf("Expected oldest surviving event X=10, got %d", drained[0].X)
	}
	if drained[len(drained)-1].X != total-1 {
		t.Errorf("Expected newest event X=%d, got %d", total-1, drained[len(drained)-1].X)
	}
}
