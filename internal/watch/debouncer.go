package watch

import (
	"context"
	"sync"
	"time"
)

type pendingEvent struct {
	path      string
	eventType EventType
}

// eventDebouncer batches file events until no new event arrives for the
// debounce period. flush runs on the debouncer goroutine, so batches never
// overlap.
type eventDebouncer struct {
	debounce time.Duration
	in       chan pendingEvent
	flush    func(map[string]EventType)
}

func newEventDebouncer(debounce time.Duration, flush func(map[string]EventType)) *eventDebouncer {
	return &eventDebouncer{
		debounce: debounce,
		in:       make(chan pendingEvent, 64),
		flush:    flush,
	}
}

// addEvent queues an event. It gives up when ctx is done.
func (d *eventDebouncer) addEvent(ctx context.Context, path string, eventType EventType) {
	select {
	case d.in <- pendingEvent{path: path, eventType: eventType}:
	case <-ctx.Done():
	}
}

func (d *eventDebouncer) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	events := make(map[string]EventType)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-d.in:
			// the latest event for a path wins
			events[ev.path] = ev.eventType
			if timer == nil {
				timer = time.NewTimer(d.debounce)
			} else {
				timer.Reset(d.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if len(events) == 0 {
				continue
			}
			batch := events
			events = make(map[string]EventType)
			d.flush(batch)
		}
	}
}
