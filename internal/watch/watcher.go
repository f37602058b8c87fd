// Package watch polls the host for screen transitions and publishes them as
// events, so hosts that cannot push "screen appeared" notifications still
// drive the engine.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/kestrelaudio/screenvoice/internal/host"
)

// Event conveys an observed screen transition.
type Event struct {
	Screen host.Screen
}

// Watcher polls the host context at a fixed interval and emits an event
// whenever the active screen changes.
type Watcher struct {
	ctxq     host.ContextQuery
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling immediately.
func NewWatcher(ctxq host.ContextQuery, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		ctxq:     ctxq,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	w.wg.Add(1)
	go w.poll()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns the channel of screen transitions.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current probe; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	throttle := newThrottle(w.interval / 4)
	last := host.Screen("\x00unseen")

	probe := func() bool {
		throttle.wait()
		screen := w.ctxq.ActiveContext().Screen
		if screen == last {
			return true
		}
		last = screen
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Screen: screen}:
			return true
		}
	}

	if !probe() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !probe() {
				return
			}
		}
	}
}
