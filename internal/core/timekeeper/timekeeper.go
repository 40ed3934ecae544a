package timekeeper

import (
	"sync"
	"time"
)

// DefaultFrameInterval is used when Config.FrameInterval is not positive.
const DefaultFrameInterval = 200 * time.Millisecond

// Config contains runtime options for TimeKeeper.
type Config struct {
	FrameInterval time.Duration
}

// TimeKeeper schedules redraw frames for the UI.
// It carries no timer state; subscribers recompute everything per frame.
type TimeKeeper struct {
	mu      sync.Mutex
	options Config
	events  []chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a TimeKeeper with the provided options.
func New(options Config) *TimeKeeper {
	if options.FrameInterval <= 0 {
		options.FrameInterval = DefaultFrameInterval
	}
	return &TimeKeeper{options: options}
}

// FrameInterval returns the delay between frames.
func (keeper *TimeKeeper) FrameInterval() time.Duration {
	return keeper.options.FrameInterval
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the frame loop. Calling Start on a running keeper is a no-op.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	keeper.doneCh = make(chan struct{})
	stopCh, doneCh := keeper.stopCh, keeper.doneCh
	keeper.mu.Unlock()

	go keeper.run(stopCh, doneCh)
}

// Stop terminates the frame loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	doneCh := keeper.doneCh
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	<-doneCh
	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) run(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(keeper.options.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			keeper.emit(Event{Type: EventFrame, At: tickTime})
		}
	}
}

func (keeper *TimeKeeper) emit(event Event) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.emitLocked(event)
}

// emitLocked never blocks; a slow observer simply misses frames.
func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
