// Package emitter is a small process-local event emitter carrying native
// accessibility state-change notifications. Platform backends publish into
// it; the a11yinfo facade subscribes application listeners to it.
package emitter

import "sync"

// Channel names a native notification channel.
type Channel string

const (
	// ReduceMotionDidChange fires when the OS reduce-motion setting flips.
	ReduceMotionDidChange Channel = "reduceMotionDidChange"
	// TouchExplorationDidChange fires when the screen reader / touch
	// exploration service starts or stops.
	TouchExplorationDidChange Channel = "touchExplorationDidChange"
)

// Emitter dispatches boolean state-change events to registered listeners.
// Safe for concurrent use.
type Emitter struct {
	mu        sync.Mutex
	nextID    int
	listeners map[Channel]map[int]func(enabled bool)
}

// New creates an empty emitter.
func New() *Emitter {
	return &Emitter{listeners: make(map[Channel]map[int]func(bool))}
}

// AddListener registers fn on the given channel and returns a subscription
// that removes it. Listeners on the same channel are independent; the same
// function may be registered more than once.
func (e *Emitter) AddListener(ch Channel, fn func(enabled bool)) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners[ch] == nil {
		e.listeners[ch] = make(map[int]func(bool))
	}
	e.nextID++
	id := e.nextID
	e.listeners[ch][id] = fn
	return &Subscription{emitter: e, channel: ch, id: id}
}

// Emit invokes every listener registered on the channel with the new state.
// Listeners run synchronously on the calling goroutine, outside the lock.
func (e *Emitter) Emit(ch Channel, enabled bool) {
	e.mu.Lock()
	fns := make([]func(bool), 0, len(e.listeners[ch]))
	for _, fn := range e.listeners[ch] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(enabled)
	}
}

// ListenerCount returns the number of live listeners on the channel.
func (e *Emitter) ListenerCount(ch Channel) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners[ch])
}

func (e *Emitter) remove(ch Channel, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners[ch], id)
}

// Subscription is the handle returned by AddListener. Remove unregisters the
// listener; calling it more than once is harmless.
type Subscription struct {
	emitter *Emitter
	channel Channel
	id      int
	once    sync.Once
}

// Remove unregisters the listener from the emitter.
func (s *Subscription) Remove() {
	s.once.Do(func() {
		s.emitter.remove(s.channel, s.id)
	})
}
