package auction

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// PhaseTimer is a single-slot countdown. Each activation ticks once per
// second and emits at most one expiry. Start and Reset atomically replace any
// running activation, so a stale expiry can never fire after a newer
// countdown has begun: every activation carries a generation number, and
// callers compare the generation delivered to their callback against Gen()
// while holding their own lock before acting on it.
type PhaseTimer struct {
	clock clockwork.Clock

	mu        sync.Mutex
	gen       uint64
	remaining int
	stop      chan struct{}
	onTick    func(remaining int)
	onExpire  func(gen uint64)
}

// NewPhaseTimer returns a timer driven by the given clock. Tests pass a
// clockwork fake clock to step time deterministically.
func NewPhaseTimer(clock clockwork.Clock) *PhaseTimer {
	return &PhaseTimer{clock: clock}
}

// Start begins a countdown of the given number of seconds, cancelling any
// activation already running. onTick fires after every elapsed second with
// the seconds left; onExpire fires exactly once when the countdown reaches
// zero, carrying the activation's generation.
func (t *PhaseTimer) Start(seconds int, onTick func(remaining int), onExpire func(gen uint64)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = onTick
	t.onExpire = onExpire
	t.startLocked(seconds)
}

// Reset restarts the countdown from the given duration using the callbacks
// from the last Start. No expiry is emitted for the replaced activation.
func (t *PhaseTimer) Reset(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startLocked(seconds)
}

func (t *PhaseTimer) startLocked(seconds int) {
	t.cancelLocked()
	t.remaining = seconds
	t.stop = make(chan struct{})
	go t.run(t.gen, t.stop)
}

// Cancel stops the countdown without emitting an expiry. The remaining value
// is left as-is for display.
func (t *PhaseTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Set cancels any running countdown and pins the displayed remaining value,
// e.g. to show a full budget for a phase that has not started yet.
func (t *PhaseTimer) Set(seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.remaining = seconds
}

func (t *PhaseTimer) cancelLocked() {
	t.gen++
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Remaining returns the seconds left on the current or last countdown.
func (t *PhaseTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Gen returns the current activation generation. An expiry whose generation
// does not match is stale and must be ignored.
func (t *PhaseTimer) Gen() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen
}

func (t *PhaseTimer) run(gen uint64, stop chan struct{}) {
	ticker := t.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			t.mu.Lock()
			if gen != t.gen {
				t.mu.Unlock()
				return
			}
			t.remaining--
			remaining := t.remaining
			onTick := t.onTick
			onExpire := t.onExpire
			t.mu.Unlock()

			if onTick != nil {
				onTick(remaining)
			}
			if remaining <= 0 {
				if onExpire != nil {
					onExpire(gen)
				}
				return
			}
		}
	}
}
