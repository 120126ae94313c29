package selectmirror

import (
	"sync"
	"time"
)

// Process-wide interaction policy. No instance owns it; every engine's
// handlers read it at event time.
var policy struct {
	mu            sync.RWMutex
	preventNative bool
}

// PreventNative switches every engine, including instances that are
// already open, to outside-click dismissal instead of the mouse-leave
// grace timer, and disables the touch-native fallback so touch hosts
// behave like desktop ones. The switch latches once set.
func PreventNative() {
	policy.mu.Lock()
	policy.preventNative = true
	policy.mu.Unlock()
}

func nativePrevented() bool {
	policy.mu.RLock()
	defer policy.mu.RUnlock()
	return policy.preventNative
}

// closeGrace is how long an open list survives the pointer leaving it.
const closeGrace = 250 * time.Millisecond

// TimerFunc starts a single-shot timer and returns a stop function.
type TimerFunc func(d time.Duration, fn func()) (stop func())

// startTimer is the package-level timer source, replaceable for testing.
var startTimer TimerFunc = func(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// SetTimerFunc replaces the close-grace timer source. Returns the
// previous function so callers can restore it during cleanup.
func SetTimerFunc(fn TimerFunc) TimerFunc {
	prev := startTimer
	startTimer = fn
	return prev
}
