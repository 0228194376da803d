package gin

import "time"

// SetClock replaces the limiter's time source.
func (l *ClientLimiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	l.lastSweep = now()
}
