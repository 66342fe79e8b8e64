package server

import (
	"sync"
	"time"
)

// eventLimiter is a sliding-window limit on the events one websocket client
// may send. Clients that keep exceeding it are held off for a doubling
// backoff, capped at maxBackoff.
type eventLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mutex        sync.Mutex
	stamps       []time.Time
	violations   int
	lastViolated time.Time
	backoffUntil time.Time
}

const (
	baseBackoff = time.Second
	maxBackoff  = 30 * time.Second
)

// newEventLimiter allows max events per window. A non-positive max returns
// nil, which allows everything.
func newEventLimiter(max int, window time.Duration) *eventLimiter {
	if max <= 0 {
		return nil
	}
	return &eventLimiter{
		max:    max,
		window: window,
		now:    time.Now,
		stamps: make([]time.Time, 0, max),
	}
}

// Allow records an event and reports whether it is within the limit.
func (l *eventLimiter) Allow() bool {
	if l == nil {
		return true
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	if now.Before(l.backoffUntil) {
		l.violate(now)
		return false
	}

	l.expire(now)
	if len(l.stamps) >= l.max {
		l.violate(now)
		return false
	}

	// forgive clients that behaved for two windows
	if l.violations > 0 && now.Sub(l.lastViolated) > 2*l.window {
		l.violations = 0
		l.backoffUntil = time.Time{}
	}
	l.stamps = append(l.stamps, now)
	return true
}

// violate must be called with mutex held.
func (l *eventLimiter) violate(now time.Time) {
	l.violations++
	l.lastViolated = now
	backoff := baseBackoff
	for i := 1; i < l.violations && backoff < maxBackoff; i++ {
		backoff *= 2
	}
	l.backoffUntil = now.Add(min(backoff, maxBackoff))
}

// expire must be called with mutex held.
func (l *eventLimiter) expire(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}
