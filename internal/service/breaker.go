package service

import (
	"sync"
	"time"

	"marketplace-settlement/pkg/apperror"
)

// BreakerState is the circuit breaker's current mode.
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "OPEN"
	case BreakerHalfOpen:
		return "HALF_OPEN"
	default:
		return "CLOSED"
	}
}

// halfOpenSuccessesToClose is how many consecutive probe successes are
// required before the breaker fully closes. A single success is not
// trusted as proof of recovery.
const halfOpenSuccessesToClose = 2

// CircuitBreaker guards the settlement paths against a failing store.
// CLOSED passes calls through and counts consecutive failures; reaching
// the threshold opens the breaker, which rejects calls without touching
// the protected resource until the reset timeout elapses. The next call
// then probes in HALF_OPEN; any probe failure reopens immediately.
//
// Each engine owns its own instance rather than a process-wide one, so
// tests and deployments can isolate failure domains.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	resetTimeout     time.Duration
	now              func() time.Time

	state       BreakerState
	failures    int
	successes   int
	probes      int
	totalCalls  int64
	nextAttempt time.Time
}

// NewCircuitBreaker creates a closed breaker with the given failure
// threshold and reset timeout.
func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
	}
}

// Allow reports whether a call may proceed. While open it returns a
// service-unavailable error advertising the remaining cool-down; once the
// cool-down elapses the call is admitted as a half-open probe.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.totalCalls++

	if b.state == BreakerOpen {
		now := b.now()
		if now.Before(b.nextAttempt) {
			retryAfter := int64(b.nextAttempt.Sub(now).Seconds()) + 1
			return apperror.ErrCircuitOpen(retryAfter)
		}
		b.state = BreakerHalfOpen
		b.successes = 0
		b.probes = 0
	}
	if b.state == BreakerHalfOpen {
		// Recovery is tested with a bounded number of in-flight trial
		// calls, not whatever burst arrives after the cool-down.
		if b.probes >= halfOpenSuccessesToClose {
			return apperror.ErrCircuitOpen(1)
		}
		b.probes++
	}
	return nil
}

// RecordSuccess notes a successful protected call.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		if b.probes > 0 {
			b.probes--
		}
		b.successes++
		if b.successes >= halfOpenSuccessesToClose {
			b.state = BreakerClosed
			b.failures = 0
			b.successes = 0
			b.probes = 0
		}
	default:
		b.failures = 0
	}
}

// RecordFailure notes a failed protected call. In HALF_OPEN a single
// failure reopens the breaker.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.trip()
	default:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.trip()
		}
	}
}

func (b *CircuitBreaker) trip() {
	b.state = BreakerOpen
	b.failures = 0
	b.successes = 0
	b.probes = 0
	b.nextAttempt = b.now().Add(b.resetTimeout)
}

// Reset closes the breaker immediately (operator intervention).
func (b *CircuitBreaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = BreakerClosed
	b.failures = 0
	b.successes = 0
	b.probes = 0
}

// State returns the current breaker state.
func (b *CircuitBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// TotalCalls returns how many calls have gone through Allow.
func (b *CircuitBreaker) TotalCalls() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalCalls
}
