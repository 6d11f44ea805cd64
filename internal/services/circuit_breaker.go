package services

import (
	"errors"
	"sync"
	"time"

	"expense-tracker-web/internal/config"
	"expense-tracker-web/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// CircuitBreaker stops calling the finance API after MaxFailures consecutive
// transport failures and probes it again once ResetTimeout has passed.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            config.CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
	onStateChange     func(models.CircuitBreakerState)
}

func NewCircuitBreaker(cfg config.CircuitBreakerConfig, onStateChange func(models.CircuitBreakerState)) CircuitBreakerInterface {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}
	if cfg.HalfOpenMaxSucc < 1 {
		cfg.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config:        cfg,
		state:         models.CircuitClosed,
		now:           time.Now,
		onStateChange: onStateChange,
	}
}

// Allow returns ErrCircuitBreakerOpen while the breaker is open. An open
// breaker whose reset timeout has elapsed moves to half-open and lets the
// call through.
func (cb *CircuitBreaker) Allow() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == models.CircuitOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.halfOpenSuccesses = 0
		cb.setState(models.CircuitHalfOpen)
	}

	if cb.state == models.CircuitOpen {
		return ErrCircuitBreakerOpen
	}
	return nil
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case models.CircuitHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.failures = 0
			cb.halfOpenSuccesses = 0
			cb.setState(models.CircuitClosed)
		}
	case models.CircuitClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case models.CircuitHalfOpen:
		cb.halfOpenSuccesses = 0
		cb.setState(models.CircuitOpen)
	case models.CircuitClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.halfOpenSuccesses = 0
			cb.setState(models.CircuitOpen)
		}
	}
}

func (cb *CircuitBreaker) setState(state models.CircuitBreakerState) {
	if cb.state == state {
		return
	}
	cb.state = state
	if cb.onStateChange != nil {
		cb.onStateChange(state)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
