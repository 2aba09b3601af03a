package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned by Allow while the cooldown is running or
// the half-open probe budget is spent.
var ErrBreakerOpen = errors.New("breaker open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

// BreakerConfig tunes the breaker. Zero values fall back to defaults
// sized for a short batch run against one upstream.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	Cooldown         time.Duration
	ProbeBudget      int
}

// Breaker guards the single stats-API client of a batch run. There is
// no request volume to sample rates over, so the failure signal is a
// plain streak counter: the breaker trips after FailureThreshold
// consecutive failures and stays open for one cooldown. After the
// cooldown up to ProbeBudget requests may pass as probes; one probe
// failure reopens, a full budget of probe successes closes.
type Breaker struct {
	mu sync.Mutex

	threshold int
	cooldown  time.Duration
	budget    int

	state     State
	streak    int
	openedAt  time.Time
	probes    int
	probeWins int
	clock     func() time.Time
}

func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = 5
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 15 * time.Second
	}
	if cfg.ProbeBudget < 1 {
		cfg.ProbeBudget = 1
	}

	return &Breaker{
		threshold: cfg.FailureThreshold,
		cooldown:  cfg.Cooldown,
		budget:    cfg.ProbeBudget,
		state:     StateClosed,
		clock:     time.Now,
	}
}

// Allow reports whether the next request may proceed. A call that
// passes during half-open consumes one probe slot; its outcome must be
// fed back through Report.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.clock().Sub(b.openedAt) < b.cooldown {
			return ErrBreakerOpen
		}
		b.state = StateHalfOpen
		b.probes, b.probeWins = 0, 0
	}

	if b.state == StateHalfOpen {
		if b.probes >= b.budget {
			return ErrBreakerOpen
		}
		b.probes++
	}

	return nil
}

// Report feeds the outcome of one allowed request back in. A nil err
// counts as success.
func (b *Breaker) Report(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.fail()
		return
	}

	switch b.state {
	case StateClosed:
		b.streak = 0
	case StateHalfOpen:
		if b.probes > 0 {
			b.probes--
		}
		b.probeWins++
		if b.probeWins >= b.budget && b.probes == 0 {
			b.state = StateClosed
			b.streak = 0
			b.openedAt = time.Time{}
		}
	}
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.clock().Sub(b.openedAt) >= b.cooldown {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) fail() {
	switch b.state {
	case StateClosed:
		b.streak++
		if b.streak >= b.threshold {
			b.trip()
		}
	case StateHalfOpen:
		b.trip()
	case StateOpen:
		// A straggler failing while already open extends the cooldown.
		b.openedAt = b.clock()
	}
}

func (b *Breaker) trip() {
	b.state = StateOpen
	b.openedAt = b.clock()
	b.probes, b.probeWins = 0, 0
}
