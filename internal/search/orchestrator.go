package search

import (
	"strings"
	"sync"
	"time"
)

const (
	defaultDebounce  = 300 * time.Millisecond
	defaultMinLength = 2
)

// Orchestrator turns a stream of keystroke updates into at most one
// dispatch per quiet period. A query below the minimum length cancels any
// pending dispatch and fires the clear callback instead. Every update bumps
// a token; a timer that fires with a stale token does nothing, so a slow
// tick can never deliver results for an abandoned query.
type Orchestrator struct {
	mu       sync.Mutex
	debounce time.Duration
	minLen   int
	token    uint64
	timer    *time.Timer
	closed   bool

	dispatch func(query string)
	clear    func()
}

type Option func(*Orchestrator)

func WithDebounce(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.debounce = d
		}
	}
}

func WithMinLength(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.minLen = n
		}
	}
}

func WithClear(clear func()) Option {
	return func(o *Orchestrator) {
		o.clear = clear
	}
}

func NewOrchestrator(dispatch func(query string), opts ...Option) *Orchestrator {
	o := &Orchestrator{
		debounce: defaultDebounce,
		minLen:   defaultMinLength,
		dispatch: dispatch,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Update registers the latest keystroke state.
func (o *Orchestrator) Update(query string) {
	trimmed := strings.TrimSpace(query)

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}

	o.token++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}

	if len(trimmed) < o.minLen {
		clear := o.clear
		o.mu.Unlock()
		if clear != nil {
			clear()
		}
		return
	}

	token := o.token
	o.timer = time.AfterFunc(o.debounce, func() {
		o.mu.Lock()
		if o.closed || token != o.token {
			o.mu.Unlock()
			return
		}
		o.timer = nil
		o.mu.Unlock()
		o.dispatch(trimmed)
	})
	o.mu.Unlock()
}

// Close cancels any pending dispatch. Further updates are ignored.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.token++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}
