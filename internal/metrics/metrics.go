// Package metrics provides lightweight, lock-free counters for tracking
// what happened during a guessnum session.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a guessnum session.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	reads     atomic.Int64
	guesses   atomic.Int64
	incorrect atomic.Int64
	invalid   atomic.Int64

	mu        sync.RWMutex
	startTime time.Time
	endTime   time.Time
	lastInput string
	solved    bool
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Input metrics ────────────────────────────────────────────────────

// LineRead records one line taken from the input provider, whether or
// not it parsed.
func (c *Collector) LineRead() {
	if c == nil {
		return
	}
	c.reads.Add(1)
}

// Reads returns the number of lines read.
func (c *Collector) Reads() int64 {
	if c == nil {
		return 0
	}
	return c.reads.Load()
}

// InvalidInput records a line that was not a whole number.
func (c *Collector) InvalidInput(text string) {
	if c == nil {
		return
	}
	c.invalid.Add(1)
	c.mu.Lock()
	c.lastInput = text
	c.mu.Unlock()
}

// InvalidInputs returns the number of malformed lines.
func (c *Collector) InvalidInputs() int64 {
	if c == nil {
		return 0
	}
	return c.invalid.Load()
}

// ── Guess metrics ────────────────────────────────────────────────────

// Guess records one evaluated guess.
func (c *Collector) Guess(correct bool) {
	if c == nil {
		return
	}
	c.guesses.Add(1)
	if !correct {
		c.incorrect.Add(1)
		return
	}
	c.mu.Lock()
	c.solved = true
	c.endTime = time.Now()
	c.mu.Unlock()
}

// Guesses returns the number of evaluated guesses.
func (c *Collector) Guesses() int64 {
	if c == nil {
		return 0
	}
	return c.guesses.Load()
}

// Incorrect returns the number of guesses that missed the target.
func (c *Collector) Incorrect() int64 {
	if c == nil {
		return 0
	}
	return c.incorrect.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Duration         string `json:"duration"`
	Reads            int64  `json:"reads"`
	Guesses          int64  `json:"guesses"`
	Incorrect        int64  `json:"incorrect"`
	InvalidInputs    int64  `json:"invalid_inputs"`
	Solved           bool   `json:"solved"`
	LastInvalidInput string `json:"last_invalid_input,omitempty"`
}

// Snapshot returns a copy of all current metrics.  Duration runs until
// the correct guess, or until now if the session is still open.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	end := c.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return Snapshot{
		Duration:         end.Sub(c.startTime).Truncate(time.Millisecond).String(),
		Reads:            c.reads.Load(),
		Guesses:          c.guesses.Load(),
		Incorrect:        c.incorrect.Load(),
		InvalidInputs:    c.invalid.Load(),
		Solved:           c.solved,
		LastInvalidInput: c.lastInput,
	}
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
