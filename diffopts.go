package bytepatch

import "time"

// unbounded is the sentinel deadline meaning "run to completion regardless
// of wall-clock cost" (§9: "the source uses epoch milliseconds with a
// sentinel 'unbounded'; prefer an optional deadline in the target").
var unbounded = time.Time{}

// diffConfig holds the resolved settings for a single Build call.
type diffConfig struct {
	deadline  time.Time // zero value (unbounded) means no deadline
	halfMatch bool
}

func defaultDiffConfig() *diffConfig {
	return &diffConfig{
		deadline:  time.Now().Add(time.Second),
		halfMatch: true,
	}
}

// DiffOption configures a Build call.
type DiffOption func(*diffConfig)

// WithDeadline bounds Build's wall-clock budget. When the deadline passes
// mid-bisect, the current subproblem degrades to a single DELETE/INSERT
// pair rather than continuing to search (§4.1.3, §5). A zero or negative
// duration is already expired by the time bisect checks it, not unbounded;
// callers wanting no budget at all must use WithUnboundedDeadline.
func WithDeadline(d time.Duration) DiffOption {
	return func(c *diffConfig) {
		c.deadline = time.Now().Add(d)
	}
}

// WithUnboundedDeadline removes the wall-clock budget entirely. Per §4.1.2
// this also disables the half-match heuristic, since half-match trades
// minimality for speed and an unbounded caller is asking for the minimal
// script; WithHalfMatch(true) does not re-enable it under an unbounded
// deadline.
func WithUnboundedDeadline() DiffOption {
	return func(c *diffConfig) {
		c.deadline = unbounded
		c.halfMatch = false
	}
}

// WithHalfMatch sets whether the half-match heuristic runs under a bounded
// deadline. Under an unbounded deadline half-match never runs, whatever
// this is set to. Exposed mainly for tests that need to pin down bisect
// behavior deterministically.
func WithHalfMatch(enabled bool) DiffOption {
	return func(c *diffConfig) {
		c.halfMatch = enabled
	}
}

func (c *diffConfig) isUnbounded() bool {
	return c.deadline.Equal(unbounded)
}

func (c *diffConfig) expired() bool {
	return !c.isUnbounded() && time.Now().After(c.deadline)
}
