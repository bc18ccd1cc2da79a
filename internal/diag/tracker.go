// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package diag provides resource accounting for the calculator. The
// Tracker is an ordinary value, constructed and passed explicitly by
// whoever wants the accounting, and torn down with a final Report. It
// plays no role in arithmetic correctness.
package diag

import (
	"sort"
	"sync"
	"time"

	"github.com/liuyuxun641102/liuyuxun/internal/logging"
)

// Stats is a point-in-time snapshot of tracker counters.
type Stats struct {
	Operations   int            // total evaluations recorded
	ByOperator   map[string]int // evaluations per operator token
	DigitsTotal  uint64         // result digits produced over the lifetime
	PeakDigits   int            // widest single result seen
	Uptime       time.Duration
}

// Tracker accumulates evaluation statistics. The zero value is not usable;
// construct with New. All methods are safe for concurrent use. A nil
// Tracker is a valid no-op receiver, so callers can thread an optional
// tracker without nil checks at every site.
type Tracker struct {
	mu          sync.Mutex
	start       time.Time
	operations  int
	byOperator  map[string]int
	digitsTotal uint64
	peakDigits  int
}

// New constructs an empty Tracker with its clock started.
func New() *Tracker {
	return &Tracker{
		start:      time.Now(),
		byOperator: make(map[string]int),
	}
}

// Record notes one completed evaluation: the operator token and the number
// of decimal digits in the result(s).
func (t *Tracker) Record(operator string, resultDigits int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations++
	t.byOperator[operator]++
	t.digitsTotal += uint64(resultDigits)
	if resultDigits > t.peakDigits {
		t.peakDigits = resultDigits
	}
}

// Snapshot returns a copy of the current counters.
func (t *Tracker) Snapshot() Stats {
	if t == nil {
		return Stats{ByOperator: map[string]int{}}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	by := make(map[string]int, len(t.byOperator))
	for k, v := range t.byOperator {
		by[k] = v
	}
	return Stats{
		Operations:  t.operations,
		ByOperator:  by,
		DigitsTotal: t.digitsTotal,
		PeakDigits:  t.peakDigits,
		Uptime:      time.Since(t.start),
	}
}

// Report logs the final statistics. Call once at shutdown.
func (t *Tracker) Report() {
	if t == nil {
		return
	}
	s := t.Snapshot()
	logging.Infof("session stats: %d evaluations, %d result digits, peak result width %d, uptime %s",
		s.Operations, s.DigitsTotal, s.PeakDigits, s.Uptime.Round(time.Second))
	ops := make([]string, 0, len(s.ByOperator))
	for op := range s.ByOperator {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		logging.Debugf("  %s: %d", op, s.ByOperator[op])
	}
}
