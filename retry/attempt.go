// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"log/slog"
	"time"

	"github.com/reissue/reissue/reason"
)

// An Attempt is an immutable telemetry snapshot describing one attempt
// transition. The engine builds one per retry (passed to the on-retry
// observer before the delay) and one on budget-exhausted failure
// (passed to the on-failure observer). Observers must not retain the
// snapshot's Err beyond the callback.
type Attempt struct {
	// ExecutionID correlates the snapshot with the sequence that
	// produced it.
	ExecutionID string
	// Attempt is the zero-based index of the attempt the snapshot
	// describes: 1 for the first retry, and so on.
	Attempt int
	// MaxAttempts is the total attempt budget in effect for the
	// classified reason: the effective maximum retries plus one for
	// the initial attempt.
	MaxAttempts int
	// Delay is the computed wait before the attempt. Zero on a
	// failure snapshot.
	Delay time.Duration
	// Err is the transport failure that drove the transition, or nil
	// when a response drove it.
	Err error
	// ResponseStatus is the HTTP status of the response that drove the
	// transition, or 0 when a transport failure drove it.
	ResponseStatus int
	// Reason is the failure reason classified from the attempt.
	Reason reason.Reason
}

// An Observer receives attempt telemetry. Observers are best-effort:
// a panicking observer is logged and otherwise ignored, and never
// aborts the sequence.
type Observer func(a Attempt)

// NotifyRetry invokes the on-retry observer, if any, with a snapshot
// of the retry about to be scheduled.
func (p *Policy) NotifyRetry(a Attempt) {
	p.logger.Debug("retry scheduled",
		slog.String("execution", a.ExecutionID),
		slog.Int("attempt", a.Attempt),
		slog.Int("max_attempts", a.MaxAttempts),
		slog.Duration("delay", a.Delay),
		slog.String("reason", a.Reason.String()))
	p.observe(p.onRetry, "on_retry", a)
}

// NotifyFailure invokes the on-failure observer, if any, with a
// snapshot of the exhausted sequence.
func (p *Policy) NotifyFailure(a Attempt) {
	p.logger.Debug("retries exhausted",
		slog.String("execution", a.ExecutionID),
		slog.Int("attempt", a.Attempt),
		slog.Int("max_attempts", a.MaxAttempts),
		slog.String("reason", a.Reason.String()))
	p.observe(p.onFailure, "on_failure", a)
}

func (p *Policy) observe(o Observer, name string, a Attempt) {
	if o == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("retry observer panicked",
				slog.String("observer", name),
				slog.String("execution", a.ExecutionID),
				slog.Any("panic", r))
		}
	}()
	o(a)
}
