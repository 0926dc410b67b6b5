// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reissue

import (
	"errors"
	"fmt"

	"github.com/reissue/reissue/reason"
)

// ErrBudgetExhausted matches, via errors.Is, any terminal error caused
// by using up the retries permitted by the effective policy, whether
// or not a transport failure is wrapped inside.
var ErrBudgetExhausted = errors.New("reissue: retry budget exhausted")

// ErrNonRetryable matches, via errors.Is, a terminal error caused by
// the failure predicate declining to retry a transport failure.
var ErrNonRetryable = errors.New("reissue: non-retryable failure")

// A BudgetExhaustedError is returned when a sequence ends because the
// effective retry budget was used up without a further failure to
// report: the engine was about to issue an attempt the budget no
// longer permits. It matches ErrBudgetExhausted.
type BudgetExhaustedError struct {
	// Attempts is the number of attempts made.
	Attempts int
	// Reason is the failure reason whose effective strategy exhausted
	// the budget; the zero Reason if no attempt ever completed.
	Reason reason.Reason
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("reissue: retry budget exhausted after %d attempts (reason %s)", e.Attempts, e.Reason)
}

// Is reports target == ErrBudgetExhausted.
func (e *BudgetExhaustedError) Is(target error) bool {
	return target == ErrBudgetExhausted
}

// A TransportError is returned when the effective retry budget is
// exhausted by a transport-level failure. It wraps the last failure
// and matches ErrBudgetExhausted.
type TransportError struct {
	// Attempts is the number of attempts made.
	Attempts int
	// Reason is the classified reason of the final failure.
	Reason reason.Reason
	// Cause is the final transport failure.
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("reissue: retry budget exhausted after %d attempts (reason %s): %v", e.Attempts, e.Reason, e.Cause)
}

// Unwrap returns the final transport failure.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is reports target == ErrBudgetExhausted.
func (e *TransportError) Is(target error) bool {
	return target == ErrBudgetExhausted
}

// A NonRetryableError is returned when the failure predicate declines
// to retry a transport failure, regardless of remaining budget. It
// wraps the failure and matches ErrNonRetryable.
type NonRetryableError struct {
	// Reason is the classified reason of the failure.
	Reason reason.Reason
	// Cause is the transport failure the predicate declined to retry.
	Cause error
}

func (e *NonRetryableError) Error() string {
	return fmt.Sprintf("reissue: non-retryable failure (reason %s): %v", e.Reason, e.Cause)
}

// Unwrap returns the declined transport failure.
func (e *NonRetryableError) Unwrap() error {
	return e.Cause
}

// Is reports target == ErrNonRetryable.
func (e *NonRetryableError) Is(target error) bool {
	return target == ErrNonRetryable
}
