// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"

	"github.com/reissue/reissue/reason"
)

// An Execution is the state of a single retry sequence executed from a
// Plan.
//
// The engine creates one Execution when the sequence starts, updates it
// as attempts complete and retries are scheduled, and returns it as the
// final result. An Execution is owned by exactly one sequence and must
// not be shared with other concurrently running sequences.
//
// Event handlers and retry policies may stash their own data on an
// Execution with SetValue/Value, but should treat the exported fields
// as read-only: they are the sequence's working state.
type Execution struct {
	// Plan is the request plan being executed. It is never nil.
	Plan *Plan

	// ID is an opaque identifier for this execution, assigned when the
	// sequence starts. It correlates log lines and telemetry emitted
	// for the same sequence.
	ID string

	// Start is the time the sequence started. It is set once and never
	// changes afterward.
	Start time.Time

	// End is the time the sequence ended. It is zero while the
	// sequence is in flight.
	End time.Time

	// Attempt is the zero-based index of the current attempt: zero for
	// the initial attempt, one for the first retry, and so on. When
	// the sequence has ended it holds the index of the final attempt,
	// which equals the number of retries used.
	Attempt int

	// Reason is the failure reason classified from the most recently
	// completed attempt. It is the zero Reason before the first
	// attempt completes.
	Reason reason.Reason

	// Request is the HTTP request sent, or about to be sent, in the
	// current attempt.
	Request *http.Request

	// Response is the HTTP response received in the most recent
	// attempt, or nil if the attempt ended in an error or no attempt
	// has completed.
	Response *http.Response

	// Err is the error from the most recent attempt, or nil if the
	// attempt produced a response. While the sequence is in flight,
	// Err fluctuates between nil and non-nil values; once the sequence
	// has ended it equals the error returned by the engine, and a
	// transport-level error always has type *url.Error.
	Err error

	// Body is the fully buffered response body from the most recent
	// attempt. Treat it as invalid unless Err is nil.
	Body []byte

	// data carries handler-owned values. See SetValue.
	data context.Context
}

// StatusCode returns the status code of the HTTP response from the
// most recent attempt, or 0 if there is no response.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Header returns the HTTP response headers from the most recent
// attempt. If there is no response the nil header is returned, which
// is safe for read-only use.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}
	return e.Response.Header
}

// Duration returns the duration of the execution: zero before it
// starts, time elapsed since Start while in flight, and End minus
// Start once it has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. Once it has, there
// will be no further changes to the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// SetValue stores an arbitrary value on the execution for later
// retrieval with Value. The key follows the same rules as the key
// parameter of context.WithValue: non-nil, comparable, and preferably
// of an unexported type to avoid collisions between handlers.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}
	e.data = context.WithValue(ctx, key, value)
}

// Value returns the value associated with key by a previous SetValue,
// or nil.
func (e *Execution) Value(key interface{}) interface{} {
	if e.data == nil {
		return nil
	}
	return e.data.Value(key)
}
