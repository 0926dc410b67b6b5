// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reissue

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// sequence starts. When it fires, the execution is non-nil but
	// only its plan and ID are set.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// request attempt. When it fires, the execution's request field
	// holds the HTTP request that WILL BE sent once all BeforeAttempt
	// handlers have finished; handlers may adjust it, but should clone
	// reference-typed fields (URL, Header) before changing them, since
	// those initially alias the plan.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after an attempt
	// produced an HTTP response but before the response body is read
	// and buffered. It never fires for an attempt that ended in error,
	// and always fires when a response arrives, whatever its status.
	BeforeReadBody
	// AfterAttempt identifies the event that occurs after each attempt
	// concludes, successfully or not, and before the retry policy is
	// consulted. At least one of the execution's response and error
	// fields is non-nil; both are non-nil only when reading the
	// response body failed.
	AfterAttempt
	// AfterExecutionEnd identifies the event that occurs after the
	// sequence ends. The execution is in its final state and its end
	// time is set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttempt",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur during
// a sequence, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttempt,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
