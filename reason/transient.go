// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reason

import (
	"errors"
	"syscall"
)

// IsTimeout reports whether err, or any error it wraps, exposes a
// Timeout method that returns true. This matches client-side attempt
// timeouts as reported by net and net/http errors.
//
// IsTimeout deliberately ignores the Temporary method found on some
// network errors, as its semantics are too loose to base a retry
// decision on.
func IsTimeout(err error) bool {
	var t hasTimeout
	return errors.As(err, &t) && t.Timeout()
}

// IsTransient reports whether err looks like connection-level trouble
// with some prospect of succeeding on a later attempt: a timeout, a
// refused connection, or a reset connection.
//
// A refused connection may be a permanent condition, but it also occurs
// while a service on the remote host is starting or restarting, so it
// is treated as transient. A reset connection commonly indicates a
// premature service shutdown or a load balancer dropping the
// connection, both of which tend to clear quickly.
//
// IsTransient inspects wrapped causes via errors.As/errors.Is, and
// returns false for a nil error.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if IsTimeout(err) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ECONNRESET || errno == syscall.ECONNREFUSED
	}
	return false
}

// HTTPStatus extracts an HTTP status code from an error whose chain
// exposes an HTTPStatus method. Transport wrappers that convert
// non-2XX responses into errors typically expose the status this way;
// the default classifier uses it to separate server errors from
// request errors.
func HTTPStatus(err error) (int, bool) {
	var s hasHTTPStatus
	if errors.As(err, &s) {
		return s.HTTPStatus(), true
	}
	return 0, false
}

type hasTimeout interface {
	Timeout() bool
}

type hasHTTPStatus interface {
	HTTPStatus() int
}
