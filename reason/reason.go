// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reason

import "net/http"

// A Reason categorizes why a request attempt failed or produced an
// unfavorable response. The retry policy looks reasons up to find
// per-reason overrides, and telemetry snapshots carry the reason that
// drove each retry.
//
// Reason values compare by value: two Custom reasons built from equal
// strings are equal. The zero Reason means "no reason assigned yet"
// (no attempt has completed); IsZero reports it.
type Reason struct {
	name string
}

var (
	// NetworkError covers connection-level trouble: timeouts, refused
	// or reset connections, DNS failures surfacing as timeouts.
	NetworkError = Reason{name: "NetworkError"}
	// ServerError covers responses, or errors carrying a status, in
	// the 5XX range.
	ServerError = Reason{name: "ServerError"}
	// RateLimit covers 429 Too Many Requests responses.
	RateLimit = Reason{name: "RateLimit"}
	// RequestError covers everything else: malformed or unsendable
	// requests, client errors, and responses with no better category.
	RequestError = Reason{name: "RequestError"}
)

// Custom builds an application-defined reason. Use custom reasons with
// a custom classifier to route specific failures to their own retry
// strategy, for example:
//
//	dbTimeout := reason.Custom("DatabaseTimeout")
func Custom(name string) Reason {
	return Reason{name: name}
}

// IsZero reports whether r is the zero Reason, i.e. no reason has been
// assigned.
func (r Reason) IsZero() bool {
	return r.name == ""
}

// String returns the reason's name. The zero Reason prints as "<none>".
func (r Reason) String() string {
	if r.name == "" {
		return "<none>"
	}
	return r.name
}

// FromError is the default error classifier. It maps connection and
// timeout errors to NetworkError; errors carrying an HTTP status (see
// HTTPStatus) to ServerError if the status is 5XX, else RequestError;
// and everything else, including request construction problems, to
// RequestError.
//
// FromError is total: it never panics, and a nil error classifies as
// RequestError.
func FromError(err error) Reason {
	if IsTransient(err) {
		return NetworkError
	}
	if status, ok := HTTPStatus(err); ok {
		if status >= 500 && status <= 599 {
			return ServerError
		}
		return RequestError
	}
	return RequestError
}

// FromResponse is the default response classifier. Status 429 maps to
// RateLimit, 5XX statuses map to ServerError, and every other response
// maps to RequestError.
//
// FromResponse is total: a nil response classifies as RequestError.
func FromResponse(resp *http.Response) Reason {
	if resp == nil {
		return RequestError
	}
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return RateLimit
	case resp.StatusCode >= 500 && resp.StatusCode <= 599:
		return ServerError
	default:
		return RequestError
	}
}
