// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"

	"github.com/reissue/reissue/reason"
)

// DefaultRetryFailure is the default failure predicate. It retries
// timeouts, connection errors, and generic request errors, and retries
// failures carrying an HTTP status only when the status is a server
// error (5XX).
func DefaultRetryFailure(err error) bool {
	if status, ok := reason.HTTPStatus(err); ok {
		return status >= 500 && status <= 599
	}
	return true
}

// DefaultRetryResponse is the default response predicate. It retries
// server errors (5XX) and 429 Too Many Requests.
func DefaultRetryResponse(resp *http.Response) bool {
	return ServerErrorsAndRateLimit(resp)
}

// NetworkErrorsOnly retries only connection-level failures (timeouts,
// refused or reset connections), never failures carrying an HTTP
// status.
func NetworkErrorsOnly(err error) bool {
	return reason.IsTransient(err)
}

// ExceptClientErrors retries every failure except those carrying a
// client-error status (4XX).
func ExceptClientErrors(err error) bool {
	if status, ok := reason.HTTPStatus(err); ok {
		return status < 400 || status > 499
	}
	return true
}

// OnStatus builds a response predicate that retries exactly the given
// status codes.
func OnStatus(codes ...int) ResponsePredicate {
	cc := make([]int, len(codes))
	copy(cc, codes)
	return func(resp *http.Response) bool {
		if resp == nil {
			return false
		}
		for _, c := range cc {
			if resp.StatusCode == c {
				return true
			}
		}
		return false
	}
}

// ServerErrorsAndRateLimit retries responses with a server-error
// status (5XX) or status 429.
func ServerErrorsAndRateLimit(resp *http.Response) bool {
	if resp == nil {
		return false
	}
	return (resp.StatusCode >= 500 && resp.StatusCode <= 599) ||
		resp.StatusCode == http.StatusTooManyRequests
}
