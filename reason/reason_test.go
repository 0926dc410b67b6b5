// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reason

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "dial tcp: i/o timeout" }
func (timeoutErr) Timeout() bool { return true }

type notTimeoutErr struct{}

func (notTimeoutErr) Error() string { return "no route to host" }
func (notTimeoutErr) Timeout() bool { return false }

type statusErr struct {
	status int
}

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e statusErr) HTTPStatus() int { return e.status }

func TestReasonIdentity(t *testing.T) {
	assert.Equal(t, RateLimit, RateLimit)
	assert.NotEqual(t, RateLimit, NetworkError)
	assert.Equal(t, Custom("DatabaseTimeout"), Custom("DatabaseTimeout"))
	assert.NotEqual(t, Custom("DatabaseTimeout"), Custom("CacheTimeout"))
	assert.True(t, Reason{}.IsZero())
	assert.False(t, NetworkError.IsZero())
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "NetworkError", NetworkError.String())
	assert.Equal(t, "ServerError", ServerError.String())
	assert.Equal(t, "RateLimit", RateLimit.String())
	assert.Equal(t, "RequestError", RequestError.String())
	assert.Equal(t, "DatabaseTimeout", Custom("DatabaseTimeout").String())
	assert.Equal(t, "<none>", Reason{}.String())
}

func TestReasonAsMapKey(t *testing.T) {
	m := map[Reason]int{
		NetworkError:     1,
		Custom("Weird"):  2,
		Custom("Weird2"): 3,
	}
	assert.Equal(t, 1, m[NetworkError])
	assert.Equal(t, 2, m[Custom("Weird")])
	assert.Equal(t, 3, m[Custom("Weird2")])
}

func TestFromError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Reason
	}{
		{"nil", nil, RequestError},
		{"timeout", timeoutErr{}, NetworkError},
		{"wrapped timeout", &url.Error{Op: "Get", URL: "x", Err: timeoutErr{}}, NetworkError},
		{"connection refused", syscall.ECONNREFUSED, NetworkError},
		{"connection reset", &url.Error{Op: "Get", URL: "x", Err: syscall.ECONNRESET}, NetworkError},
		{"status 500", statusErr{500}, ServerError},
		{"status 503", statusErr{503}, ServerError},
		{"wrapped status 599", fmt.Errorf("send: %w", statusErr{599}), ServerError},
		{"status 404", statusErr{404}, RequestError},
		{"status 429 on error", statusErr{429}, RequestError},
		{"plain error", errors.New("malformed request"), RequestError},
		{"not a timeout", notTimeoutErr{}, RequestError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromError(tc.err))
		})
	}
}

func TestFromResponse(t *testing.T) {
	testCases := []struct {
		status int
		want   Reason
	}{
		{200, RequestError},
		{204, RequestError},
		{301, RequestError},
		{400, RequestError},
		{404, RequestError},
		{429, RateLimit},
		{500, ServerError},
		{502, ServerError},
		{599, ServerError},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status=%d", tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, FromResponse(&http.Response{StatusCode: tc.status}))
		})
	}
	t.Run("nil response", func(t *testing.T) {
		assert.Equal(t, RequestError, FromResponse(nil))
	})
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.True(t, IsTransient(timeoutErr{}))
	assert.True(t, IsTransient(syscall.ECONNREFUSED))
	assert.True(t, IsTransient(syscall.ECONNRESET))
	assert.False(t, IsTransient(syscall.EPIPE))
	assert.False(t, IsTransient(errors.New("nope")))
	assert.False(t, IsTransient(notTimeoutErr{}))
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(timeoutErr{}))
	assert.True(t, IsTimeout(fmt.Errorf("attempt: %w", timeoutErr{})))
	assert.False(t, IsTimeout(notTimeoutErr{}))
	assert.False(t, IsTimeout(nil))
}

func TestHTTPStatus(t *testing.T) {
	status, ok := HTTPStatus(statusErr{502})
	assert.True(t, ok)
	assert.Equal(t, 502, status)
	status, ok = HTTPStatus(fmt.Errorf("wrapped: %w", statusErr{418}))
	assert.True(t, ok)
	assert.Equal(t, 418, status)
	_, ok = HTTPStatus(errors.New("no status"))
	assert.False(t, ok)
	_, ok = HTTPStatus(nil)
	assert.False(t, ok)
}
