// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var template, _ = http.NewRequest("GET", "", nil)

const nilCtxMsg = "reissue/request: nil context"

// ErrNotReusable is returned when a raw *http.Request cannot be adopted
// into a Plan because its body cannot be replayed: the request has a
// body but no GetBody function. A retrying engine must be able to
// produce an equivalent request for every attempt, so this is a fatal
// configuration error, not a retryable one.
var ErrNotReusable = errors.New("reissue/request: request body is not reusable (no GetBody)")

// A Plan describes a logical HTTP request that may be issued more than
// once.
//
// A Plan differs from the lower-level http.Request in that every field,
// including the body, is a plain value that can be converted into a
// fresh http.Request for each attempt the retry engine decides to make.
// Server-only and stream-oriented fields of http.Request have no
// counterpart here.
//
// Like http.Request, a Plan carries a context. The context governs the
// whole sequence executed from the plan: every attempt, every retry
// wait, and every event handler run. Cancelling it aborts whichever of
// those is outstanding.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). An
	// empty string means GET.
	Method string

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Header contains the request header fields sent on every attempt.
	Header http.Header

	// Body is the pre-buffered request body. A nil or empty body means
	// no request body is sent.
	Body []byte

	// Close stipulates whether to close the connection after each
	// attempt, preventing TCP connection reuse between attempts.
	Close bool

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host is sent.
	Host string

	// ctx governs the whole sequence executed from this plan. Modify
	// it only by copying the Plan with WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. Readers are drained into a byte
// slice so the body can be replayed on retry.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body. The context may not be nil.
//
// Parameter body accepts the same types as NewPlan.
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, fmt.Errorf("reissue/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// FromRequest adopts a raw http.Request into a Plan.
//
// The request's method, URL, headers, host, and context are copied.
// If the request has a body, it must be replayable: GetBody must be
// non-nil, as it is on requests built by http.NewRequest from a
// buffered reader. A request whose body cannot be replayed returns
// ErrNotReusable immediately, before any attempt is made.
func FromRequest(r *http.Request) (*Plan, error) {
	var body []byte
	if r.Body != nil && r.Body != http.NoBody {
		if r.GetBody == nil {
			return nil, ErrNotReusable
		}
		rc, err := r.GetBody()
		if err != nil {
			return nil, fmt.Errorf("reissue/request: %w: %v", ErrNotReusable, err)
		}
		body, err = BodyBytes(rc)
		if err != nil {
			return nil, err
		}
	}
	u := *r.URL
	return &Plan{
		ctx:    r.Context(),
		Method: r.Method,
		URL:    &u,
		Header: r.Header.Clone(),
		Body:   body,
		Close:  r.Close,
		Host:   r.Host,
	}, nil
}

// Context returns the plan's context, defaulting to the background
// context. The context is never nil.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// SetBasicAuth sets the plan's Authorization header to use HTTP Basic
// Authentication with the provided username and password, which are
// sent unencrypted.
func (p *Plan) SetBasicAuth(username, password string) {
	auth := username + ":" + password
	p.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
}

// ToRequest creates the HTTP request for one attempt of the plan. The
// context of the new request is set to ctx, which may not be nil.
// ToRequest may be called any number of times; each call produces an
// equivalent, independently sendable request.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = p.Method
	r.URL = p.URL
	r.Header = p.Header
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Close = p.Close
	r.Host = p.Host
	return r
}

// hasPort reports whether a string of the form "host", "host:port", or
// "[ipv6::address]:port" includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort strips the empty port in ":port" to "" as mandated
// by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
