// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reissue

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reissue/reissue/request"
	"github.com/reissue/reissue/retry"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package. It is the
// transport collaborator that performs one network exchange per call.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response, following
	// the contract documented on http.Client.Do.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// state is the phase of one retry sequence. A sequence starts ready,
// alternates between attempting and sleeping, and ends in exactly one
// of the terminal states; the driver loop returns on the terminal
// transition, so a finished sequence can never be driven again.
type state int

const (
	stateReady state = iota
	stateAttempting
	stateSleeping
	stateSucceeded
	stateFailed
)

// A Client augments outbound HTTP requests with automated retry
// behavior. Its zero value is a valid configuration, using
// http.DefaultClient as the HTTPDoer, retry.DefaultPolicy as the retry
// policy, and no event handlers.
//
// Client is safe for concurrent use by multiple goroutines: every Do
// call runs an independent sequence, and concurrent sequences share
// only the immutable policy.
//
// A Client is higher-level than its HTTPDoer. The HTTPDoer owns all
// the mechanics of a single exchange (connections, redirects, per
// attempt timeouts); on top of it, Client re-issues the request when
// an attempt fails or produces an unfavorable response, waits out the
// computed backoff delay between attempts, buffers the response body
// into Execution.Body, and invokes handler plug-in points within the
// attempt loop.
//
// The engine adds no deadline of its own beyond the backoff delays.
// To bound a whole sequence in time, give the plan a context with a
// deadline.
type Client struct {
	// HTTPDoer specifies the mechanics of sending one HTTP request
	// and receiving the response. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
	// Policy decides whether to retry each completed attempt and how
	// long to sleep first. If nil, retry.DefaultPolicy is used.
	Policy *retry.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a sequence. If nil, no custom
	// handlers run.
	Handlers *HandlerGroup
}

// Do executes a retry sequence for the given request plan and returns
// its final state.
//
// Do issues the first attempt unconditionally, then consults the retry
// policy after each completed attempt: the attempt's outcome is
// classified into a failure reason, the effective strategy for that
// reason is resolved, and the retry predicates decide whether another
// attempt is worth making. When a retry is scheduled, Do sleeps for
// the delay computed by the effective backoff function, then issues
// the next attempt; attempts continue until a response is accepted, a
// failure is declared non-retryable, or the effective budget runs out.
//
// The returned Execution is never nil. The error is nil when the
// sequence ends with an accepted response, even one with a non-2XX
// status: the retry policy governs retries, not outcome validity.
// Otherwise the error is one of the terminal types *TransportError,
// *BudgetExhaustedError, or *NonRetryableError, or the plan context's
// error (wrapped in *url.Error) if the sequence was cancelled.
//
// Cancelling the plan's context immediately cancels the outstanding
// attempt or backoff timer; a cancelled sequence emits no telemetry
// for the attempt that never ran.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	e := &request.Execution{
		Plan: p,
		ID:   uuid.NewString(),
	}

	doer := c.doer()
	policy := c.policy()
	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()

	var (
		st    = stateReady
		delay time.Duration
	)
	for {
		switch st {
		case stateReady:
			// The effective budget for the last classified reason
			// guards against re-entering after the final permitted
			// sleep. Before the first completed attempt e.Reason is
			// zero and the base policy applies, so the initial
			// attempt is always issued.
			strat := policy.Strategy(e.Reason)
			if e.Attempt > strat.MaxRetries {
				e.Err = &BudgetExhaustedError{Attempts: e.Attempt, Reason: e.Reason}
				st = stateFailed
				continue
			}
			e.Request = p.ToRequest(p.Context())
			st = stateAttempting
		case stateAttempting:
			sendAndReceive(p, e, doer, handlers)
			handlers.run(AfterAttempt, e)
			if ctxErr := p.Context().Err(); ctxErr != nil {
				e.Err = urlErrorWrap(p, ctxErr)
				st = stateFailed
			} else if e.Err != nil {
				st, delay = afterFailure(policy, e)
			} else {
				st, delay = afterResponse(policy, e)
			}
		case stateSleeping:
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
				e.Response = nil
				e.Err = nil
				e.Body = nil
				st = stateReady
			case <-p.Context().Done():
				timer.Stop()
				e.Err = urlErrorWrap(p, p.Context().Err())
				st = stateFailed
			}
		case stateSucceeded, stateFailed:
			e.End = time.Now()
			handlers.run(AfterExecutionEnd, e)
			return e, e.Err
		}
	}
}

// DoRequest adopts a raw http.Request and executes a retry sequence
// for it. The request must be re-issuable: if it has a body but no
// GetBody function, DoRequest fails immediately with
// request.ErrNotReusable and makes no attempt.
func (c *Client) DoRequest(r *http.Request) (*request.Execution, error) {
	p, err := request.FromRequest(r)
	if err != nil {
		return nil, err
	}
	return c.Do(p)
}

// afterFailure decides the transition out of a completed attempt that
// ended in a transport failure. Classification and strategy resolution
// always run, so the execution's reason is recorded even when the
// predicate declines; the predicate's verdict is terminal regardless
// of remaining budget.
func afterFailure(policy *retry.Policy, e *request.Execution) (state, time.Duration) {
	r := policy.ClassifyFailure(e.Err)
	e.Reason = r
	strat := policy.Strategy(r)
	if !policy.ShouldRetryFailure(e.Err) {
		e.Err = &NonRetryableError{Reason: r, Cause: e.Err}
		return stateFailed, 0
	}
	if e.Attempt >= strat.MaxRetries {
		policy.NotifyFailure(retry.Attempt{
			ExecutionID: e.ID,
			Attempt:     e.Attempt,
			MaxAttempts: strat.MaxRetries + 1,
			Err:         e.Err,
			Reason:      r,
		})
		e.Err = &TransportError{Attempts: e.Attempt + 1, Reason: r, Cause: e.Err}
		return stateFailed, 0
	}
	e.Attempt++
	d := strat.Delay(e.Attempt)
	policy.NotifyRetry(retry.Attempt{
		ExecutionID: e.ID,
		Attempt:     e.Attempt,
		MaxAttempts: strat.MaxRetries + 1,
		Delay:       d,
		Err:         e.Err,
		Reason:      r,
	})
	return stateSleeping, d
}

// afterResponse decides the transition out of a completed attempt that
// produced an HTTP response. A response the policy declines to retry,
// or lacks remaining budget to retry, ends the sequence successfully:
// the response is delivered to the caller whatever its status.
func afterResponse(policy *retry.Policy, e *request.Execution) (state, time.Duration) {
	r := policy.ClassifyResponse(e.Response)
	e.Reason = r
	strat := policy.Strategy(r)
	if !policy.ShouldRetryResponse(e.Response) {
		return stateSucceeded, 0
	}
	if e.Attempt >= strat.MaxRetries {
		return stateSucceeded, 0
	}
	e.Attempt++
	d := strat.Delay(e.Attempt)
	policy.NotifyRetry(retry.Attempt{
		ExecutionID:    e.ID,
		Attempt:        e.Attempt,
		MaxAttempts:    strat.MaxRetries + 1,
		Delay:          d,
		ResponseStatus: e.StatusCode(),
		Reason:         r,
	})
	return stateSleeping, d
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup) {
	handlers.run(BeforeAttempt, e)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	} else {
		readBody(p, e, handlers)
	}
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
//
// To make a request plan with custom headers, use request.NewPlan and
// Client.Do.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
func (c *Client) Head(url string) (*request.Execution, error) {
	return Head(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewPlan and request.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser.
func (c *Client) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.NewPlan and Client.Do.
func (c *Client) PostForm(url string, data url.Values) (*request.Execution, error) {
	return PostForm(c, url, data)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer, if it has one; otherwise it does nothing.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Client) policy() *retry.Policy {
	if c.Policy == nil {
		return retry.DefaultPolicy
	}
	return c.Policy
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}
	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp mirrors the operation naming of net/http/client.go.
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
