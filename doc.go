// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reissue augments outbound HTTP requests with automated
retry-on-failure behavior: it re-issues a logically idempotent request
until it succeeds, is declared non-retryable, or exhausts its retry
budget, sleeping out a configurable backoff delay between attempts.

Create a Client to begin making requests. The zero value works:

	client := &reissue.Client{}
	ex, err := client.Get("https://www.example.com")
	...
	ex, err := client.Post("https://www.example.com/upload",
		"application/json", &buf)

For control over how individual attempts are sent, supply a custom
HTTPDoer, typically a configured http.Client:

	client := &reissue.Client{
		HTTPDoer: &http.Client{Timeout: 10 * time.Second},
	}

For control over retry decisions and timing, build a policy with
package retry. After every completed attempt the policy classifies the
outcome into a failure reason (package reason), resolves the effective
strategy for that reason, and decides whether and how long to wait:

	policy := retry.NewPolicy(
		retry.WithMaxRetries(5),
		retry.WithBaseDelay(200*time.Millisecond),
		retry.WithBackoff(backoff.ExponentialJitter),
		retry.WithOverride(reason.RateLimit, retry.NewOverride().
			MaxRetries(10).
			BaseDelay(time.Second)),
	)
	client := &reissue.Client{Policy: policy}

To hook into the fine-grained details of the attempt loop, install
handlers into the appropriate handler chains; LogHandler and package
metrics provide ready-made ones:

	handlers := &reissue.HandlerGroup{}
	handlers.PushBack(reissue.BeforeAttempt, reissue.HandlerFunc(
		func(_ reissue.Event, e *request.Execution) {
			log.Printf("attempt %d to %s", e.Attempt, e.Request.URL)
		}))
	client := &reissue.Client{Handlers: handlers}

Package reissue also provides basic interfaces for each method of the
client (Doer, Getter, Header, Poster, FormPoster, IdleCloser), a
combined Executor interface, and utility functions for working with a
Doer (Inflate, Get, Head, Post, and PostForm).
*/
package reissue
