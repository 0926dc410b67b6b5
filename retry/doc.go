// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides the retry policy consulted by the reissue
// engine after every request attempt: how many retries to allow, how
// long to wait between them, which failures and responses warrant a
// retry, and how failures are classified into reasons.
//
// A Policy is immutable once constructed and safe to share between any
// number of concurrently executing sequences. Build one with NewPolicy
// and functional options:
//
//	policy := retry.NewPolicy(
//		retry.WithMaxRetries(5),
//		retry.WithBaseDelay(200*time.Millisecond),
//		retry.WithBackoff(backoff.Fibonacci),
//	)
//
// Per-reason overrides layer a partial policy over the base values for
// one failure reason. Unset override fields fall back to the base
// policy:
//
//	policy := retry.NewPolicy(
//		retry.WithMaxRetries(3),
//		retry.WithOverride(reason.RateLimit, retry.NewOverride().
//			MaxRetries(10).
//			BaseDelay(time.Second)),
//	)
//
// The engine resolves the effective Strategy for the current failure
// reason once per completed attempt; the first attempt always runs
// under the base policy because no reason has been classified yet.
package retry
