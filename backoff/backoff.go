// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package backoff provides pure functions for computing the delay
// before a retry attempt.
//
// Every function in this package satisfies the Func contract: given a
// non-negative attempt number, a base delay, a multiplier, and a
// maximum delay, it returns a delay in the range [0, max]. The
// functions never panic; when the underlying arithmetic would overflow
// they saturate to the maximum delay.
//
// Exponential is the default used by retry.NewPolicy. Pick a different
// function with retry.WithBackoff, or per failure reason with an
// override:
//
//	policy := retry.NewPolicy(retry.WithBackoff(backoff.Fibonacci))
package backoff

import (
	"hash/fnv"
	"math"
	"strconv"
	"time"
)

// A Func computes the delay to wait before the attempt-th retry.
// Attempt 1 is the first retry. Implementations must be pure, must
// never return a negative duration, and must never return more than
// max.
type Func func(attempt int, base time.Duration, multiplier float64, max time.Duration) time.Duration

// Exponential is the classic exponential backoff formula,
//
//	delay = base * multiplier^attempt
//
// capped at max. It is the default backoff function.
func Exponential(attempt int, base time.Duration, multiplier float64, max time.Duration) time.Duration {
	return capped(float64(base)*pow(multiplier, attempt), max)
}

// Linear grows the delay by base on every attempt,
//
//	delay = base * attempt
//
// capped at max. At attempt 0 the delay is zero. The multiplier is
// ignored.
func Linear(attempt int, base time.Duration, _ float64, max time.Duration) time.Duration {
	return capped(float64(base)*float64(attempt), max)
}

// Fixed waits base before every retry, ignoring the multiplier and the
// cap. At attempt 0 the delay is zero.
func Fixed(attempt int, base time.Duration, _ float64, _ time.Duration) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if base < 0 {
		return 0
	}
	return base
}

// Fibonacci scales base by the Fibonacci sequence,
//
//	delay = base * max(F(attempt+1), 1)
//
// capped at max, where F(1) = 1, F(2) = 1, F(3) = 2, and so on with
// saturating addition. The multiplier is ignored.
func Fibonacci(attempt int, base time.Duration, _ float64, max time.Duration) time.Duration {
	m := fib(attempt + 1)
	if m < 1 {
		m = 1
	}
	return capped(float64(base)*float64(m), max)
}

// ExponentialJitter is Exponential with a deterministic per-attempt
// jitter that scales the raw delay into the band [0.5, 1.0) of its
// unjittered value, capped at max. The jitter fraction is drawn from a
// stable hash of the attempt number, so concurrent sequences that are
// on the same attempt still spread out, while the function itself stays
// reproducible for a given attempt.
func ExponentialJitter(attempt int, base time.Duration, multiplier float64, max time.Duration) time.Duration {
	raw := float64(base) * pow(multiplier, attempt)
	jittered := raw * (0.5 + 0.5*jitter(attempt))
	return capped(jittered, max)
}

// jitter returns a fraction in [0, 1) derived from a 64-bit FNV-1a
// hash of the attempt number. Not cryptographic; it only needs to
// decorrelate sequences sharing an attempt number.
func jitter(attempt int) float64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.Itoa(attempt)))
	return float64(h.Sum64()%1000) / 1000.0
}

// fib returns the n-th Fibonacci number with saturating addition, so
// large attempt numbers stick at math.MaxUint64 instead of wrapping.
func fib(n int) uint64 {
	if n <= 0 {
		return 0
	}
	var a, b uint64 = 0, 1
	for i := 2; i <= n; i++ {
		next := a + b
		if next < b {
			next = math.MaxUint64
		}
		a, b = b, next
	}
	return b
}

// pow computes multiplier^attempt, saturating to +Inf rather than
// producing NaN for degenerate inputs.
func pow(multiplier float64, attempt int) float64 {
	p := math.Pow(multiplier, float64(attempt))
	if math.IsNaN(p) {
		return math.Inf(1)
	}
	return p
}

// capped converts a float delay to a time.Duration in [0, max].
// Overflow, infinity, and any value beyond max saturate to max.
func capped(delay float64, max time.Duration) time.Duration {
	if max < 0 {
		max = 0
	}
	if math.IsNaN(delay) || delay < 0 {
		return 0
	}
	if delay >= float64(max) {
		return max
	}
	return time.Duration(delay)
}
