// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/reissue/reissue/backoff"
)

// An Override is a partial policy scoped to a single failure reason.
// Every field is optional; fields left unset fall back to the base
// policy during resolution.
//
// Override setters copy and return, so an Override builds up like a
// literal:
//
//	retry.NewOverride().MaxRetries(10).BaseDelay(time.Second)
type Override struct {
	maxRetries *int
	baseDelay  *time.Duration
	maxDelay   *time.Duration
	multiplier *float64
	backoff    backoff.Func
}

// NewOverride returns an Override with no fields set.
func NewOverride() Override {
	return Override{}
}

// MaxRetries returns a copy of o with the maximum retry count set.
// Negative values are treated as zero.
func (o Override) MaxRetries(n int) Override {
	if n < 0 {
		n = 0
	}
	o.maxRetries = &n
	return o
}

// BaseDelay returns a copy of o with the base delay set.
func (o Override) BaseDelay(d time.Duration) Override {
	o.baseDelay = &d
	return o
}

// MaxDelay returns a copy of o with the maximum delay set.
func (o Override) MaxDelay(d time.Duration) Override {
	o.maxDelay = &d
	return o
}

// Multiplier returns a copy of o with the backoff multiplier set.
func (o Override) Multiplier(m float64) Override {
	o.multiplier = &m
	return o
}

// Backoff returns a copy of o with the backoff function set.
func (o Override) Backoff(f backoff.Func) Override {
	o.backoff = f
	return o
}
