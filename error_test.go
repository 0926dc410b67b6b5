// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reissue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reissue/reissue/reason"
)

func TestBudgetExhaustedError(t *testing.T) {
	err := &BudgetExhaustedError{Attempts: 4, Reason: reason.ServerError}
	assert.ErrorIs(t, err, ErrBudgetExhausted)
	assert.NotErrorIs(t, err, ErrNonRetryable)
	assert.Contains(t, err.Error(), "4 attempts")
	assert.Contains(t, err.Error(), "ServerError")

	t.Run("zero reason", func(t *testing.T) {
		err := &BudgetExhaustedError{Attempts: 1}
		assert.Contains(t, err.Error(), "<none>")
	})
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := &TransportError{Attempts: 4, Reason: reason.NetworkError, Cause: cause}
	assert.ErrorIs(t, err, ErrBudgetExhausted)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNonRetryable)
	assert.Same(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "4 attempts")
	assert.Contains(t, err.Error(), cause.Error())

	t.Run("matches both sentinel and cause via As", func(t *testing.T) {
		var te *TransportError
		assert.ErrorAs(t, error(err), &te)
		assert.Equal(t, 4, te.Attempts)
	})
}

func TestNonRetryableError(t *testing.T) {
	cause := errors.New("certificate verify failed")
	err := &NonRetryableError{Reason: reason.RequestError, Cause: cause}
	assert.ErrorIs(t, err, ErrNonRetryable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrBudgetExhausted)
	assert.Same(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "RequestError")
	assert.Contains(t, err.Error(), cause.Error())
}
