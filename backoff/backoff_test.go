// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	base := 100 * time.Millisecond
	max := 5 * time.Second
	t.Run("growth", func(t *testing.T) {
		assert.Equal(t, 100*time.Millisecond, Exponential(0, base, 2.0, max))
		assert.Equal(t, 200*time.Millisecond, Exponential(1, base, 2.0, max))
		assert.Equal(t, 400*time.Millisecond, Exponential(2, base, 2.0, max))
		assert.Equal(t, 800*time.Millisecond, Exponential(3, base, 2.0, max))
	})
	t.Run("cap", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, Exponential(5, time.Second, 10.0, 2*time.Second))
	})
	t.Run("overflow saturates to max", func(t *testing.T) {
		assert.Equal(t, max, Exponential(5000, base, 2.0, max))
		assert.Equal(t, max, Exponential(math.MaxInt32, base, 10.0, max))
	})
}

func TestLinear(t *testing.T) {
	base := 100 * time.Millisecond
	max := 350 * time.Millisecond
	expected := []time.Duration{
		0,
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
		350 * time.Millisecond,
		350 * time.Millisecond,
	}
	for a, want := range expected {
		assert.Equal(t, want, Linear(a, base, 2.0, max), "attempt %d", a)
	}
}

func TestFixed(t *testing.T) {
	base := 250 * time.Millisecond
	assert.Equal(t, time.Duration(0), Fixed(0, base, 2.0, time.Second))
	assert.Equal(t, base, Fixed(1, base, 2.0, time.Second))
	assert.Equal(t, base, Fixed(100, base, 2.0, time.Second))
	// Fixed ignores the cap by construction.
	assert.Equal(t, base, Fixed(1, base, 2.0, time.Millisecond))
}

func TestFibonacci(t *testing.T) {
	base := 100 * time.Millisecond
	max := 10 * time.Second
	t.Run("sequence", func(t *testing.T) {
		assert.Equal(t, 100*time.Millisecond, Fibonacci(0, base, 2.0, max))
		assert.Equal(t, 100*time.Millisecond, Fibonacci(1, base, 2.0, max))
		assert.Equal(t, 200*time.Millisecond, Fibonacci(2, base, 2.0, max))
		assert.Equal(t, 300*time.Millisecond, Fibonacci(3, base, 2.0, max))
		assert.Equal(t, 500*time.Millisecond, Fibonacci(4, base, 2.0, max))
		assert.Equal(t, 800*time.Millisecond, Fibonacci(5, base, 2.0, max))
	})
	t.Run("cap", func(t *testing.T) {
		assert.Equal(t, max, Fibonacci(50, base, 2.0, max))
	})
	t.Run("saturating fib", func(t *testing.T) {
		// Past F(93) the sequence saturates instead of wrapping, so
		// the delay stays pinned at max.
		assert.Equal(t, max, Fibonacci(500, base, 2.0, max))
	})
}

func TestExponentialJitter(t *testing.T) {
	base := 100 * time.Millisecond
	max := 10 * time.Second
	multiplier := 2.0
	t.Run("band", func(t *testing.T) {
		for a := 0; a < 20; a++ {
			raw := float64(base) * math.Pow(multiplier, float64(a))
			if raw > float64(max) {
				raw = float64(max)
			}
			d := ExponentialJitter(a, base, multiplier, max)
			assert.GreaterOrEqual(t, float64(d), 0.5*float64(raw)-1, "attempt %d below band", a)
			assert.LessOrEqual(t, d, max, "attempt %d above max", a)
		}
	})
	t.Run("deterministic", func(t *testing.T) {
		for a := 0; a < 10; a++ {
			assert.Equal(t,
				ExponentialJitter(a, base, multiplier, max),
				ExponentialJitter(a, base, multiplier, max))
		}
	})
	t.Run("overflow saturates to max", func(t *testing.T) {
		assert.Equal(t, max, ExponentialJitter(100000, base, multiplier, max))
	})
}

func TestRange(t *testing.T) {
	// Every backoff function returns a value in [0, max] for every
	// attempt number.
	funcs := []struct {
		name string
		f    Func
	}{
		{"Exponential", Exponential},
		{"Linear", Linear},
		{"Fibonacci", Fibonacci},
		{"ExponentialJitter", ExponentialJitter},
	}
	attempts := []int{0, 1, 2, 3, 10, 63, 64, 100, 1 << 20}
	max := time.Second
	for _, tc := range funcs {
		t.Run(tc.name, func(t *testing.T) {
			for _, a := range attempts {
				t.Run(fmt.Sprintf("attempt=%d", a), func(t *testing.T) {
					d := tc.f(a, 50*time.Millisecond, 2.0, max)
					assert.GreaterOrEqual(t, d, time.Duration(0))
					assert.LessOrEqual(t, d, max)
				})
			}
		})
	}
}

func TestDegenerateInputs(t *testing.T) {
	// Nothing panics; output stays within [0, max].
	assert.Equal(t, time.Duration(0), Exponential(3, -time.Second, 2.0, time.Second))
	assert.Equal(t, time.Duration(0), Linear(3, time.Second, 2.0, -time.Second))
	assert.Equal(t, time.Duration(0), Fixed(3, -time.Second, 2.0, time.Second))
	assert.Equal(t, time.Duration(0), Fibonacci(3, time.Second, 2.0, -time.Second))
	assert.Equal(t, time.Duration(0), ExponentialJitter(3, 0, -1.0, 0))
}
