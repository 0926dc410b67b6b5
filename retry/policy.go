// Copyright 2026 The reissue Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/reissue/reissue/backoff"
	"github.com/reissue/reissue/reason"
)

// Default base policy values. NewPolicy with no options produces a
// policy with these settings, default predicates and classifiers, the
// exponential backoff function, and no overrides or observers.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 100 * time.Millisecond
	DefaultMaxDelay   = 30 * time.Second
	DefaultMultiplier = 2.0
)

// A FailurePredicate decides whether a transport-level failure
// warrants a retry. It must be total: any error in, a decision out,
// no panic.
type FailurePredicate func(err error) bool

// A ResponsePredicate decides whether a completed HTTP response
// warrants a retry. It must be total.
type ResponsePredicate func(resp *http.Response) bool

// A FailureClassifier maps a transport-level failure to a retry
// reason. It must be total.
type FailureClassifier func(err error) reason.Reason

// A ResponseClassifier maps a completed HTTP response to a retry
// reason. It must be total.
type ResponseClassifier func(resp *http.Response) reason.Reason

// A Policy controls if and how a sequence of request attempts is
// retried. A Policy is immutable after construction and safe for
// concurrent use by any number of sequences.
type Policy struct {
	maxRetries       int
	baseDelay        time.Duration
	maxDelay         time.Duration
	multiplier       float64
	backoff          backoff.Func
	retryFailure     FailurePredicate
	retryResponse    ResponsePredicate
	classifyFailure  FailureClassifier
	classifyResponse ResponseClassifier
	onRetry          Observer
	onFailure        Observer
	overrides        map[reason.Reason]Override
	logger           *slog.Logger
}

// An Option configures a Policy under construction.
type Option func(*Policy)

// DefaultPolicy is the policy used by an engine with no policy set.
var DefaultPolicy = NewPolicy()

// NewPolicy constructs an immutable Policy from the default values and
// the given options.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		maxRetries:       DefaultMaxRetries,
		baseDelay:        DefaultBaseDelay,
		maxDelay:         DefaultMaxDelay,
		multiplier:       DefaultMultiplier,
		backoff:          backoff.Exponential,
		retryFailure:     DefaultRetryFailure,
		retryResponse:    DefaultRetryResponse,
		classifyFailure:  reason.FromError,
		classifyResponse: reason.FromResponse,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithMaxRetries sets the base maximum number of retries. The initial
// attempt is always made, so n permits n+1 attempts in total. Negative
// values are treated as zero.
func WithMaxRetries(n int) Option {
	return func(p *Policy) {
		if n < 0 {
			n = 0
		}
		p.maxRetries = n
	}
}

// WithBaseDelay sets the base delay fed to the backoff function.
func WithBaseDelay(d time.Duration) Option {
	return func(p *Policy) { p.baseDelay = d }
}

// WithMaxDelay sets the maximum delay between attempts. Backoff
// functions clamp their output to this value. Keeping it at or above
// the base delay is the caller's responsibility.
func WithMaxDelay(d time.Duration) Option {
	return func(p *Policy) { p.maxDelay = d }
}

// WithMultiplier sets the backoff multiplier used by backoff functions
// that consume one.
func WithMultiplier(m float64) Option {
	return func(p *Policy) { p.multiplier = m }
}

// WithBackoff sets the backoff function computing the delay before
// each retry.
func WithBackoff(f backoff.Func) Option {
	return func(p *Policy) {
		if f != nil {
			p.backoff = f
		}
	}
}

// WithRetryFailure sets the predicate deciding whether a transport
// failure warrants a retry.
func WithRetryFailure(pred FailurePredicate) Option {
	return func(p *Policy) {
		if pred != nil {
			p.retryFailure = pred
		}
	}
}

// WithRetryResponse sets the predicate deciding whether a completed
// response warrants a retry.
func WithRetryResponse(pred ResponsePredicate) Option {
	return func(p *Policy) {
		if pred != nil {
			p.retryResponse = pred
		}
	}
}

// WithFailureClassifier sets the classifier mapping transport failures
// to reasons.
func WithFailureClassifier(c FailureClassifier) Option {
	return func(p *Policy) {
		if c != nil {
			p.classifyFailure = c
		}
	}
}

// WithResponseClassifier sets the classifier mapping responses to
// reasons.
func WithResponseClassifier(c ResponseClassifier) Option {
	return func(p *Policy) {
		if c != nil {
			p.classifyResponse = c
		}
	}
}

// WithOnRetry sets the observer notified before each retry delay.
func WithOnRetry(o Observer) Option {
	return func(p *Policy) { p.onRetry = o }
}

// WithOnFailure sets the observer notified when the retry budget is
// exhausted by a transport failure.
func WithOnFailure(o Observer) Option {
	return func(p *Policy) { p.onFailure = o }
}

// WithOverride layers a partial policy over the base values for one
// failure reason. A later WithOverride for the same reason replaces an
// earlier one.
func WithOverride(r reason.Reason, o Override) Option {
	return func(p *Policy) {
		if p.overrides == nil {
			p.overrides = make(map[reason.Reason]Override)
		}
		p.overrides[r] = o
	}
}

// WithLogger sets the logger used for retry scheduling debug output
// and observer panic reports. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Policy) {
		if l != nil {
			p.logger = l
		}
	}
}

// MaxRetries returns the base maximum number of retries.
func (p *Policy) MaxRetries() int { return p.maxRetries }

// BaseDelay returns the base delay.
func (p *Policy) BaseDelay() time.Duration { return p.baseDelay }

// MaxDelay returns the maximum delay.
func (p *Policy) MaxDelay() time.Duration { return p.maxDelay }

// Multiplier returns the backoff multiplier.
func (p *Policy) Multiplier() float64 { return p.multiplier }

// Logger returns the policy's logger. It is never nil.
func (p *Policy) Logger() *slog.Logger { return p.logger }

// ShouldRetryFailure consults the failure predicate.
func (p *Policy) ShouldRetryFailure(err error) bool {
	return p.retryFailure(err)
}

// ShouldRetryResponse consults the response predicate.
func (p *Policy) ShouldRetryResponse(resp *http.Response) bool {
	return p.retryResponse(resp)
}

// ClassifyFailure maps a transport failure to its retry reason.
func (p *Policy) ClassifyFailure(err error) reason.Reason {
	return p.classifyFailure(err)
}

// ClassifyResponse maps a completed response to its retry reason.
func (p *Policy) ClassifyResponse(resp *http.Response) reason.Reason {
	return p.classifyResponse(resp)
}

// A Strategy is the fully-resolved set of policy fields in effect for
// one failure reason. Every field is concrete: resolution fills unset
// override fields from the base policy. A Strategy is ephemeral; the
// engine computes one per completed attempt and discards it.
type Strategy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Backoff    backoff.Func
}

// Delay computes the backoff delay before the attempt-th retry under
// this strategy.
func (s Strategy) Delay(attempt int) time.Duration {
	return s.Backoff(attempt, s.BaseDelay, s.Multiplier, s.MaxDelay)
}

// Strategy resolves the effective strategy for reason r by merging the
// override registered for r, if any, over the base policy values. With
// no override, or with the zero Reason (no attempt has completed yet),
// the base values are returned verbatim. Resolution is pure and has no
// side effects.
func (p *Policy) Strategy(r reason.Reason) Strategy {
	s := Strategy{
		MaxRetries: p.maxRetries,
		BaseDelay:  p.baseDelay,
		MaxDelay:   p.maxDelay,
		Multiplier: p.multiplier,
		Backoff:    p.backoff,
	}
	o, ok := p.overrides[r]
	if !ok {
		return s
	}
	if o.maxRetries != nil {
		s.MaxRetries = *o.maxRetries
	}
	if o.baseDelay != nil {
		s.BaseDelay = *o.baseDelay
	}
	if o.maxDelay != nil {
		s.MaxDelay = *o.maxDelay
	}
	if o.multiplier != nil {
		s.Multiplier = *o.multiplier
	}
	if o.backoff != nil {
		s.Backoff = o.backoff
	}
	return s
}
