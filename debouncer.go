// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Debouncer lets only the latest of a burst of calls proceed.
//
// Every call supersedes the call before it by cancelling its Signal,
// then waits for a delay computed by a Strategy and bounded by Boundaries.
// Only one call is current at a time; nothing is queued.
//
// A Debouncer is safe for concurrent use. It must be created with New.
type Debouncer struct {
	strategy Strategy
	bounds   Boundaries
	clock    func() time.Time
	log      zerolog.Logger
	hasLog   bool

	mu     sync.Mutex
	latest *Signal
	lastMs int64
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithBoundaries sets the delay boundaries. b is normalized.
// The default is DefaultBoundaries.
func WithBoundaries(b Boundaries) Option {
	return func(d *Debouncer) {
		d.bounds = b.Normalize()
	}
}

// WithClock sets the time source. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Debouncer) {
		if now != nil {
			d.clock = now
		}
	}
}

// WithLogger sets the logger for debug events.
// Without it, DebounceContext and Do log to zerolog.Ctx(ctx)
// and other calls do not log.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Debouncer) {
		d.log = l
		d.hasLog = true
	}
}

// New creates a Debouncer using strategy to compute delays.
// A nil strategy selects DefaultExponential.
func New(strategy Strategy, opts ...Option) *Debouncer {
	if strategy == nil {
		strategy = DefaultExponential()
	}
	d := &Debouncer{
		strategy: strategy,
		bounds:   DefaultBoundaries(),
		clock:    time.Now,
		log:      zerolog.Nop(),
		latest:   NewSignal(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Boundaries returns the normalized boundaries in effect.
func (d *Debouncer) Boundaries() Boundaries {
	return d.bounds
}

// Begin starts a debounce call without waiting.
//
// The previous call is superseded and the delay is fixed before Begin
// returns, so a call begun after Begin returns always supersedes this one.
// Complete the call with Pending.Wait, Pending.WaitContext or Pending.Poll.
func (d *Debouncer) Begin() *Pending {
	return d.begin(d.log)
}

func (d *Debouncer) begin(log zerolog.Logger) *Pending {
	sig := NewSignal()
	d.mu.Lock()
	superseded := d.latest.cancel()
	d.latest = sig
	now := d.clock()
	nowMs := now.UnixMilli()
	lastMs := d.lastMs
	d.lastMs = nowMs
	d.mu.Unlock()

	raw := d.strategy.NextDelay(nowMs, lastMs)
	delay := d.bounds.Bound(raw)
	p := &Pending{
		clock:    d.clock,
		signal:   sig,
		delay:    delay,
		deadline: now,
	}
	if d.bounds.Suspends(delay) {
		p.deadline = now.Add(delay)
	} else {
		p.delay = 0
	}

	log.Debug().
		Int64("gap_ms", nowMs-lastMs).
		Int64("raw_delay_ms", raw).
		Int64("delay_ms", p.delay.Milliseconds()).
		Bool("superseded", superseded).
		Msg("debounce")
	return p
}

// Debounce supersedes the previous call, waits for the bounded delay and
// returns the Signal of this call. The Signal is cancelled if a later
// call or TryCancel superseded this one while it was waiting.
func (d *Debouncer) Debounce() *Signal {
	return d.Begin().Wait()
}

// DebounceContext is like Debounce but stops waiting when ctx ends,
// returning the Signal together with ctx.Err(). Ending ctx does not cancel
// the Signal.
func (d *Debouncer) DebounceContext(ctx context.Context) (*Signal, error) {
	return d.begin(d.logger(ctx)).WaitContext(ctx)
}

// TryCancel cancels the latest call without starting a new one.
// Idempotent, non-blocking, and a no-op before the first call.
func (d *Debouncer) TryCancel() {
	d.mu.Lock()
	cancelled := d.latest.cancel()
	d.mu.Unlock()
	if cancelled {
		d.log.Debug().Msg("debounce cancelled")
	}
}

// Do debounces a call and runs f only if the call survived its delay.
// A superseded call returns an error wrapping ErrSuperseded without running f.
// If ctx ends while waiting, Do returns the context error and f is not run.
func (d *Debouncer) Do(ctx context.Context, f func(context.Context) error) error {
	sig, err := d.DebounceContext(ctx)
	if err != nil {
		return fmt.Errorf("debounce: wait: %w", err)
	}
	if err := sig.Err(); err != nil {
		return fmt.Errorf("debounce: skip: %w", err)
	}
	return f(ctx)
}

func (d *Debouncer) logger(ctx context.Context) zerolog.Logger {
	if d.hasLog {
		return d.log
	}
	return *zerolog.Ctx(ctx)
}
