// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import "math"

// Strategy computes the raw delay of a debounce call.
//
// now is the current time and last the time of the previous call,
// both in Unix milliseconds; last is 0 when there was no previous call.
// The result is in milliseconds and is not bounded: the Debouncer
// applies its Boundaries afterwards. Implementations must be pure.
type Strategy interface {
	NextDelay(now, last int64) int64
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(now, last int64) int64

// NextDelay implements Strategy.
func (f StrategyFunc) NextDelay(now, last int64) int64 {
	return f(now, last)
}

const (
	// DefaultExponentialDelayMs is the reference delay of DefaultExponential.
	DefaultExponentialDelayMs = 2000

	// exponentialDecay is the per-millisecond decay rate of Exponential.
	// 1s between calls shrinks the delay to ~8% of the reference delay.
	exponentialDecay = -0.0025
)

// Exponential shrinks the delay exponentially as the gap between calls grows.
// Back-to-back calls get the full reference delay; far apart calls
// get a delay approaching zero.
type Exponential struct {
	maxDelayMs int64
}

// NewExponential returns an Exponential strategy with reference delay
// maxDelayMs, the delay produced for a zero gap.
func NewExponential(maxDelayMs int64) Exponential {
	return Exponential{maxDelayMs: maxDelayMs}
}

// DefaultExponential returns an Exponential strategy with a 2s reference delay.
func DefaultExponential() Exponential {
	return NewExponential(DefaultExponentialDelayMs)
}

// MaxDelayMs returns the reference delay in milliseconds.
func (e Exponential) MaxDelayMs() int64 {
	return e.maxDelayMs
}

// NextDelay returns floor(P0 · e^(k·gap)) where gap = now - min(now, last).
// A last timestamp in the future is treated as a zero gap,
// which yields the reference delay exactly.
func (e Exponential) NextDelay(now, last int64) int64 {
	gap := now - min(now, last)
	if gap < 0 {
		// now - last overflowed; the calls are as far apart as they can be.
		gap = math.MaxInt64
	}
	return saturate(math.Floor(float64(e.maxDelayMs) * math.Exp(exponentialDecay*float64(gap))))
}

// saturate converts f to int64, clamping to the int64 range.
func saturate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Constant returns the same delay for every call.
type Constant int64

// NextDelay implements Strategy.
func (c Constant) NextDelay(int64, int64) int64 {
	return int64(c)
}

// Zero never delays. Useful to strip timing from deterministic tests.
const Zero = Constant(0)
