// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import "time"

// Default boundaries, see DefaultBoundaries.
const (
	DefaultMaxDelay   = 3000 * time.Millisecond
	DefaultMinDelay   = 0
	DefaultDelayNoise = 40 * time.Millisecond
)

// Boundaries bound the delay computed by a Strategy.
// Delays are handled at millisecond granularity: Normalize truncates
// every field to whole milliseconds.
type Boundaries struct {
	// MaxDelay is the largest delay ever applied. Negative means 0.
	MaxDelay time.Duration
	// MinDelay is the smallest delay ever applied. Negative means 0;
	// larger than MaxDelay means MaxDelay.
	MinDelay time.Duration
	// DelayNoise is the threshold below which a delay is skipped.
	// Negative means 0; larger than MaxDelay means MaxDelay.
	DelayNoise time.Duration
}

// DefaultBoundaries returns boundaries that work for most interactive uses:
// at most 3s of delay, no minimum, delays under 40ms skipped.
func DefaultBoundaries() Boundaries {
	return Boundaries{
		MaxDelay:   DefaultMaxDelay,
		MinDelay:   DefaultMinDelay,
		DelayNoise: DefaultDelayNoise,
	}
}

// NewBoundaries returns normalized boundaries.
func NewBoundaries(maxDelay, minDelay, delayNoise time.Duration) Boundaries {
	return Boundaries{MaxDelay: maxDelay, MinDelay: minDelay, DelayNoise: delayNoise}.Normalize()
}

// Normalize returns b truncated to whole milliseconds and clamped so that
// 0 <= MinDelay <= MaxDelay and 0 <= DelayNoise <= MaxDelay.
func (b Boundaries) Normalize() Boundaries {
	maxDelay := wholeMs(b.MaxDelay)
	return Boundaries{
		MaxDelay:   maxDelay,
		MinDelay:   min(wholeMs(b.MinDelay), maxDelay),
		DelayNoise: min(wholeMs(b.DelayNoise), maxDelay),
	}
}

// wholeMs clamps d to >= 0 and drops its sub-millisecond part.
func wholeMs(d time.Duration) time.Duration {
	return max(d, 0).Truncate(time.Millisecond)
}

// Bound clamps a raw strategy delay in milliseconds into [MinDelay, MaxDelay].
// The maximum is applied first, then the minimum.
// b is expected to be normalized.
func (b Boundaries) Bound(rawMs int64) time.Duration {
	ms := min(rawMs, b.MaxDelay.Milliseconds())
	ms = max(ms, b.MinDelay.Milliseconds())
	return time.Duration(ms) * time.Millisecond
}

// Suspends reports whether a bounded delay d is long enough to wait for.
// Zero delays and delays under DelayNoise resume immediately.
func (b Boundaries) Suspends(d time.Duration) bool {
	return d > 0 && d >= b.DelayNoise
}
