// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package debounce lets only the latest of a burst of calls proceed.
//
// Each call to a [Debouncer] supersedes the previous call by cancelling its
// [Signal], waits for a delay, and hands back its own Signal. A caller that
// finds its Signal cancelled after the wait abandons its work: a later call
// has taken over. Only one call is ever current; nothing is queued.
//
// # Delays
//
// The delay is computed by a pluggable [Strategy] from the time of the call
// and the time of the previous call, then clamped by [Boundaries].
//
//   - [Exponential]: floor(P0 · e^(-0.0025·gap)). Rapid calls wait close to P0,
//     sparse calls barely wait. The default, with P0 = 2s.
//   - [Constant]: a fixed delay, the classic debounce.
//   - [Zero]: no delay; turns the Debouncer into pure cancel-and-replace.
//   - [StrategyFunc]: any function of (now, last).
//
// [DefaultBoundaries] caps delays at 3s and skips delays under 40ms.
//
// # Cancellation
//
// Cancellation is signal-based, never preemptive: a superseded call still
// waits out its delay and returns a cancelled Signal. [Debouncer.TryCancel]
// cancels the latest call without starting a new one.
//
// # API Topologies
//
//   - Blocking: [Debouncer.Debounce], [Debouncer.DebounceContext], [Debouncer.Do].
//   - Non-blocking: [Debouncer.Begin] returns a [Pending]; [Pending.Poll] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] until the deadline.
//   - Effects: [Debounce] and [TryCancel] operations on [code.hybscloud.com/kont],
//     with fused constructors [DebounceBind], [DebounceBranch], [TryCancelThen]
//     and their Expr-world variants.
//   - Evaluation: [Exec] and [ExecError] block with adaptive backoff; [Step] and
//     [Advance] evaluate one effect at a time for proactor loops; [Run] interleaves
//     several programs on one goroutine.
//
// # Example
//
//	d := debounce.New(debounce.DefaultExponential())
//	onKeystroke := func(query string) {
//		if d.Debounce().IsCancelled() {
//			return // superseded by a newer keystroke
//		}
//		search(query)
//	}
package debounce
