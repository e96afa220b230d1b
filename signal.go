// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import "code.hybscloud.com/atomix"

// Signal reports whether a debounce call was superseded.
// A Signal starts live and can only move to cancelled.
// The zero value is a live Signal.
type Signal struct {
	cancelled atomix.Uint32
}

// NewSignal returns a live Signal.
func NewSignal() *Signal {
	return &Signal{}
}

// IsCancelled reports whether the signal was cancelled.
func (s *Signal) IsCancelled() bool {
	return s.cancelled.Load() != 0
}

// Cancel moves the signal into the cancelled state.
// Idempotent: later calls have no effect.
func (s *Signal) Cancel() {
	s.cancel()
}

// cancel reports whether this call performed the live → cancelled transition.
func (s *Signal) cancel() bool {
	return s.cancelled.CompareAndSwap(0, 1)
}

// Err returns nil while the signal is live and ErrSuperseded once it
// has been cancelled.
func (s *Signal) Err() error {
	if s.IsCancelled() {
		return ErrSuperseded
	}
	return nil
}
