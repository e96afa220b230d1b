// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"context"
	"time"

	"code.hybscloud.com/iox"
)

// Pending is a debounce call that has been begun but not yet completed.
// Its delay and deadline are fixed when it is created.
type Pending struct {
	clock    func() time.Time
	signal   *Signal
	delay    time.Duration
	deadline time.Time
}

// Signal returns the call's signal. It may be inspected at any time,
// but is only conclusive once the deadline has passed.
func (p *Pending) Signal() *Signal {
	return p.signal
}

// Delay returns the bounded delay of the call; 0 when it does not wait.
func (p *Pending) Delay() time.Duration {
	return p.delay
}

// Deadline returns the time at which the call completes.
func (p *Pending) Deadline() time.Time {
	return p.deadline
}

// Ready reports whether the deadline has passed.
func (p *Pending) Ready() bool {
	return !p.clock().Before(p.deadline)
}

// Poll completes the call without blocking.
// Returns iox.ErrWouldBlock until the deadline, then the Signal.
func (p *Pending) Poll() (*Signal, error) {
	if !p.Ready() {
		return nil, iox.ErrWouldBlock
	}
	return p.signal, nil
}

// Wait blocks until the deadline and returns the Signal.
func (p *Pending) Wait() *Signal {
	if remaining := p.remaining(); remaining > 0 {
		t := time.NewTimer(remaining)
		<-t.C
	}
	return p.signal
}

// WaitContext is like Wait but returns early with ctx.Err() when ctx ends
// before the deadline. The Signal is returned in either case.
func (p *Pending) WaitContext(ctx context.Context) (*Signal, error) {
	remaining := p.remaining()
	if remaining <= 0 {
		return p.signal, nil
	}
	t := time.NewTimer(remaining)
	defer t.Stop()
	select {
	case <-t.C:
		return p.signal, nil
	case <-ctx.Done():
		return p.signal, ctx.Err()
	}
}

func (p *Pending) remaining() time.Duration {
	if p.delay <= 0 {
		return 0
	}
	return p.deadline.Sub(p.clock())
}
