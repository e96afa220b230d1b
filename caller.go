// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"github.com/rs/zerolog"
)

// callerContext is the per-Caller dispatch state.
// pending is the call begun by the Debounce suspension owner;
// a Debounce dispatched for any other owner begins a fresh call.
type callerContext struct {
	d       *Debouncer
	log     zerolog.Logger
	pending *Pending
	owner   any
	turns   uint64
}

// execTurn owns the in-flight slot for one blocking dispatch.
type execTurn uint64

// claim hands the in-flight slot to owner. A call left behind by a
// different owner (a dropped suspension) is abandoned, not resumed.
func (ctx *callerContext) claim(owner any) {
	if ctx.owner != owner {
		ctx.pending = nil
		ctx.owner = owner
	}
}

// debounceDispatcher is implemented by Debounce and TryCancel.
// A Debounce that has not reached its deadline reports iox.ErrWouldBlock.
type debounceDispatcher interface {
	DispatchDebounce(ctx *callerContext) (kont.Resumed, error)
}

// callerHandler runs debounce operations to completion for Exec.
type callerHandler[R any] struct {
	ctx *callerContext
}

// Dispatch implements kont.Handler.
func (h callerHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	dop, ok := op.(debounceDispatcher)
	if !ok {
		panic("debounce: unhandled effect in callerHandler")
	}
	return dispatchWait(h.ctx, dop), true
}

// dispatchWait begins a fresh call and polls it until its deadline,
// sleeping between polls with iox.Backoff.
func dispatchWait(ctx *callerContext, dop debounceDispatcher) kont.Resumed {
	ctx.turns++
	ctx.claim(execTurn(ctx.turns))
	var bo iox.Backoff
	for {
		v, err := dop.DispatchDebounce(ctx)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Caller evaluates debounce effects against a Debouncer.
//
// A Caller belongs to one goroutine and drives one program at a time.
// Any number of Callers may share a Debouncer; they supersede each other
// exactly like direct calls to Debouncer.Debounce. Dropping a suspended
// program is safe: the next Debounce on the Caller begins a new call.
type Caller struct {
	ctx    callerContext
	serial Serial
}

// Caller returns a new Caller bound to d.
func (d *Debouncer) Caller() *Caller {
	s := nextSerial()
	return &Caller{
		ctx: callerContext{
			d:   d,
			log: d.log.With().Uint32("caller", s).Logger(),
		},
		serial: s,
	}
}

// Serial returns the id the Caller logs under.
func (c *Caller) Serial() Serial {
	return c.serial
}

// Debouncer returns the Debouncer the Caller dispatches to.
func (c *Caller) Debouncer() *Debouncer {
	return c.ctx.d
}

// InFlight returns the call begun by a Debounce operation that has not
// completed yet, or nil.
func (c *Caller) InFlight() *Pending {
	return c.ctx.pending
}
