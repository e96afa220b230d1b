// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// errorDispatcher is the kont error operation shape (Throw, Catch).
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// throwing runs an error operation and reports the thrown value, if any.
func throwing[E any](op kont.Operation, errCtx *kont.ErrorContext[E]) (kont.Resumed, bool, bool) {
	eop, ok := op.(errorDispatcher[E])
	if !ok {
		return nil, false, false
	}
	v, _ := eop.DispatchError(errCtx)
	return v, errCtx.HasErr, true
}

// failingHandler serves debounce operations like callerHandler and
// stops the program at the first Throw.
type failingHandler[E, A any] struct {
	ctx    *callerContext
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler.
func (h failingHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if dop, ok := op.(debounceDispatcher); ok {
		return dispatchWait(h.ctx, dop), true
	}
	v, thrown, ok := throwing(op, h.errCtx)
	if !ok {
		panic("debounce: unhandled effect in failingHandler")
	}
	if thrown {
		return kont.Left[E, A](h.errCtx.Err), false
	}
	return v, true
}

// ExecError is Exec for programs that may throw E, for example through
// BounceError. The result is Right on completion and Left with the
// thrown value otherwise.
func ExecError[E, R any](c *Caller, program kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](program, kont.Right[E, R])
	var errCtx kont.ErrorContext[E]
	return kont.Handle(wrapped, failingHandler[E, R]{ctx: &c.ctx, errCtx: &errCtx})
}

// BounceError debounces and throws bounced when the call was superseded;
// a surviving call continues with next.
func BounceError[E, B any](bounced E, next kont.Eff[B]) kont.Eff[B] {
	return DebounceBind(func(s *Signal) kont.Eff[B] {
		if s.IsCancelled() {
			return kont.ThrowError[E, B](bounced)
		}
		return next
	})
}

// StepError is Step for programs that may throw E.
func StepError[E, R any](program kont.Expr[R]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]]) {
	return kont.StepExpr(kont.ExprMap(program, kont.Right[E, R]))
}

// AdvanceError is Advance for programs started with StepError.
// A Throw ends the program at once with Left and a nil suspension.
func AdvanceError[E, R any](c *Caller, susp *kont.Suspension[kont.Either[E, R]]) (kont.Either[E, R], *kont.Suspension[kont.Either[E, R]], error) {
	if _, ok := susp.Op().(debounceDispatcher); ok {
		return Advance(c, susp)
	}
	var errCtx kont.ErrorContext[E]
	v, thrown, ok := throwing(susp.Op(), &errCtx)
	if !ok {
		panic("debounce: AdvanceError on an unknown operation")
	}
	if thrown {
		susp.Discard()
		return kont.Left[E, R](errCtx.Err), nil, nil
	}
	return resume(&c.ctx, susp, v)
}
