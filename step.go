// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// Step runs program up to its first debounce operation.
// A nil suspension means the program finished with the returned value.
func Step[R any](program kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(program)
}

// Advance tries to complete the operation susp is parked on, without waiting.
//
// The first Advance of a Debounce suspension begins the call; later ones
// only check its deadline and return iox.ErrWouldBlock until it passes,
// leaving susp ready to be retried. Once the call completes, the program
// runs on to its next operation or to its result.
//
// A suspension that is dropped instead of retried abandons its call:
// the next suspension advanced on c begins its own.
func Advance[R any](c *Caller, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	dop, ok := susp.Op().(debounceDispatcher)
	if !ok {
		panic("debounce: Advance on a non-debounce operation")
	}
	c.ctx.claim(susp)
	v, err := dop.DispatchDebounce(&c.ctx)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	return resume(&c.ctx, susp, v)
}

// resume continues susp with v and releases the in-flight slot.
func resume[R any](ctx *callerContext, susp *kont.Suspension[R], v kont.Resumed) (R, *kont.Suspension[R], error) {
	ctx.owner = nil
	result, next := susp.Resume(v)
	return result, next, nil
}

// Reify turns a Cont-world program into one that Step and Advance accept.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect turns a stepped program back into a Cont-world one for Exec.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
