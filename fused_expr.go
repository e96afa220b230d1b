// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// Pre-boxed operations and frames; boxing empty structs into
// kont.Erased/kont.Frame would otherwise escape on every construction.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprDebounce    kont.Erased = Debounce{}
	exprTryCancel   kont.Erased = TryCancel{}
)

func identityResume(v kont.Erased) kont.Erased { return v }

func debounceBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(*Signal) kont.Expr[B])
	result := f(current.(*Signal))
	return kont.Erased(result.Value), result.Frame
}

// ExprDebounceBind debounces and passes the call's signal to f.
// Fuses ExprPerform(Debounce{}) + ExprBind.
func ExprDebounceBind[B any](f func(*Signal) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = debounceBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprDebounce
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func debounceBranchUnwind[A any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	onPass := data.(func() kont.Expr[A])
	onBounce := data2.(func() kont.Expr[A])
	var result kont.Expr[A]
	if current.(*Signal).IsCancelled() {
		result = onBounce()
	} else {
		result = onPass()
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprDebounceBranch debounces and continues with onPass if the call
// survived, or onBounce if it was superseded.
func ExprDebounceBranch[A any](onPass func() kont.Expr[A], onBounce func() kont.Expr[A]) kont.Expr[A] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = onPass
	bf.Data2 = onBounce
	bf.Unwind = debounceBranchUnwind[A]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprDebounce
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[A](ef)
}

// ExprTryCancelThen cancels the latest call and continues with next.
// Fuses ExprPerform(TryCancel{}) + ExprThen.
func ExprTryCancelThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprTryCancel
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}
