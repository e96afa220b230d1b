// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// DebounceBind debounces and passes the call's signal to f.
// Fuses Perform(Debounce{}) + Bind.
func DebounceBind[B any](f func(*Signal) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Debounce{}), f)
}

// DebounceBranch debounces and continues with onPass if the call survived,
// or onBounce if it was superseded.
func DebounceBranch[A any](onPass func() kont.Eff[A], onBounce func() kont.Eff[A]) kont.Eff[A] {
	return DebounceBind(func(s *Signal) kont.Eff[A] {
		if s.IsCancelled() {
			return onBounce()
		}
		return onPass()
	})
}

// TryCancelThen cancels the latest call and continues with next.
// Fuses Perform(TryCancel{}) + Then.
func TryCancelThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(TryCancel{}), next)
}
