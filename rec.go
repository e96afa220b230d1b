// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// Loop repeats body, threading state through each round, until a round
// returns Right(result). A round returning Left(state) goes again.
func Loop[S, A any](state S, body func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(body(state), func(e kont.Either[S, A]) kont.Eff[A] {
		if result, done := e.GetRight(); done {
			return kont.Pure(result)
		}
		next, _ := e.GetLeft()
		return Loop(next, body)
	})
}

// UntilPass debounces repeatedly until a call survives and returns the
// number of superseded calls that came before it.
// Another Caller keeps the loop going by superseding every attempt.
func UntilPass() kont.Eff[int] {
	return Loop(0, func(bounced int) kont.Eff[kont.Either[int, int]] {
		return DebounceBranch(
			func() kont.Eff[kont.Either[int, int]] {
				return kont.Pure(kont.Right[int, int](bounced))
			},
			func() kont.Eff[kont.Either[int, int]] {
				return kont.Pure(kont.Left[int, int](bounced + 1))
			},
		)
	})
}
