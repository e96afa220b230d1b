// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run runs Cont-world debounce programs against d, one Caller each, and
// returns their results in order. Programs are started in order and
// interleaved on the calling goroutine using adaptive backoff (iox.Backoff)
// when none can make progress. Does not spawn goroutines or create channels.
//
// Because the programs share d, a program that debounces supersedes
// the in-flight calls of the programs before it.
func Run[R any](d *Debouncer, programs ...kont.Eff[R]) []R {
	exprs := make([]kont.Expr[R], len(programs))
	for i, p := range programs {
		exprs[i] = Reify(p)
	}
	return RunExpr(d, exprs...)
}

// RunExpr is Run for Expr-world programs.
func RunExpr[R any](d *Debouncer, programs ...kont.Expr[R]) []R {
	results := make([]R, len(programs))
	callers := make([]*Caller, len(programs))
	susps := make([]*kont.Suspension[R], len(programs))
	pending := 0
	for i, p := range programs {
		callers[i] = d.Caller()
		results[i], susps[i] = Step(p)
		if susps[i] != nil {
			pending++
		}
	}

	var bo iox.Backoff
	for pending > 0 {
		progress := false
		for i, susp := range susps {
			if susp == nil {
				continue
			}
			result, next, err := Advance(callers[i], susp)
			if err != nil {
				continue
			}
			results[i], susps[i] = result, next
			if next == nil {
				pending--
			}
			progress = true
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return results
}
