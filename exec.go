// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// Exec runs program on c, sleeping through each debounce delay on the
// calling goroutine. Returns the program's result.
func Exec[R any](c *Caller, program kont.Eff[R]) R {
	return kont.Handle(program, callerHandler[R]{ctx: &c.ctx})
}

// ExecExpr is Exec for a program built from the Expr constructors.
func ExecExpr[R any](c *Caller, program kont.Expr[R]) R {
	return kont.HandleExpr(program, callerHandler[R]{ctx: &c.ctx})
}
