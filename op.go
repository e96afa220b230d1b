// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import (
	"code.hybscloud.com/kont"
)

// Debounce is the effect operation for a debounce call.
// Perform(Debounce{}) supersedes the previous call and resumes with
// the *Signal of this call once its delay has passed.
type Debounce struct {
	kont.Phantom[*Signal]
}

// DispatchDebounce begins the call on first dispatch and polls it afterwards.
// Polling before the deadline reports iox.ErrWouldBlock and supersedes nothing.
func (Debounce) DispatchDebounce(ctx *callerContext) (kont.Resumed, error) {
	if ctx.pending == nil {
		ctx.pending = ctx.d.begin(ctx.log)
	}
	sig, err := ctx.pending.Poll()
	if err != nil {
		return nil, err
	}
	ctx.pending = nil
	return sig, nil
}

// TryCancel is the effect operation for cancelling the latest call.
// Perform(TryCancel{}) never waits.
type TryCancel struct {
	kont.Phantom[struct{}]
}

// DispatchDebounce cancels the Debouncer's latest call.
func (TryCancel) DispatchDebounce(ctx *callerContext) (kont.Resumed, error) {
	ctx.d.TryCancel()
	return struct{}{}, nil
}
