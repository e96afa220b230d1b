// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import "errors"

// ErrSuperseded is returned when a later call (or TryCancel) cancelled
// the signal of the call being inspected.
var ErrSuperseded = errors.New("debounce: call superseded")

// IsSuperseded reports whether err is or wraps ErrSuperseded.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
