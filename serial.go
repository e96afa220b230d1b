// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce

import "code.hybscloud.com/atomix"

// Serial tags a Caller's debug log lines with the "caller" field.
// Values are shared by every Debouncer in the process and never repeat.
type Serial = uint32

var callers atomix.Uint32

func nextSerial() Serial {
	return callers.Add(1)
}
