// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package debounce_test

import "testing"

// skipRace skips tests that assert wall-clock durations.
// The race detector slows goroutine scheduling enough to push measured
// delays past their tolerances.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: wall-clock timing under race detector")
}
