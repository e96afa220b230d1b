// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce_test

import (
	"sync"
	"time"
)

// fakeClock is a manually advanced time source for deterministic delays.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// tracker counts passed and bounced signals.
type tracker struct {
	passes  int
	bounces int
}

func (t *tracker) track(cancelled bool) {
	if cancelled {
		t.bounces++
	} else {
		t.passes++
	}
}
