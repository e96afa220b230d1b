// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package debounce_test

import (
	"testing"
	"time"

	"code.hybscloud.com/debounce"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

func newSteppedDebouncer(clock *fakeClock) *debounce.Debouncer {
	return debounce.New(debounce.Constant(500),
		debounce.WithClock(clock.Now),
		debounce.WithBoundaries(debounce.NewBoundaries(time.Second, 0, 0)),
	)
}

func cancelledProgram() kont.Expr[bool] {
	return debounce.Reify(debounce.DebounceBind(func(s *debounce.Signal) kont.Eff[bool] {
		return kont.Pure(s.IsCancelled())
	}))
}

func TestStepInspectDebounce(t *testing.T) {
	_, susp := debounce.Step(cancelledProgram())
	if susp == nil {
		t.Fatal("expected suspension for Debounce")
	}
	if _, ok := susp.Op().(debounce.Debounce); !ok {
		t.Fatalf("expected Debounce, got %T", susp.Op())
	}
	susp.Discard()
}

func TestAdvanceWouldBlockUntilDeadline(t *testing.T) {
	clock := newFakeClock()
	d := newSteppedDebouncer(clock)
	c := d.Caller()

	_, susp := debounce.Step(cancelledProgram())
	_, susp, err := debounce.Advance(c, susp)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("first Advance: got %v, want ErrWouldBlock", err)
	}
	inFlight := c.InFlight()
	if inFlight == nil {
		t.Fatal("no call in flight after first Advance")
	}

	// Retrying polls the same call and does not supersede it.
	_, susp, err = debounce.Advance(c, susp)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("retry Advance: got %v, want ErrWouldBlock", err)
	}
	if c.InFlight() != inFlight || inFlight.Signal().IsCancelled() {
		t.Fatal("retry began a new call")
	}

	clock.Advance(500 * time.Millisecond)
	cancelled, susp, err := debounce.Advance(c, susp)
	if err != nil {
		t.Fatalf("Advance at deadline: %v", err)
	}
	if susp != nil {
		t.Fatal("expected completion")
	}
	if cancelled {
		t.Fatal("lone call reported cancelled")
	}
	if c.InFlight() != nil {
		t.Fatal("call still in flight after completion")
	}
}

func TestAdvanceTwoCallersLatestWins(t *testing.T) {
	clock := newFakeClock()
	d := newSteppedDebouncer(clock)
	c1, c2 := d.Caller(), d.Caller()

	_, susp1 := debounce.Step(cancelledProgram())
	_, susp2 := debounce.Step(cancelledProgram())
	_, susp1, _ = debounce.Advance(c1, susp1)
	_, susp2, _ = debounce.Advance(c2, susp2)

	clock.Advance(time.Second)
	r1, next1, err := debounce.Advance(c1, susp1)
	if err != nil || next1 != nil {
		t.Fatalf("c1: next=%v err=%v", next1, err)
	}
	r2, next2, err := debounce.Advance(c2, susp2)
	if err != nil || next2 != nil {
		t.Fatalf("c2: next=%v err=%v", next2, err)
	}
	if !r1 || r2 {
		t.Fatalf("c1 cancelled=%v c2 cancelled=%v, want true/false", r1, r2)
	}
}

func TestAdvanceTryCancel(t *testing.T) {
	clock := newFakeClock()
	d := newSteppedDebouncer(clock)
	c1, c2 := d.Caller(), d.Caller()

	_, susp1 := debounce.Step(cancelledProgram())
	_, susp1, _ = debounce.Advance(c1, susp1)

	_, susp2 := debounce.Step(debounce.ExprTryCancelThen(kont.ExprReturn("cancelled")))
	if _, ok := susp2.Op().(debounce.TryCancel); !ok {
		t.Fatalf("expected TryCancel, got %T", susp2.Op())
	}
	r2, susp2, err := debounce.Advance(c2, susp2)
	if err != nil || susp2 != nil || r2 != "cancelled" {
		t.Fatalf("TryCancel: r=%q susp=%v err=%v", r2, susp2, err)
	}

	clock.Advance(time.Second)
	r1, _, err := debounce.Advance(c1, susp1)
	if err != nil || !r1 {
		t.Fatalf("c1 cancelled=%v err=%v, want true/nil", r1, err)
	}
}

func TestStepErrorBounce(t *testing.T) {
	clock := newFakeClock()
	d := newSteppedDebouncer(clock)
	c := d.Caller()

	program := debounce.Reify(debounce.BounceError("bounced", kont.Pure(7)))
	result, susp := debounce.StepError[string, int](program)
	result, susp, err := debounce.AdvanceError(c, susp)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("AdvanceError: got %v, want ErrWouldBlock", err)
	}
	d.TryCancel()
	clock.Advance(time.Second)
	for susp != nil {
		result, susp, err = debounce.AdvanceError(c, susp)
		if err != nil {
			t.Fatalf("AdvanceError after deadline: %v", err)
		}
	}
	v, ok := result.GetLeft()
	if !ok || v != "bounced" {
		t.Fatalf("result = %v, want Left(bounced)", result)
	}
}

func TestStepErrorPass(t *testing.T) {
	d := debounce.New(debounce.Zero)
	c := d.Caller()

	result, susp := debounce.StepError[string, int](debounce.Reify(debounce.BounceError("bounced", kont.Pure(7))))
	for susp != nil {
		var err error
		result, susp, err = debounce.AdvanceError(c, susp)
		if err != nil {
			t.Fatalf("AdvanceError: %v", err)
		}
	}
	v, ok := result.GetRight()
	if !ok || v != 7 {
		t.Fatalf("result = %v, want Right(7)", result)
	}
}

func TestReflectRoundTrip(t *testing.T) {
	d := debounce.New(debounce.Zero)
	program := debounce.Reflect(debounce.ExprDebounceBranch(
		func() kont.Expr[string] { return kont.ExprReturn("pass") },
		func() kont.Expr[string] { return kont.ExprReturn("bounce") },
	))
	if got := debounce.Exec(d.Caller(), program); got != "pass" {
		t.Fatalf("got %q, want pass", got)
	}
}

func TestAdvanceAfterDroppedSuspensionBeginsNewCall(t *testing.T) {
	clock := newFakeClock()
	d := newSteppedDebouncer(clock)
	c := d.Caller()

	_, dropped := debounce.Step(cancelledProgram())
	_, dropped, err := debounce.Advance(c, dropped)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("Advance: got %v, want ErrWouldBlock", err)
	}
	stale := c.InFlight()
	dropped.Discard()

	other := d.Begin()

	_, susp := debounce.Step(cancelledProgram())
	_, susp, err = debounce.Advance(c, susp)
	if !iox.IsWouldBlock(err) {
		t.Fatalf("Advance of new program: got %v, want ErrWouldBlock", err)
	}
	if c.InFlight() == stale {
		t.Fatal("new program resumed the dropped call")
	}
	if !other.Signal().IsCancelled() {
		t.Fatal("new program did not supersede the latest call")
	}

	clock.Advance(time.Second)
	cancelled, susp, err := debounce.Advance(c, susp)
	if err != nil || susp != nil {
		t.Fatalf("Advance at deadline: susp=%v err=%v", susp, err)
	}
	if cancelled {
		t.Fatal("new program got a superseded signal")
	}
}
