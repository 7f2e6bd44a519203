package animation

import (
	"testing"
	"time"
)

func TestLatch_WaitTimesOutWhenUnset(t *testing.T) {
	l := NewLatch()
	if l.Done() {
		t.Error("new latch should not be set")
	}
	if l.Wait(10 * time.Millisecond) {
		t.Error("Wait should time out on an unset latch")
	}
}

func TestLatch_SetReleasesWaiters(t *testing.T) {
	l := NewLatch()
	go l.Set()
	if !l.Wait(time.Second) {
		t.Error("Wait should return true after Set")
	}
	if !l.Done() {
		t.Error("Done should report true after Set")
	}
}

func TestLatch_SetIsIdempotent(t *testing.T) {
	l := NewLatch()
	l.Set()
	l.Set()
	l.Set()

	// Subsequent waits return immediately and truthy.
	start := time.Now()
	for i := 0; i < 3; i++ {
		if !l.Wait(time.Second) {
			t.Fatal("Wait should return true on a set latch")
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("waits on a set latch should be immediate, took %s", elapsed)
	}
}
