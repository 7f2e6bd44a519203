package orchestrator

import (
	"os/signal"
	"syscall"
	"testing"

	"github.com/b0bbywan/go-power-manager/logger"
)

func TestGuard_AcquireIgnoresTerminationSignals(t *testing.T) {
	g := NewGuard(logger.Discard())
	g.Acquire()
	defer g.Release()

	if !signal.Ignored(syscall.SIGTERM) {
		t.Error("SIGTERM should be ignored while the guard is held")
	}
	if !signal.Ignored(syscall.SIGINT) {
		t.Error("SIGINT should be ignored while the guard is held")
	}
}

func TestGuard_ReleaseRestoresDefaultHandling(t *testing.T) {
	g := NewGuard(logger.Discard())
	g.Acquire()
	g.Release()

	if signal.Ignored(syscall.SIGTERM) {
		t.Error("SIGTERM handling should be restored after Release")
	}
}

func TestGuard_Idempotent(t *testing.T) {
	g := NewGuard(logger.Discard())
	g.Acquire()
	g.Acquire()
	g.Release()
	g.Release()

	if signal.Ignored(syscall.SIGTERM) {
		t.Error("double Release should leave default handling in place")
	}
}
