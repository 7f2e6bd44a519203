package orchestrator

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/login1"

	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
)

// Guard keeps the orchestrator alive through the critical window between the
// first handshake wait and the terminal state. It ignores the termination
// signals the dying session will deliver, and best-effort takes a logind
// block inhibitor so the black frame is held until the power action lands.
// Release restores default signal handling; it is safe to call twice.
type Guard struct {
	log      *logger.Logger
	conn     *login1.Conn
	lock     *os.File
	acquired bool
}

func NewGuard(log *logger.Logger) *Guard {
	return &Guard{log: log}
}

// Acquire starts the protected window. Inhibitor failures are logged and
// ignored: signal suppression alone is enough to survive session teardown.
func (g *Guard) Acquire() {
	if g.acquired {
		return
	}
	g.acquired = true
	signal.Ignore(os.Interrupt, syscall.SIGTERM)

	conn, err := login1.New()
	if err != nil {
		g.log.Debugf("logind inhibitor unavailable: %v", err)
		return
	}
	lock, err := conn.Inhibit("shutdown:sleep", config.AppName, "holding black frame during power transition", "block")
	if err != nil {
		g.log.Debugf("logind inhibit failed: %v", err)
		conn.Close()
		return
	}
	g.conn = conn
	g.lock = lock
	g.log.Debugf("Acquired logind shutdown inhibitor")
}

// Release ends the protected window and restores default signal handling.
func (g *Guard) Release() {
	if !g.acquired {
		return
	}
	g.acquired = false
	signal.Reset(os.Interrupt, syscall.SIGTERM)

	if g.lock != nil {
		if err := g.lock.Close(); err != nil {
			g.log.Debugf("inhibitor release: %v", err)
		}
		g.lock = nil
	}
	if g.conn != nil {
		g.conn.Close()
		g.conn = nil
	}
}
