package animation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
)

// Sentinel tokens emitted by an animation on its stdout.
const (
	SignalReady = "READY"
	SignalBlack = "BLACK"
)

// Process runs an animation subprocess and synchronizes on its READY/BLACK
// handshake. The animation holds the final black frame and never exits on its
// own; Terminate tears it down once the power action is underway.
//
// The stdout listener goroutine is the single writer of both latches. If the
// subprocess exits before signaling, both latches are set anyway so waiters
// are never stuck behind a crashed animation.
type Process struct {
	script string
	cfg    *config.AnimationConfig
	log    *logger.Logger

	cmd    *exec.Cmd
	ready  *Latch
	black  *Latch
	exited *Latch
}

func NewProcess(script string, cfg *config.AnimationConfig, log *logger.Logger) *Process {
	return &Process{
		script: script,
		cfg:    cfg,
		log:    log,
		ready:  NewLatch(),
		black:  NewLatch(),
		exited: NewLatch(),
	}
}

// Start spawns the animation subprocess and begins listening for sentinel
// tokens. Returns a NotFoundError without spawning when the script is missing.
func (p *Process) Start() error {
	if _, err := os.Stat(p.script); err != nil {
		p.log.Errorf("Animation script not found: %s", p.script)
		return &NotFoundError{Name: p.script}
	}

	p.log.Debugf("Starting animation: %s", p.script)
	cmd := exec.Command(p.script)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("animation: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		p.log.Errorf("Failed to start animation: %v", err)
		return fmt.Errorf("animation: start %s: %w", p.script, err)
	}
	p.cmd = cmd

	go p.listen(stdout)
	return nil
}

// listen reads sentinel tokens line by line until the stream ends, then reaps
// the subprocess and fails open.
func (p *Process) listen(stdout io.ReadCloser) {
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		p.log.Debugf("Animation signal: %s", line)
		switch line {
		case SignalReady:
			p.ready.Set()
		case SignalBlack:
			p.black.Set()
		}
	}
	if err := scanner.Err(); err != nil {
		p.log.Debugf("Error reading animation signals: %v", err)
	}

	if err := p.cmd.Wait(); err != nil {
		p.log.Debugf("Animation process exited: %v", err)
	}
	// Unblock waiters if the process died without signaling.
	p.ready.Set()
	p.black.Set()
	p.exited.Set()
}

// WaitReady blocks until the animation reports its overlay is visible, up to
// the configured timeout. A timeout is logged and non-fatal.
func (p *Process) WaitReady() bool {
	p.log.Debugf("Waiting for READY signal (timeout=%s)", p.cfg.ReadyTimeout)
	ok := p.ready.Wait(p.cfg.ReadyTimeout)
	if !ok {
		p.log.Warnf("Timeout waiting for READY signal")
	}
	return ok
}

// WaitBlack blocks until the screen is fully black, up to the configured
// timeout. A timeout is logged and non-fatal.
func (p *Process) WaitBlack() bool {
	p.log.Debugf("Waiting for BLACK signal (timeout=%s)", p.cfg.BlackTimeout)
	ok := p.black.Wait(p.cfg.BlackTimeout)
	if !ok {
		p.log.Warnf("Timeout waiting for BLACK signal")
	}
	return ok
}

// IsRunning reports whether the animation subprocess is still alive.
func (p *Process) IsRunning() bool {
	return p.cmd != nil && !p.exited.Done()
}

// Terminate asks the animation to exit, escalating to SIGKILL after the
// configured grace period.
func (p *Process) Terminate() {
	if p.cmd == nil || p.cmd.Process == nil {
		return
	}
	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		p.log.Debugf("Animation terminate: %v", err)
	}
	if !p.exited.Wait(p.cfg.TerminateGrace) {
		p.log.Warnf("Animation did not exit, killing")
		if err := p.cmd.Process.Kill(); err != nil {
			p.log.Debugf("Animation kill: %v", err)
		}
	}
}
