package orchestrator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
	"github.com/b0bbywan/go-power-manager/power"
)

// Animator is the handshake surface the driver needs from an animation
// subprocess.
type Animator interface {
	Start() error
	WaitReady() bool
	WaitBlack() bool
	IsRunning() bool
	Terminate()
}

// Compositor is the cleanup surface of the Wayfire IPC client.
type Compositor interface {
	Unfreeze(retry bool)
	ShowCursor(retry bool)
}

// Orchestrator sequences handshake, power action and compositor cleanup for
// both the animated and plain paths. Once a run starts it cannot be
// cancelled; it either reaches a terminal state or is killed by the power
// transition itself.
type Orchestrator struct {
	cfg        *config.Config
	log        *logger.Logger
	dispatcher *power.Dispatcher
	runner     power.Runner
	compositor Compositor

	stdout io.Writer
	stderr io.Writer

	// hold keeps the process alive for shutdown-class actions; replaced in
	// tests so scenario runs can return.
	hold  func()
	sleep func(time.Duration)
}

func New(cfg *config.Config, log *logger.Logger, dispatcher *power.Dispatcher, runner power.Runner, compositor Compositor) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		log:        log,
		dispatcher: dispatcher,
		runner:     runner,
		compositor: compositor,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		hold:       holdUntilKilled,
		sleep:      time.Sleep,
	}
}

// holdUntilKilled parks the process so the compositor keeps showing the held
// black frame. The power transition is expected to kill us.
func holdUntilKilled() {
	for {
		time.Sleep(time.Second)
	}
}

// Run drives the animated path. The animation is cosmetic: handshake
// timeouts are warnings, and only a failed start or a missing logout
// prerequisite aborts the run.
func (o *Orchestrator) Run(action power.Action, animationName string, anim Animator, hold time.Duration) error {
	guard := NewGuard(o.log)
	guard.Acquire()
	defer guard.Release()

	fmt.Fprintf(o.stdout, "[1/3] Starting %s animation...\n", animationName)
	if err := anim.Start(); err != nil {
		fmt.Fprintln(o.stderr, "ERROR: Failed to start animation")
		return err
	}

	fmt.Fprintln(o.stdout, "[2/3] Waiting for overlay...")
	if !anim.WaitReady() {
		fmt.Fprintln(o.stderr, "WARNING: Animation did not signal READY, proceeding anyway")
	}

	fmt.Fprintln(o.stdout, "[3/3] Animation playing...")
	if !anim.WaitBlack() {
		fmt.Fprintln(o.stderr, "WARNING: Animation did not signal BLACK, proceeding anyway")
	}

	fmt.Fprintln(o.stdout, "Animation complete.")
	o.log.Debugf("Executing power action...")
	return o.execute(action, anim, hold)
}

func (o *Orchestrator) execute(action power.Action, anim Animator, hold time.Duration) error {
	if action == power.Test {
		o.log.Debugf("[TEST] Animation complete, waiting %s...", hold)
		fmt.Fprintf(o.stdout, "[TEST] Animation complete. Waiting %s...\n", hold)
		o.sleep(hold)
		anim.Terminate()
		o.compositor.Unfreeze(false)
		o.compositor.ShowCursor(false)
		o.log.Debugf("[TEST] Done")
		fmt.Fprintln(o.stdout, "[TEST] Done.")
		return nil
	}

	cmd, err := o.dispatcher.Resolve(action)
	if err != nil {
		fmt.Fprintln(o.stderr, "ERROR: Could not determine session ID for logout")
		anim.Terminate()
		return err
	}

	if action == power.Windows {
		if err := o.dispatcher.SetBootEntry(); err != nil {
			fmt.Fprintln(o.stderr, "WARNING: Could not set Windows boot entry")
		}
	}

	o.log.Debugf("Executing power action: %s", strings.Join(cmd, " "))
	fmt.Fprintf(o.stdout, "Executing: %s\n", strings.Join(cmd, " "))
	if err := o.runner.Start(cmd); err != nil {
		o.log.Errorf("Failed to launch %s: %v", cmd[0], err)
		fmt.Fprintf(o.stderr, "ERROR: Failed to launch %s\n", cmd[0])
		anim.Terminate()
		return err
	}

	if action.Resumes() {
		// The grace sleep approximates the resume point; the compositor may
		// still be waking up, hence the retrying cleanup.
		o.log.Debugf("Waiting for resume from suspend/hibernate...")
		o.sleep(o.cfg.Power.ResumeGrace)
		anim.Terminate()
		o.compositor.Unfreeze(true)
		o.compositor.ShowCursor(true)
		o.log.Debugf("Resumed from suspend/hibernate, compositor unfrozen")
		return nil
	}

	o.log.Debugf("Holding until system shuts down...")
	o.hold()
	return nil
}

// RunPlain drives the no-animation path: resolve, run synchronously, return.
func (o *Orchestrator) RunPlain(action power.Action, hold time.Duration) error {
	o.log.Debugf("Running without animation: %s", action)
	fmt.Fprintf(o.stdout, "Executing %s (no animation)...\n", action)

	if action == power.Test {
		o.log.Debugf("[TEST] No animation, waiting %s...", hold)
		fmt.Fprintf(o.stdout, "[TEST] No animation. Waiting %s...\n", hold)
		o.sleep(hold)
		o.log.Debugf("[TEST] Done")
		fmt.Fprintln(o.stdout, "[TEST] Done.")
		return nil
	}

	cmd, err := o.dispatcher.Resolve(action)
	if err != nil {
		fmt.Fprintln(o.stderr, "ERROR: Could not determine session ID for logout")
		return err
	}

	if action == power.Windows {
		if err := o.dispatcher.SetBootEntry(); err != nil {
			fmt.Fprintln(o.stderr, "WARNING: Could not set Windows boot entry")
		}
	}

	o.log.Debugf("Executing: %s", strings.Join(cmd, " "))
	if err := o.runner.Run(cmd); err != nil {
		o.log.Warnf("%s exited with error: %v", cmd[0], err)
		return err
	}
	return nil
}

// SetOutput redirects progress and warning streams, for tests.
func (o *Orchestrator) SetOutput(stdout, stderr io.Writer) {
	o.stdout = stdout
	o.stderr = stderr
}
