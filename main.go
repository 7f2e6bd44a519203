package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/b0bbywan/go-power-manager/animation"
	"github.com/b0bbywan/go-power-manager/compositor"
	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
	"github.com/b0bbywan/go-power-manager/orchestrator"
	"github.com/b0bbywan/go-power-manager/power"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode maps run errors to process exit codes: a failed animation start is
// the only hard failure (1); a missing logout prerequisite aborts the run but
// exits 0, having already been reported.
func exitCode(err error) int {
	if errors.Is(err, power.ErrNoSession) {
		return 0
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var animationName string
	var holdSeconds int

	cfg := config.New()

	rootCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <action>", config.AppName),
		Short: "Power action orchestrator with animation hooks",
		Long: fmt.Sprintf(`Coordinates visual animations (via shutdown-effect) with system power
actions. Supports shutdown, reboot, suspend, hibernate, logout, and
reboot-to-Windows.

Actions: %s`, strings.Join(power.Actions(), ", ")),
		Example: fmt.Sprintf(`  %[1]s shutdown                    # Shutdown with default animation
  %[1]s reboot -a fade              # Reboot with fade animation
  %[1]s suspend -a none             # Suspend without animation (instant)
  %[1]s test -a sakura              # Test sakura animation`, config.AppName),
		Version:      config.AppVersion,
		Args:         cobra.ExactArgs(1),
		ValidArgs:    power.Actions(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runAction(cfg, args[0], animationName, holdSeconds)
		},
	}

	rootCmd.Flags().StringVarP(&animationName, "animation", "a", "", "animation name, or none (default: configured animation)")
	rootCmd.Flags().IntVar(&holdSeconds, "hold", int(cfg.Power.DefaultHold.Seconds()), "hold black screen for N seconds in test mode")

	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed animations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := animation.NewResolver(logger.Discard()).List()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no animations found")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func runAction(cfg *config.Config, actionName, animationName string, holdSeconds int) error {
	action, err := power.ParseAction(actionName)
	if err != nil {
		return err
	}

	if animationName == "" {
		animationName = cfg.DefaultAnimation
	}
	hold := time.Duration(holdSeconds) * time.Second

	log, err := logger.New(cfg.DebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %v\n", err)
		log = logger.Discard()
	}
	log.Debugf("Starting %s: action=%s, animation=%s", config.AppName, action, animationName)

	runner := power.NewRunner()
	dispatcher := power.NewDispatcher(cfg.Power, power.NewSessions(log), runner, log)
	client := compositor.NewClient(cfg.Compositor, log)
	orch := orchestrator.New(cfg, log, dispatcher, runner, client)

	if animationName == "none" {
		return orch.RunPlain(action, hold)
	}

	script, err := animation.NewResolver(log).Script(animationName)
	if err != nil {
		log.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return err
	}

	anim := animation.NewProcess(script, cfg.Animation, log)
	return orch.Run(action, animationName, anim, hold)
}
