package power

import (
	"fmt"
	"os/exec"
)

// Runner executes resolved command templates. The two modes mirror the two
// orchestration paths: Run waits for completion, Start launches detached and
// never joins (the child is expected to outlive or kill this process).
type Runner interface {
	Run(argv []string) error
	Start(argv []string) error
}

// NewRunner returns the os/exec backed runner.
func NewRunner() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("power: empty command")
	}
	return exec.Command(argv[0], argv[1:]...).Run()
}

func (execRunner) Start(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("power: empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Fire-and-forget: release the child so holding the process alive does
	// not accumulate an unreaped zombie.
	return cmd.Process.Release()
}
