package power

import (
	"fmt"

	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
)

// Dispatcher resolves actions to runnable commands and handles the
// action-specific prerequisites: the session id for logout, the one-shot
// boot-entry write for windows.
type Dispatcher struct {
	cfg      *config.PowerConfig
	sessions Sessions
	runner   Runner
	log      *logger.Logger
}

func NewDispatcher(cfg *config.PowerConfig, sessions Sessions, runner Runner, log *logger.Logger) *Dispatcher {
	return &Dispatcher{cfg: cfg, sessions: sessions, runner: runner, log: log}
}

// Resolve returns the command for an action, with the logout session id
// filled in. Logout fails with ErrNoSession when no session can be found;
// no command is issued in that case. Test mode resolves to nil.
func (d *Dispatcher) Resolve(action Action) ([]string, error) {
	cmd := action.Template()
	if action != Logout {
		return cmd, nil
	}

	id, err := d.sessions.CurrentSessionID()
	if err != nil || id == "" {
		d.log.Errorf("Could not determine session ID for logout")
		return nil, ErrNoSession
	}
	d.log.Debugf("Logout: using session ID %s", id)
	cmd[len(cmd)-1] = id
	return cmd, nil
}

// SetBootEntry writes the one-shot alternate boot-entry selection for the
// windows action. Failure is non-fatal for the caller: the reboot proceeds
// either way.
func (d *Dispatcher) SetBootEntry() error {
	d.log.Debugf("Setting Windows boot entry...")
	if err := d.runner.Run([]string{"sudo", "-A", "efibootmgr", "--bootnext", d.cfg.BootEntry}); err != nil {
		d.log.Warnf("efibootmgr failed: %v", err)
		return fmt.Errorf("power: set boot entry %s: %w", d.cfg.BootEntry, err)
	}
	return nil
}
