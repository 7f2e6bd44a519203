package power

import (
	"github.com/b0bbywan/go-power-manager/logger"
)

// Sessions looks up the current login session, the logout prerequisite.
type Sessions interface {
	// CurrentSessionID returns the session id to terminate on logout, or an
	// empty string when none could be determined.
	CurrentSessionID() (string, error)
}

// NewSessions picks a session lookup implementation by probing availability:
// logind over the system bus when reachable, otherwise loginctl output
// parsing.
func NewSessions(log *logger.Logger) Sessions {
	if s, err := newLogin1Sessions(log); err == nil {
		log.Debugf("Session lookup via logind D-Bus")
		return s
	}
	log.Debugf("logind D-Bus unavailable, using loginctl")
	return &loginctlSessions{log: log}
}
