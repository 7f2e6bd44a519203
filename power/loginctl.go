package power

import (
	"os/exec"
	"strings"

	"github.com/b0bbywan/go-power-manager/logger"
)

// loginctlSessions is the exec fallback for session lookup when logind is
// not reachable over D-Bus.
type loginctlSessions struct {
	log *logger.Logger
}

func (l *loginctlSessions) CurrentSessionID() (string, error) {
	out, err := exec.Command("loginctl", "list-sessions", "--no-legend").Output()
	if err != nil {
		l.log.Debugf("loginctl list-sessions failed: %v", err)
		return "", err
	}
	return parseSessionID(string(out)), nil
}

// parseSessionID returns the first token of the first non-empty line.
func parseSessionID(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}
