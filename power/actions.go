package power

import "fmt"

// Action is a requested power-state transition.
type Action string

const (
	Shutdown  Action = "shutdown"
	Reboot    Action = "reboot"
	Logout    Action = "logout"
	Suspend   Action = "suspend"
	Hibernate Action = "hibernate"
	Windows   Action = "windows"
	Test      Action = "test"
)

// actions in CLI presentation order.
var actions = []Action{Shutdown, Reboot, Logout, Suspend, Hibernate, Windows, Test}

// commands maps each action to its command template. Logout carries a
// placeholder filled with the session id at resolve time. Test maps to nil:
// it never spawns a power transition.
var commands = map[Action][]string{
	Shutdown:  {"sudo", "-A", "shutdown", "-h", "now"},
	Reboot:    {"sudo", "-A", "reboot"},
	Logout:    {"loginctl", "terminate-session", ""},
	Suspend:   {"systemctl", "suspend"},
	Hibernate: {"systemctl", "hibernate"},
	Windows:   {"sudo", "-A", "reboot"},
	Test:      nil,
}

// Actions returns all action names, for CLI arg validation and help text.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return names
}

// ParseAction validates an action name.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	if _, ok := commands[a]; !ok {
		return "", fmt.Errorf("power: unknown action %q", s)
	}
	return a, nil
}

// Template returns a copy of the action's command template, or nil for test
// mode.
func (a Action) Template() []string {
	tmpl := commands[a]
	if tmpl == nil {
		return nil
	}
	out := make([]string, len(tmpl))
	copy(out, tmpl)
	return out
}

// Resumes reports whether the action is expected to return control after a
// resume (suspend/hibernate), requiring post-wake compositor cleanup.
func (a Action) Resumes() bool {
	return a == Suspend || a == Hibernate
}
