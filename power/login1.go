package power

import (
	"os"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-power-manager/internal/dbus"
	"github.com/b0bbywan/go-power-manager/logger"
)

const (
	LOGIN1_PREFIX    = "org.freedesktop.login1"
	LOGIN1_PATH      = "/org/freedesktop/login1"
	LOGIN1_INTERFACE = LOGIN1_PREFIX + ".Manager"

	LOGIN1_METHOD_LIST_SESSIONS = LOGIN1_INTERFACE + ".ListSessions"

	LOGIN1_SESSION_INTERFACE = LOGIN1_PREFIX + ".Session"
)

// session mirrors one entry of logind's ListSessions reply.
type session struct {
	ID   string
	UID  uint32
	User string
	Seat string
	Path dbus.ObjectPath
}

// login1Sessions resolves the current session through logind on the system
// bus.
type login1Sessions struct {
	conn *dbus.Conn
	log  *logger.Logger
}

func newLogin1Sessions(log *logger.Logger) (*login1Sessions, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}
	return &login1Sessions{conn: conn, log: log}, nil
}

// CurrentSessionID lists the caller's sessions and returns the active one,
// falling back to the first listed.
func (l *login1Sessions) CurrentSessionID() (string, error) {
	obj := idbus.GetObject(l.conn, LOGIN1_PREFIX, dbus.ObjectPath(LOGIN1_PATH))
	call, err := idbus.Call(obj, LOGIN1_METHOD_LIST_SESSIONS)
	if err != nil {
		return "", err
	}

	var sessions []session
	if err := call.Store(&sessions); err != nil {
		return "", err
	}

	uid := uint32(os.Getuid())
	var first string
	for _, s := range sessions {
		if s.UID != uid {
			continue
		}
		if first == "" {
			first = s.ID
		}
		if l.sessionActive(s.Path) {
			return s.ID, nil
		}
	}
	return first, nil
}

func (l *login1Sessions) sessionActive(path dbus.ObjectPath) bool {
	obj := idbus.GetObject(l.conn, LOGIN1_PREFIX, path)
	v, err := idbus.GetProperty(obj, LOGIN1_SESSION_INTERFACE, "Active")
	if err != nil {
		l.log.Debugf("Session %s Active lookup failed: %v", path, err)
		return false
	}
	active, _ := idbus.ExtractBool(v)
	return active
}

// Close releases the system bus connection.
func (l *login1Sessions) Close() {
	if l.conn != nil {
		if err := l.conn.Close(); err != nil {
			l.log.Warnf("Failed to close D-Bus connection: %v", err)
		}
		l.conn = nil
	}
}
