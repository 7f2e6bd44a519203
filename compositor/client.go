package compositor

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
)

// Methods invoked on the Wayfire control socket.
const (
	MethodUnfreeze   = "screen-freeze/unfreeze"
	MethodShowCursor = "cursor-control/show"
)

// replies are read whole but never inspected; cap them anyway.
const maxReplySize = 1 << 20

// request is a Wayfire IPC invocation. The methods used here carry no
// payload, so data is always the empty object.
type request struct {
	Method string         `json:"method"`
	Data   map[string]any `json:"data"`
}

// Client sends fire-and-forget method invocations to the Wayfire control
// socket. Every frame is a 4-byte little-endian length prefix followed by a
// JSON object; one reply is read and discarded per call. Failures never
// propagate beyond an error return: compositor cleanup is cosmetic and must
// not block the power transition.
type Client struct {
	cfg *config.CompositorConfig
	log *logger.Logger
}

func NewClient(cfg *config.CompositorConfig, log *logger.Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// Send invokes one method and reads back a single reply.
func (c *Client) Send(method string) error {
	conn, err := net.DialTimeout("unix", c.cfg.Socket, c.cfg.Timeout)
	if err != nil {
		return fmt.Errorf("compositor: connect %s: %w", c.cfg.Socket, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.cfg.Timeout)); err != nil {
		return fmt.Errorf("compositor: deadline: %w", err)
	}

	msg, err := json.Marshal(request{Method: method, Data: map[string]any{}})
	if err != nil {
		return fmt.Errorf("compositor: encode %s: %w", method, err)
	}

	frame := make([]byte, 4+len(msg))
	binary.LittleEndian.PutUint32(frame, uint32(len(msg)))
	copy(frame[4:], msg)
	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("compositor: send %s: %w", method, err)
	}

	var header [4]byte
	if _, err := io.ReadFull(conn, header[:]); err != nil {
		return fmt.Errorf("compositor: reply header for %s: %w", method, err)
	}
	size := binary.LittleEndian.Uint32(header[:])
	if size > maxReplySize {
		return fmt.Errorf("compositor: oversized reply for %s: %d bytes", method, size)
	}
	if _, err := io.CopyN(io.Discard, conn, int64(size)); err != nil {
		return fmt.Errorf("compositor: reply body for %s: %w", method, err)
	}
	return nil
}

// SendWithRetry re-attempts Send with a fixed backoff, for post-resume
// cleanup when the compositor may not yet be responsive. Attempt count and
// delay come from config.
func (c *Client) SendWithRetry(method string) error {
	var err error
	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		if err = c.Send(method); err == nil {
			return nil
		}
		c.log.Warnf("IPC %s failed: %v", method, err)
		if attempt < c.cfg.RetryAttempts {
			c.log.Debugf("Retrying %s in %s (attempt %d/%d)", method, c.cfg.RetryDelay, attempt, c.cfg.RetryAttempts)
			time.Sleep(c.cfg.RetryDelay)
		}
	}
	c.log.Errorf("IPC %s failed after %d attempts", method, c.cfg.RetryAttempts)
	return err
}

// Unfreeze lifts the compositor's screen freeze. Failures are logged only.
func (c *Client) Unfreeze(retry bool) {
	if c.invoke(MethodUnfreeze, retry) {
		c.log.Debugf("Compositor unfrozen")
	}
}

// ShowCursor restores the cursor. Failures are logged only.
func (c *Client) ShowCursor(retry bool) {
	if c.invoke(MethodShowCursor, retry) {
		c.log.Debugf("Cursor restored")
	}
}

func (c *Client) invoke(method string, retry bool) bool {
	var err error
	if retry {
		err = c.SendWithRetry(method)
	} else {
		if err = c.Send(method); err != nil {
			c.log.Warnf("IPC %s failed: %v", method, err)
		}
	}
	return err == nil
}
