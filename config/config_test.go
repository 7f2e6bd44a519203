package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	if cfg.DefaultAnimation != "fire" {
		t.Errorf("DefaultAnimation = %q, want fire", cfg.DefaultAnimation)
	}
	if cfg.DebugLog != "/tmp/power-manager-debug.log" {
		t.Errorf("DebugLog = %q", cfg.DebugLog)
	}

	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"animation.ready_timeout", cfg.Animation.ReadyTimeout, 5 * time.Second},
		{"animation.black_timeout", cfg.Animation.BlackTimeout, 30 * time.Second},
		{"animation.terminate_grace", cfg.Animation.TerminateGrace, 2 * time.Second},
		{"compositor.timeout", cfg.Compositor.Timeout, 2 * time.Second},
		{"compositor.retry_delay", cfg.Compositor.RetryDelay, time.Second},
		{"power.resume_grace", cfg.Power.ResumeGrace, 3 * time.Second},
		{"power.default_hold", cfg.Power.DefaultHold, 3 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}

	if cfg.Compositor.RetryAttempts != 5 {
		t.Errorf("RetryAttempts = %d, want 5", cfg.Compositor.RetryAttempts)
	}
	if cfg.Power.BootEntry != "0003" {
		t.Errorf("BootEntry = %q, want 0003", cfg.Power.BootEntry)
	}
}

func TestWayfireSocket_EnvOverride(t *testing.T) {
	t.Setenv("WAYFIRE_SOCKET", "/tmp/wf.sock")
	cfg := New()
	if cfg.Compositor.Socket != "/tmp/wf.sock" {
		t.Errorf("Socket = %q, want /tmp/wf.sock", cfg.Compositor.Socket)
	}
}

func TestWayfireSocket_RuntimeDirFallback(t *testing.T) {
	t.Setenv("WAYFIRE_SOCKET", "")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	cfg := New()
	if cfg.Compositor.Socket != "/run/user/1000/wayfire-wayland-1.socket" {
		t.Errorf("Socket = %q", cfg.Compositor.Socket)
	}
}
