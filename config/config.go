package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	AppName    = "power-manager"
	AppVersion = "0.4.1"
)

type Config struct {
	DefaultAnimation string
	DebugLog         string
	Animation        *AnimationConfig
	Compositor       *CompositorConfig
	Power            *PowerConfig
}

type AnimationConfig struct {
	ReadyTimeout   time.Duration
	BlackTimeout   time.Duration
	TerminateGrace time.Duration
}

type CompositorConfig struct {
	Socket        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type PowerConfig struct {
	ResumeGrace time.Duration
	DefaultHold time.Duration
	BootEntry   string
}

// wayfireSocket resolves the compositor control socket: WAYFIRE_SOCKET when
// set, otherwise the default socket under XDG_RUNTIME_DIR.
func wayfireSocket() string {
	if s := os.Getenv("WAYFIRE_SOCKET"); s != "" {
		return s
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = fmt.Sprintf("/run/user/%d", os.Getuid())
	}
	return filepath.Join(runtimeDir, "wayfire-wayland-1.socket")
}

// New returns the resolved configuration. There is no config file: everything
// is a compile-time default, registered through viper so each knob has one
// authoritative name.
func New() *Config {
	v := viper.New()

	v.SetDefault("animation.default", "fire")
	v.SetDefault("animation.ready_timeout", "5s")
	v.SetDefault("animation.black_timeout", "30s")
	v.SetDefault("animation.terminate_grace", "2s")

	v.SetDefault("compositor.timeout", "2s")
	v.SetDefault("compositor.retry_attempts", 5)
	v.SetDefault("compositor.retry_delay", "1s")

	v.SetDefault("power.resume_grace", "3s")
	v.SetDefault("power.default_hold", "3s")
	v.SetDefault("power.boot_entry", "0003")

	v.SetDefault("debug_log", "/tmp/power-manager-debug.log")

	animcfg := AnimationConfig{
		ReadyTimeout:   v.GetDuration("animation.ready_timeout"),
		BlackTimeout:   v.GetDuration("animation.black_timeout"),
		TerminateGrace: v.GetDuration("animation.terminate_grace"),
	}

	compcfg := CompositorConfig{
		Socket:        wayfireSocket(),
		Timeout:       v.GetDuration("compositor.timeout"),
		RetryAttempts: v.GetInt("compositor.retry_attempts"),
		RetryDelay:    v.GetDuration("compositor.retry_delay"),
	}

	powercfg := PowerConfig{
		ResumeGrace: v.GetDuration("power.resume_grace"),
		DefaultHold: v.GetDuration("power.default_hold"),
		BootEntry:   v.GetString("power.boot_entry"),
	}

	return &Config{
		DefaultAnimation: v.GetString("animation.default"),
		DebugLog:         v.GetString("debug_log"),
		Animation:        &animcfg,
		Compositor:       &compcfg,
		Power:            &powercfg,
	}
}
