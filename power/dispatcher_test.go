package power

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/b0bbywan/go-power-manager/config"
	"github.com/b0bbywan/go-power-manager/logger"
)

type fakeSessions struct {
	id  string
	err error
}

func (f *fakeSessions) CurrentSessionID() (string, error) { return f.id, f.err }

type fakeRunner struct {
	ran     [][]string
	started [][]string
	runErr  error
}

func (f *fakeRunner) Run(argv []string) error {
	f.ran = append(f.ran, argv)
	return f.runErr
}

func (f *fakeRunner) Start(argv []string) error {
	f.started = append(f.started, argv)
	return nil
}

func testDispatcher(sessions Sessions, runner Runner) *Dispatcher {
	cfg := &config.PowerConfig{BootEntry: "0003"}
	return NewDispatcher(cfg, sessions, runner, logger.Discard())
}

func TestResolve_Logout(t *testing.T) {
	d := testDispatcher(&fakeSessions{id: "c2"}, &fakeRunner{})
	cmd, err := d.Resolve(Logout)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"loginctl", "terminate-session", "c2"}
	if !reflect.DeepEqual(cmd, want) {
		t.Errorf("Resolve(logout) = %v, want %v", cmd, want)
	}
}

func TestResolve_LogoutNoSession(t *testing.T) {
	tests := []struct {
		name     string
		sessions Sessions
	}{
		{"empty id", &fakeSessions{id: ""}},
		{"lookup error", &fakeSessions{err: fmt.Errorf("bus unreachable")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDispatcher(tt.sessions, &fakeRunner{})
			cmd, err := d.Resolve(Logout)
			if !errors.Is(err, ErrNoSession) {
				t.Errorf("Resolve should return ErrNoSession, got %v", err)
			}
			if cmd != nil {
				t.Errorf("no command should be returned, got %v", cmd)
			}
		})
	}
}

func TestResolve_PassthroughActions(t *testing.T) {
	d := testDispatcher(&fakeSessions{}, &fakeRunner{})
	for _, action := range []Action{Shutdown, Reboot, Suspend, Hibernate, Windows} {
		cmd, err := d.Resolve(action)
		if err != nil {
			t.Errorf("Resolve(%s): %v", action, err)
		}
		if !reflect.DeepEqual(cmd, action.Template()) {
			t.Errorf("Resolve(%s) = %v, want template %v", action, cmd, action.Template())
		}
	}
}

func TestResolve_TestIsNull(t *testing.T) {
	d := testDispatcher(&fakeSessions{}, &fakeRunner{})
	cmd, err := d.Resolve(Test)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cmd != nil {
		t.Errorf("Resolve(test) = %v, want nil", cmd)
	}
}

func TestSetBootEntry(t *testing.T) {
	runner := &fakeRunner{}
	d := testDispatcher(&fakeSessions{}, runner)
	if err := d.SetBootEntry(); err != nil {
		t.Fatalf("SetBootEntry: %v", err)
	}
	want := []string{"sudo", "-A", "efibootmgr", "--bootnext", "0003"}
	if len(runner.ran) != 1 || !reflect.DeepEqual(runner.ran[0], want) {
		t.Errorf("SetBootEntry ran %v, want %v", runner.ran, want)
	}
}

func TestSetBootEntry_FailureIsReported(t *testing.T) {
	runner := &fakeRunner{runErr: fmt.Errorf("exit status 1")}
	d := testDispatcher(&fakeSessions{}, runner)
	if err := d.SetBootEntry(); err == nil {
		t.Error("SetBootEntry should surface the failure to the caller")
	}
}
