package animation

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/b0bbywan/go-power-manager/logger"
)

const (
	// effectProgram is the shutdown-effect entry point probed on PATH.
	effectProgram = "shutdown-effect"
	// entryScript is the per-animation entry script inside an animations dir.
	entryScript = "animate.py"
	// effectsDirEnv overrides animation directory discovery.
	effectsDirEnv = "SHUTDOWN_EFFECTS_DIR"
)

// Resolver locates animation entry scripts by name and enumerates the
// installed animations.
type Resolver interface {
	// Script returns the filesystem path of the animation's entry script,
	// or a NotFoundError.
	Script(name string) (string, error)
	// List returns the installed animation names, sorted.
	List() ([]string, error)
}

// NewResolver picks a resolver implementation by probing availability: the
// shutdown-effect program's own discovery when it is installed, otherwise a
// directory scan over the known animation locations.
func NewResolver(log *logger.Logger) Resolver {
	if path, err := exec.LookPath(effectProgram); err == nil {
		log.Debugf("Animation discovery via %s", path)
		return &execResolver{program: path}
	}
	log.Debugf("shutdown-effect not installed, using directory discovery")
	return &dirResolver{}
}

// execResolver delegates discovery to the installed shutdown-effect program.
type execResolver struct {
	program string
}

func (r *execResolver) Script(name string) (string, error) {
	out, err := exec.Command(r.program, "--locate", name).Output()
	if err != nil {
		return "", &NotFoundError{Name: name}
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}

func (r *execResolver) List() ([]string, error) {
	out, err := exec.Command(r.program, "--list").Output()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// dirResolver scans a local animations directory, found through the
// environment override, the user config directory, or the legacy sibling
// directory next to the executable, in that order.
type dirResolver struct{}

func (r *dirResolver) animationsDir() (string, bool) {
	if dir := os.Getenv(effectsDirEnv); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".config", "shutdown-effect", "animations")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "..", "shutdown-effect", "animations")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return "", false
}

func (r *dirResolver) Script(name string) (string, error) {
	dir, ok := r.animationsDir()
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	script := filepath.Join(dir, name, entryScript)
	if _, err := os.Stat(script); err != nil {
		return "", &NotFoundError{Name: name}
	}
	return script, nil
}

func (r *dirResolver) List() ([]string, error) {
	dir, ok := r.animationsDir()
	if !ok {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), entryScript)); err == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
