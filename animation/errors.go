package animation

import "fmt"

// NotFoundError indicates that no script exists for the requested animation.
// It is the only animation failure that aborts a run.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("animation not found: %s", e.Name)
}
