package power

import "errors"

// ErrNoSession indicates that no login session id could be determined; the
// logout prerequisite is unavailable and the run must abort without issuing
// a command.
var ErrNoSession = errors.New("power: could not determine session id")
