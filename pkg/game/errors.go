package game

import "fmt"

// InvalidStateError reports a violation of a GameState invariant (spec §3).
// It surfaces from training initialization and from the move query path;
// it is recoverable only by the caller supplying a corrected state.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("game: invalid state: %s", e.Reason)
}

func invalidState(format string, args ...any) error {
	return &InvalidStateError{Reason: fmt.Sprintf(format, args...)}
}
