// Package counter implements a reducer over a single integer count.
//
// Reduce is a pure function of (state, action). Only Increment and
// Decrement are defined; any other action kind is a programming error
// and Reduce reports it instead of returning a usable state.
package counter

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownAction is wrapped by the error Reduce returns for an
// action kind it does not define.
var ErrUnknownAction = errors.New("counter: unknown action")

// Kind names a counter transition.
type Kind string

const (
	Increment Kind = "increment"
	Decrement Kind = "decrement"
)

// Action is a tagged command for Reduce.
type Action struct {
	Type Kind
}

// State is the counter state. Count may go negative.
type State struct {
	Count int
}

// New returns a State starting at initial.
func New(initial int) State {
	return State{Count: initial}
}

// Reduce applies a to s. For an undefined action kind it returns the
// zero State and an error wrapping ErrUnknownAction; callers must not
// use the State in that case.
func Reduce(s State, a Action) (State, error) {
	switch a.Type {
	case Increment:
		return State{Count: s.Count + 1}, nil
	case Decrement:
		return State{Count: s.Count - 1}, nil
	default:
		return State{}, fmt.Errorf("%w %q", ErrUnknownAction, a.Type)
	}
}

// Store holds the current State and applies actions through Reduce,
// the way a view owns its reducer state between renders. A Store is
// not safe for concurrent use.
type Store struct {
	state  State
	logger *slog.Logger
}

// NewStore returns a Store starting at initial.
func NewStore(initial int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{state: New(initial), logger: logger.With("component", "counter")}
}

// State returns the committed state.
func (st *Store) State() State {
	return st.state
}

// Dispatch reduces a against the committed state and commits the
// result. A reducer error is returned as is and nothing is committed.
func (st *Store) Dispatch(a Action) error {
	next, err := Reduce(st.state, a)
	if err != nil {
		st.logger.Error("dispatch rejected", "action", a.Type, "error", err)
		return err
	}
	st.logger.Debug("dispatch", "action", a.Type, "from", st.state.Count, "to", next.Count)
	st.state = next
	return nil
}
