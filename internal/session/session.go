// Package session represents one game of guessnum: a single target
// bound to the sequence of guesses made against it.
//
// A Session is created by Start, accepts guesses while AwaitingGuess,
// and moves to Terminated on the first correct guess.  It is never
// reused.  The target is fixed at creation and not exposed for
// mutation.
package session

import (
	"fmt"

	"github.com/google/uuid"

	gerrors "guessnum/internal/errors"
	"guessnum/internal/random"
)

// State is the position of a session in its lifecycle.
type State int

const (
	AwaitingGuess State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "awaiting-guess"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session encapsulates the state of a single game.
type Session struct {
	ID   string
	Low  int
	High int

	target  int
	state   State
	reads   int
	guesses int
}

// Start draws a target from src within [low, high] and returns a
// session awaiting its first guess.  It fails with a *errors.ConfigError
// when low > high, before src is consulted.
func Start(src random.Source, low, high int) (*Session, error) {
	if low > high {
		return nil, gerrors.InvalidRange(low, high)
	}
	target := src.Between(low, high)
	if target < low || target > high {
		return nil, fmt.Errorf("random source drew %d outside [%d, %d]", target, low, high)
	}
	return &Session{
		ID:     uuid.NewString(),
		Low:    low,
		High:   high,
		target: target,
		state:  AwaitingGuess,
	}, nil
}

// ShortID returns the first eight characters of the session ID, for
// log scopes.
func (s *Session) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}

// Target returns the secret value.
func (s *Session) Target() int { return s.target }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Done reports whether the session has terminated.
func (s *Session) Done() bool { return s.state == Terminated }

// Reads returns how many lines have been read for this session,
// including lines that failed to parse.
func (s *Session) Reads() int { return s.reads }

// Guesses returns how many well-formed guesses were recorded.
func (s *Session) Guesses() int { return s.guesses }

// LineRead counts one read from the input provider.
func (s *Session) LineRead() { s.reads++ }

// Record counts a well-formed guess and terminates the session when it
// matched.  Recording on a terminated session returns
// errors.ErrSessionTerminated.
func (s *Session) Record(matched bool) error {
	if s.state == Terminated {
		return gerrors.ErrSessionTerminated
	}
	s.guesses++
	if matched {
		s.state = Terminated
	}
	return nil
}
