package core

import (
	"context"
	"fmt"
	"io"
	"os"

	gerrors "guessnum/internal/errors"
	"guessnum/internal/metrics"
	"guessnum/internal/random"
	"guessnum/internal/session"
	"guessnum/util"
)

// GuessMode runs one guessing session: it draws a target, prompts for
// guesses and reports each outcome until the target is guessed.
type GuessMode struct {
	Source random.Source
	Low    int
	High   int

	Hints      bool // print Higher!/Lower! after a miss
	Strict     bool // a malformed line ends the session with an error
	ShowTarget bool // print the target before the first prompt

	Logger  *util.Logger       // nil logs nothing
	Metrics *metrics.Collector // nil disables collection

	// Input defaults to a console over os.Stdin and Stdout to
	// os.Stdout when nil.  Override in tests for deterministic I/O.
	Input  util.LineReader
	Stdout io.Writer
}

func (m *GuessMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

func (m *GuessMode) logger() *util.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return util.NewLogger(0)
}

func (m *GuessMode) input() util.LineReader {
	if m.Input != nil {
		return m.Input
	}
	return util.NewLineReader(os.Stdin)
}

// Run plays a session to completion.
func (m *GuessMode) Run(ctx context.Context) error {
	_, err := m.Play(ctx)
	return err
}

// Play starts a session and drives it until the target is guessed.
// The session is returned even when play stops early, so callers can
// inspect how far it got.
func (m *GuessMode) Play(ctx context.Context) (*session.Session, error) {
	sess, err := session.Start(m.Source, m.Low, m.High)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	log := m.logger().With(sess.ShortID())
	log.Verbose("session started, range [%d, %d]", sess.Low, sess.High)
	log.Debug("target is %d", sess.Target())

	out := m.stdout()
	in := m.input()

	if m.ShowTarget {
		fmt.Fprintln(out, sess.Target())
	}

	prompt := fmt.Sprintf(PromptFirst, sess.Low, sess.High)
	for !sess.Done() {
		if err := ctx.Err(); err != nil {
			log.Verbose("interrupted after %d reads", sess.Reads())
			return sess, err
		}
		fmt.Fprint(out, prompt)
		prompt = PromptRetry

		guess, err := ReadGuess(in)
		if gerrors.Is(err, gerrors.ErrInputClosed) {
			log.Verbose("input closed after %d reads", sess.Reads())
			return sess, err
		}
		sess.LineRead()
		m.Metrics.LineRead()

		var inputErr *gerrors.InputError
		if gerrors.As(err, &inputErr) {
			m.Metrics.InvalidInput(inputErr.Input)
			if m.Strict {
				return sess, err
			}
			log.Warn("ignoring malformed input %q", inputErr.Input)
			fmt.Fprintf(out, MsgInvalidFmt, inputErr.Input)
			continue
		}
		if err != nil {
			return sess, err
		}

		outcome := Evaluate(guess, sess.Target())
		if err := sess.Record(outcome == Match); err != nil {
			return sess, err
		}
		m.Metrics.Guess(outcome == Match)
		log.Debug("guess %d: %s", guess, outcome)

		if err := Report(out, outcome); err != nil {
			return sess, fmt.Errorf("report: %w", err)
		}
		if outcome == NoMatch && m.Hints {
			if err := Hint(out, Compare(guess, sess.Target())); err != nil {
				return sess, fmt.Errorf("hint: %w", err)
			}
		}
	}

	log.Verbose("solved in %d guesses (%d reads)", sess.Guesses(), sess.Reads())
	return sess, nil
}
