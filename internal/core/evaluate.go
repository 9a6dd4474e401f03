package core

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	gerrors "guessnum/internal/errors"
	"guessnum/util"
)

// Console text.
const (
	PromptFirst   = "Guess the number (between %d and %d): "
	PromptRetry   = "Try again: "
	MsgIncorrect  = "Incorrect..."
	MsgCorrect    = "Correct!"
	MsgHigher     = "Higher!"
	MsgLower      = "Lower!"
	MsgInvalidFmt = "Invalid input: %q is not a whole number\n"
)

// Outcome is the result of comparing a guess against the target.
type Outcome int

const (
	NoMatch Outcome = iota
	Match
)

func (o Outcome) String() string {
	if o == Match {
		return "match"
	}
	return "no-match"
}

// Evaluate returns Match iff guess equals target.
func Evaluate(guess, target int) Outcome {
	if guess == target {
		return Match
	}
	return NoMatch
}

// Direction tells the player where the target lies relative to a guess.
type Direction int

const (
	Exact Direction = iota
	Higher
	Lower
)

// Compare returns Higher when the target is above guess, Lower when it
// is below, and Exact otherwise.
func Compare(guess, target int) Direction {
	switch {
	case target > guess:
		return Higher
	case target < guess:
		return Lower
	default:
		return Exact
	}
}

// integerRe matches a signed base-10 integer whose digits may be
// grouped with single underscores, e.g. "1_000".
var integerRe = regexp.MustCompile(`^[+-]?[0-9]+(?:_[0-9]+)*$`)

// ParseGuess parses text as a signed base-10 integer after trimming
// surrounding whitespace.  Leading zeros are decimal ("010" is 10) and
// single underscores between digits are ignored.
func ParseGuess(text string) (int, error) {
	text = strings.TrimSpace(text)
	if !integerRe.MatchString(text) {
		return 0, gerrors.WrapInput(text, strconv.ErrSyntax)
	}
	n, err := strconv.Atoi(strings.ReplaceAll(text, "_", ""))
	if err != nil {
		return 0, gerrors.WrapInput(text, err)
	}
	return n, nil
}

// ReadGuess reads one line from in and parses it with ParseGuess.
// Malformed text yields an *errors.InputError; exhausted input yields
// errors.ErrInputClosed.
func ReadGuess(in util.LineReader) (int, error) {
	line, err := in.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, gerrors.ErrInputClosed
		}
		return 0, fmt.Errorf("read guess: %w", err)
	}
	return ParseGuess(line)
}

// Report writes the feedback line for o.
func Report(w io.Writer, o Outcome) error {
	msg := MsgIncorrect
	if o == Match {
		msg = MsgCorrect
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

// Hint writes the higher/lower line for d.  Exact writes nothing.
func Hint(w io.Writer, d Direction) error {
	var err error
	switch d {
	case Higher:
		_, err = fmt.Fprintln(w, MsgHigher)
	case Lower:
		_, err = fmt.Fprintln(w, MsgLower)
	}
	return err
}
