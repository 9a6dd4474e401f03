package errors

import (
	"fmt"
	"strconv"
	"testing"
)

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "high",
				Value:   1,
				Message: "must be >= --low (5)",
				Hint:    "swap the bounds",
			},
			want: "config: --high=1: must be >= --low (5)\n  hint: swap the bounds",
		},
		{
			name: "missing value no hint",
			err: ConfigError{
				Field:   "low",
				Message: "required",
			},
			want: "config: --low: required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestInvalidRange(t *testing.T) {
	err := InvalidRange(5, 1)
	if err.Field != "high" || err.Value != 1 {
		t.Errorf("wrong fields: Field=%q Value=%v", err.Field, err.Value)
	}
	if !IsConfig(fmt.Errorf("start: %w", err)) {
		t.Error("wrapped InvalidRange should classify as config error")
	}
}

func TestInputError_FormatAndUnwrap(t *testing.T) {
	_, perr := strconv.Atoi("seven")
	err := WrapInput("seven", perr)

	want := `invalid input "seven": not a whole number`
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !Is(err, strconv.ErrSyntax) {
		t.Error("should unwrap to strconv.ErrSyntax")
	}
	if !IsInput(fmt.Errorf("read: %w", err)) {
		t.Error("wrapped InputError should classify as input error")
	}
	if IsConfig(err) {
		t.Error("InputError must not classify as config error")
	}
}

func TestSentinels(t *testing.T) {
	if Is(ErrInputClosed, ErrSessionTerminated) || Is(ErrSessionTerminated, ErrInputClosed) {
		t.Error("sentinels should be distinct")
	}
	if !Is(fmt.Errorf("loop: %w", ErrInputClosed), ErrInputClosed) {
		t.Error("wrapped sentinel should match")
	}
}

func TestJoin(t *testing.T) {
	err := Join(ErrInputClosed, New("other"))
	if !Is(err, ErrInputClosed) {
		t.Error("joined error should match ErrInputClosed")
	}
}
