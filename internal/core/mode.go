// Package core is the orchestration layer.  It composes the random
// source, the console and a session into the guessing loop, and
// provides a builder that assembles that loop from a Config.
//
// Architecture layers (bottom → top):
//
//	random, util  →  session  →  core  →  cmd (CLI)
package core

import "context"

// Mode is a complete operational mode of guessnum.  Each mode owns its
// full lifecycle from session start to termination.
type Mode interface {
	Run(ctx context.Context) error
}
