// Package errors provides sentinel errors and error types for the
// rules engine. It defines the caller-facing error taxonomy and a
// structured move error that preserves context while allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the recoverable failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a candidate move that is not in the
	// legal-move set for the current position and side to move. This
	// covers wrong-colour pieces, blocked paths, moving into check and
	// malformed or off-board coordinates alike.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted after checkmate or
	// stalemate has been reached.
	ErrGameOver = errors.New("game over")
)

// MoveError wraps a rejected move with context: the move in coordinate
// form, whose turn it was, and an optional reason. It implements the
// error interface and supports unwrapping via errors.Is() and
// errors.As(). Bad move input is always data to validate, never a
// programming failure, so MoveError is recoverable by design of the
// callers.
type MoveError struct {
	Err    error  // The underlying sentinel
	Move   string // The rejected move, e.g. "e2e5"
	Turn   string // Side to move when the rejection happened
	Reason string // Extra detail, e.g. the terminal status
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.Turn != "" {
		parts = append(parts, fmt.Sprintf("%s to move", e.Turn))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}
