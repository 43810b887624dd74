// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrParse classifies every malformed-input failure of Load/LoadFile.
	// The concrete error is a *ParseError carrying the offending line.
	ErrParse = errors.New("instance: parse error")

	// ErrTooFewPoints indicates a degenerate instance (n < 2).
	ErrTooFewPoints = errors.New("instance: at least 2 points required")
)

// ParseError describes a malformed line of an instance file.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error  // underlying cause (strconv error or a short reason)
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("instance: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every *ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
