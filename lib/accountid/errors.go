// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the first grammar rule an account ID string
// violated. A string is wholly valid or wholly rejected — there is no
// partial success and no sanitization.
type ErrorKind int

const (
	// ErrTooShort: the string is shorter than MinLength.
	ErrTooShort ErrorKind = iota
	// ErrTooLong: the string is longer than MaxLength.
	ErrTooLong
	// ErrInvalidChar: a character outside a-z, 0-9, "-", "_", "." was
	// encountered.
	ErrInvalidChar
	// ErrRedundantSeparator: a separator at the start or end of the
	// string, or immediately following another separator.
	ErrRedundantSeparator
)

// String returns a short identifier for the kind ("too-short",
// "invalid-char", ...). Used in CLI diagnostics and log output.
func (k ErrorKind) String() string {
	switch k {
	case ErrTooShort:
		return "too-short"
	case ErrTooLong:
		return "too-long"
	case ErrInvalidChar:
		return "invalid-char"
	case ErrRedundantSeparator:
		return "redundant-separator"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports why a string is not a valid account ID.
//
// The two length kinds (ErrTooShort, ErrTooLong) describe the whole
// string and carry no position — Index is -1 and Char is zero. The two
// character-level kinds carry the offending code point and its 0-based
// code-point index, captured at the moment the scan failed. Multiple
// violations report whichever the left-to-right scan hits first.
type ParseError struct {
	// Kind is the violated rule.
	Kind ErrorKind

	// Char is the code point that tripped the rule. Zero for length
	// errors.
	Char rune

	// Index is the 0-based code-point index of Char, or -1 for length
	// errors.
	Index int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrTooShort:
		return fmt.Sprintf("account ID is too short (minimum length is %d)", MinLength)
	case ErrTooLong:
		return fmt.Sprintf("account ID is too long (maximum length is %d)", MaxLength)
	case ErrInvalidChar:
		return fmt.Sprintf("account ID contains invalid character %q at position %d (allowed: a-z, 0-9, -, _, .)", e.Char, e.Index)
	case ErrRedundantSeparator:
		return fmt.Sprintf("account ID contains redundant separator %q at position %d", e.Char, e.Index)
	default:
		return fmt.Sprintf("account ID is invalid: %s", e.Kind)
	}
}

// IsParseError reports whether err is a *ParseError with the given
// kind, unwrapping as needed.
func IsParseError(err error, kind ErrorKind) bool {
	var parseError *ParseError
	return errors.As(err, &parseError) && parseError.Kind == kind
}

// lengthError constructs a ParseError for a whole-string length
// violation.
func lengthError(kind ErrorKind) *ParseError {
	return &ParseError{Kind: kind, Index: -1}
}

// charError constructs a ParseError for a character-level violation.
func charError(kind ErrorKind, index int, char rune) *ParseError {
	return &ParseError{Kind: kind, Char: char, Index: index}
}
