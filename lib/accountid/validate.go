// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import "fmt"

const (
	// MinLength is the shortest valid account ID.
	MinLength = 2

	// MaxLength is the longest valid account ID.
	MaxLength = 64
)

// bodyChars is the set of non-separator characters permitted in an
// account ID (a-z, 0-9). Checked via a lookup table for O(1)
// per-character validation. Separators (-, _, .) are classified by
// isSeparator; everything else is invalid.
var bodyChars [256]bool

func init() {
	for c := 'a'; c <= 'z'; c++ {
		bodyChars[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		bodyChars[c] = true
	}
}

// isSeparator reports whether r is one of the three separator
// characters.
func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.'
}

// Validate checks a string against the account ID grammar. It returns
// nil for a valid ID and a *ParseError describing the first violation
// otherwise.
//
// Checks run in a fixed precedence: the length bounds first, then a
// single left-to-right scan over code points. The scan starts in
// "previous character was a separator" state so that a leading
// separator fails the same way an interior doubled separator does, and
// a string ending on a separator fails after the scan at the final
// character's index.
//
// The scan inspects code points, not bytes, so a non-ASCII character is
// rejected as ErrInvalidChar at its own index rather than as a series
// of meaningless byte errors.
func Validate(s string) error {
	if len(s) < MinLength {
		return lengthError(ErrTooShort)
	}
	if len(s) > MaxLength {
		return lengthError(ErrTooLong)
	}

	// Seeding the separator state as true makes a leading separator
	// ill-formed uniformly with interior redundant separators.
	lastWasSeparator := true

	index := -1
	var last rune
	for _, r := range s {
		index++
		last = r

		var separator bool
		switch {
		case r < 256 && bodyChars[r]:
			separator = false
		case isSeparator(r):
			separator = true
		default:
			return charError(ErrInvalidChar, index, r)
		}

		if separator && lastWasSeparator {
			return charError(ErrRedundantSeparator, index, r)
		}
		lastWasSeparator = separator
	}

	if lastWasSeparator {
		return charError(ErrRedundantSeparator, index, last)
	}
	return nil
}

// MustValidate is like Validate but panics on error. Use for
// package-level account ID constants and test fixtures, where an
// invalid string is a defect in the program rather than a runtime
// condition to recover from.
//
//	func init() { accountid.MustValidate("registrar") }
//
// The grammar is identical to Validate's — this is a panicking wrapper
// around the same scan, not a second implementation.
func MustValidate(s string) {
	if err := Validate(s); err != nil {
		panic(fmt.Sprintf("accountid.MustValidate(%q): %v", s, err))
	}
}
