// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import (
	"fmt"
	"strings"
)

// AccountID is an owned, validated NEAR account identifier.
//
// Every AccountID obtained through this package's constructors
// satisfies the grammar checked by [Validate] for its entire lifetime:
// there is no exported construction path that skips validation, and the
// value is never mutated in place — any transformation produces a new
// instance.
//
// AccountID is an immutable comparable value type; == compares two
// AccountIDs by their underlying text. The zero value is not a valid
// account ID; use IsZero to check.
type AccountID struct {
	id string
}

// Parse validates s and wraps it as an AccountID. Go strings are
// immutable, so on success the AccountID shares s's backing bytes —
// no copy is made.
func Parse(s string) (AccountID, error) {
	if err := Validate(s); err != nil {
		return AccountID{}, err
	}
	return AccountID{id: s}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(s string) AccountID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("accountid.MustParse(%q): %v", s, err))
	}
	return id
}

// newUnvalidated wraps a string that has already been established valid
// by construction (hex encodings, substrings of valid IDs split at a
// separator). Package-private: external callers must use Parse, or the
// build-tag-gated NewUnvalidated escape hatch.
func newUnvalidated(s string) AccountID {
	return AccountID{id: s}
}

// String returns the account ID text. An AccountID round-trips exactly
// through its string form: Parse(id.String()) == id.
func (id AccountID) String() string { return id.id }

// Len returns the byte length of the account ID. Valid IDs are ASCII,
// so this is also the character count.
func (id AccountID) Len() int { return len(id.id) }

// IsZero reports whether the AccountID is the zero value
// (uninitialized).
func (id AccountID) IsZero() bool { return id.id == "" }

// AsRef borrows the AccountID as a [Ref] view. Zero cost: the view
// shares the same backing bytes.
func (id AccountID) AsRef() Ref { return Ref{id: id.id} }

// Equal reports whether the account ID's text equals the view's.
// Together with == on same-typed values and String() for plain-string
// comparison, all owned/view/string combinations reduce to the same
// byte-wise comparison and are therefore mutually consistent.
func (id AccountID) Equal(other Ref) bool { return id.id == other.id }

// Compare lexicographically compares the account ID's bytes against the
// view's, returning -1, 0, or +1 in the strings.Compare convention.
func (id AccountID) Compare(other Ref) int { return strings.Compare(id.id, other.id) }

// IsSystem reports whether this is the reserved system account. See
// [Ref.IsSystem].
func (id AccountID) IsSystem() bool { return id.AsRef().IsSystem() }

// IsTopLevel reports whether this is a top-level account. See
// [Ref.IsTopLevel].
func (id AccountID) IsTopLevel() bool { return id.AsRef().IsTopLevel() }

// IsSubAccountOf reports whether this account is a direct child of
// parent. See [Ref.IsSubAccountOf].
func (id AccountID) IsSubAccountOf(parent Ref) bool { return id.AsRef().IsSubAccountOf(parent) }

// Parent returns the parent account view. See [Ref.Parent].
func (id AccountID) Parent() (Ref, bool) { return id.AsRef().Parent() }

// Type classifies the account by its textual shape. See [Ref.Type].
func (id AccountID) Type() AccountType { return id.AsRef().Type() }

// MarshalText implements encoding.TextMarshaler. The canonical text
// form is the raw account ID string — no quoting or framing. A
// zero-value AccountID marshals as the empty string.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, re-validating the
// input. Empty input produces the zero value (unset account ID);
// anything else must satisfy the grammar.
func (id *AccountID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = AccountID{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal account ID: %w", err)
	}
	*id = parsed
	return nil
}
