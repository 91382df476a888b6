// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import (
	"fmt"
	"strings"
)

// Ref is a validated, zero-copy view over an account ID string.
//
// Ref is to [AccountID] what a string slice is to an owned buffer in
// languages with explicit ownership. In Go both types hold a string
// header (pointer + length) over the same immutable bytes, so the
// distinction is one of contract rather than layout: AccountID is the
// long-lived value you store and serialize, Ref is the transient view
// you inspect. Constructing either from the other copies nothing.
//
// A Ref constructed through [NewRef] has been validated; Refs produced
// internally (for example by [Ref.Parent]) are valid by grammar
// construction. The zero value is not valid; use IsZero to check.
type Ref struct {
	id string
}

// NewRef validates s and wraps it as a Ref view. No allocation: the
// view shares s's backing bytes.
func NewRef(s string) (Ref, error) {
	if err := Validate(s); err != nil {
		return Ref{}, err
	}
	return Ref{id: s}, nil
}

// MustNewRef is like NewRef but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustNewRef(s string) Ref {
	r, err := NewRef(s)
	if err != nil {
		panic(fmt.Sprintf("accountid.MustNewRef(%q): %v", s, err))
	}
	return r
}

// newRefUnvalidated wraps a string whose validity the caller has
// established structurally — a substring of an already-valid account ID
// split at a "." separator is itself valid by the grammar. Package
// private: external callers must use NewRef.
func newRefUnvalidated(s string) Ref {
	return Ref{id: s}
}

// String returns the account ID text.
func (r Ref) String() string { return r.id }

// Bytes returns the account ID text as a byte slice. The slice is a
// fresh copy — Go does not permit aliasing a string's bytes mutably.
func (r Ref) Bytes() []byte { return []byte(r.id) }

// Len returns the byte length of the viewed account ID.
func (r Ref) Len() int { return len(r.id) }

// IsZero reports whether the Ref is the zero value (uninitialized).
func (r Ref) IsZero() bool { return r.id == "" }

// Owned promotes the view to an owned [AccountID]. Go strings are
// immutable, so no byte copy occurs; the promoted value shares the
// same backing bytes and inherits the validity invariant.
func (r Ref) Owned() AccountID { return AccountID{id: r.id} }

// Equal reports whether two views have equal text.
func (r Ref) Equal(other Ref) bool { return r.id == other.id }

// Compare lexicographically compares the two views' bytes, returning
// -1, 0, or +1 in the strings.Compare convention. All owned/view/string
// comparison combinations collapse to this routine.
func (r Ref) Compare(other Ref) int { return strings.Compare(r.id, other.id) }

// MarshalText implements encoding.TextMarshaler so Refs embedded in
// diagnostic structures serialize as their raw text. Refs are views —
// deserialization targets should use AccountID, which owns its text.
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.id), nil
}
