// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import "strings"

// SystemAccount is the reserved protocol-internal account name. It
// passes the grammar but is carved out of the top-level account space:
// no user can create or control it.
const SystemAccount = "system"

// AccountType is the structural category of a valid account ID,
// computed purely from the string's shape and never stored.
type AccountType int

const (
	// NamedAccount is any valid account that is neither NEAR-implicit
	// nor ETH-implicit.
	NamedAccount AccountType = iota
	// NearImplicitAccount is a 64-character lowercase hex address — the
	// hex encoding of an ED25519 public key.
	NearImplicitAccount
	// EthImplicitAccount is "0x" followed by 40 lowercase hex
	// characters — an EVM address.
	EthImplicitAccount
)

// IsImplicit reports whether the account type is one of the
// cryptographically-derived categories.
func (t AccountType) IsImplicit() bool {
	return t == NearImplicitAccount || t == EthImplicitAccount
}

// String returns the category name used in CLI output and diagnostics.
func (t AccountType) String() string {
	switch t {
	case NamedAccount:
		return "named"
	case NearImplicitAccount:
		return "near-implicit"
	case EthImplicitAccount:
		return "eth-implicit"
	default:
		return "unknown"
	}
}

// ethImplicitLength is the exact byte length of an ETH-implicit
// account: "0x" plus 40 hex characters.
const ethImplicitLength = 42

// nearImplicitLength is the exact byte length of a NEAR-implicit
// account: 64 hex characters.
const nearImplicitLength = 64

// isLowerHex reports whether every byte of s is a lowercase hex digit.
// Byte-wise on purpose: uppercase hex or any non-hex byte disqualifies
// the implicit classification even though the string may satisfy the
// general grammar.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func isEthImplicit(s string) bool {
	return len(s) == ethImplicitLength && strings.HasPrefix(s, "0x") && isLowerHex(s[2:])
}

func isNearImplicit(s string) bool {
	return len(s) == nearImplicitLength && isLowerHex(s)
}

// Type classifies the account by textual shape: ETH-implicit if exactly
// 42 bytes starting "0x" with 40 lowercase hex digits, otherwise
// NEAR-implicit if exactly 64 lowercase hex digits, otherwise a named
// account. The result is a pure function of the bytes — calling Type
// twice on the same value always yields the same category.
func (r Ref) Type() AccountType {
	if isEthImplicit(r.id) {
		return EthImplicitAccount
	}
	if isNearImplicit(r.id) {
		return NearImplicitAccount
	}
	return NamedAccount
}

// IsSystem reports whether this is the reserved system account.
func (r Ref) IsSystem() bool {
	return r.id == SystemAccount
}

// IsTopLevel reports whether the account is top-level: it contains no
// "." and is not the reserved system account. The system carve-out is
// explicit policy, not derivable from syntax — "system" matches the
// shape of a top-level name but is never one.
func (r Ref) IsTopLevel() bool {
	return !r.IsSystem() && !strings.Contains(r.id, ".")
}

// Parent returns the account obtained by splitting at the first "."
// and keeping the remainder: the parent of "app.alice.near" is
// "alice.near". Returns a zero Ref and false when the account has no
// "." (top-level and implicit accounts have no parent).
//
// The returned view skips re-validation — the remainder of a valid
// account ID split at a separator is itself valid by the grammar.
func (r Ref) Parent() (Ref, bool) {
	_, rest, found := strings.Cut(r.id, ".")
	if !found {
		return Ref{}, false
	}
	return newRefUnvalidated(rest), true
}

// IsSubAccountOf reports whether the account is a direct child of
// parent: it ends with "." + parent and the leading portion contains no
// further ".". "app.alice.near" is a sub-account of "alice.near" but
// not of "near" — only the immediate parent qualifies.
func (r Ref) IsSubAccountOf(parent Ref) bool {
	prefix, found := strings.CutSuffix(r.id, parent.id)
	if !found {
		return false
	}
	prefix, found = strings.CutSuffix(prefix, ".")
	if !found {
		return false
	}
	return !strings.Contains(prefix, ".")
}
