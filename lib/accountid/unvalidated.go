// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

//go:build accountid_internal_unsafe

package accountid

// NewUnvalidated wraps s as an AccountID without running validation.
//
// This exists for staged-validation callers that, for historical
// protocol reasons, construct account IDs first and validate them
// later. It is compiled only under the accountid_internal_unsafe build
// tag and is excluded from the package's safe contract: the caller
// bears full responsibility for ensuring s is valid, for example by
// running [Validate] before the value is used. Every other part of
// this package assumes the AccountID invariant holds.
func NewUnvalidated(s string) AccountID {
	return newUnvalidated(s)
}
