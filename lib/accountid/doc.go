// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package accountid provides a validated NEAR account identifier type.
//
// A NEAR account ID is a human-readable string between 2 and 64
// characters, built from dot-separated parts:
//
//   - "root", "alice.near", "app.stage.testnet" are valid
//   - Each part consists of lowercase alphanumeric characters
//     separated by "_" or "-"
//   - An ID must not start or end with a separator ("-", "_", "."),
//     and separators must never be adjacent
//
// The package centers on two types. [AccountID] is the owned value
// type: every instance is guaranteed valid from construction, so code
// holding one never re-checks it. [Ref] is a zero-copy view over an
// already-validated string, for transient inspection (classification,
// parent/child checks) without allocating. Conversion in both
// directions is free — Go strings are immutable references, so neither
// direction copies the underlying bytes.
//
// Validation failures are reported as a [*ParseError] carrying an
// [ErrorKind] and, for character-level failures, the offending code
// point and its position. Violations are reported in scan order: length
// bounds first, then the first character that trips a rule left to
// right.
//
// Account IDs whose entire text is a fixed-length hex encoding of key
// material are "implicit" accounts. [Ref.Type] distinguishes
// NEAR-implicit (64 hex characters), ETH-implicit ("0x" + 40 hex
// characters), and named accounts by shape alone; [FromED25519PublicKey]
// and [FromEVMAddress] derive the implicit forms from key material.
//
// The canonical serialization is the raw string itself. AccountID
// implements encoding.TextMarshaler/TextUnmarshaler (JSON, YAML, CBOR
// via lib/codec) and encoding.BinaryMarshaler/BinaryUnmarshaler (u32
// little-endian length prefix + UTF-8 bytes, matching the borsh string
// layout used on the wire by nearcore). Every decode path re-runs
// validation — bytes of external origin are never trusted.
package accountid
