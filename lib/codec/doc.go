// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by
// consumers of the accountid types.
//
// Account IDs have two interchange forms with a clear boundary:
//
//   - Text (JSON, YAML, CBOR text strings): the raw validated string,
//     via encoding.TextMarshaler/TextUnmarshaler on accountid.AccountID.
//   - Binary frames: the borsh-compatible length-prefixed layout, via
//     encoding.BinaryMarshaler/BinaryUnmarshaler on the same type.
//
// This package wires the text form into CBOR. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items — the same logical data
// always produces identical bytes, so encoded account records are
// directly comparable and hashable. The decoder routes CBOR text
// strings through UnmarshalText, which means every AccountID decoded
// from CBOR has been re-validated.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec
