// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary wire form: a u32 little-endian byte-length prefix followed by
// the raw UTF-8 bytes. This is the borsh string layout nearcore uses on
// the wire, so frames produced here are bit-compatible with borsh
// encoders. Decoding always re-runs validation — binary-origin bytes
// are never trusted to hold the invariant.

// binaryPrefixSize is the size of the length prefix in bytes.
const binaryPrefixSize = 4

// MarshalBinary implements encoding.BinaryMarshaler. A zero-value
// AccountID cannot be framed: its empty text would decode as a
// too-short ID, so marshaling it is an error rather than a silent
// invalid frame.
func (id AccountID) MarshalBinary() ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("marshal account ID: zero value")
	}
	return id.AppendBinary(make([]byte, 0, binaryPrefixSize+len(id.id)))
}

// AppendBinary appends the wire frame to b and returns the extended
// slice.
func (id AccountID) AppendBinary(b []byte) ([]byte, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("marshal account ID: zero value")
	}
	b = binary.LittleEndian.AppendUint32(b, uint32(len(id.id)))
	return append(b, id.id...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The frame must
// be exact: a length prefix, precisely that many bytes, and nothing
// trailing. The decoded text must satisfy the grammar, failing with the
// same *ParseError that Parse would return.
func (id *AccountID) UnmarshalBinary(data []byte) error {
	if len(data) < binaryPrefixSize {
		return fmt.Errorf("unmarshal account ID: frame is %d bytes, need at least %d for the length prefix", len(data), binaryPrefixSize)
	}
	length := binary.LittleEndian.Uint32(data)
	if length > MaxLength {
		return fmt.Errorf("unmarshal account ID: declared length %d exceeds maximum %d", length, MaxLength)
	}
	payload := data[binaryPrefixSize:]
	if uint32(len(payload)) != length {
		return fmt.Errorf("unmarshal account ID: declared length %d, got %d payload bytes", length, len(payload))
	}
	parsed, err := Parse(string(payload))
	if err != nil {
		return fmt.Errorf("unmarshal account ID: %w", err)
	}
	*id = parsed
	return nil
}

// WriteBinary writes id's wire frame to w.
func WriteBinary(w io.Writer, id AccountID) error {
	frame, err := id.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write account ID frame: %w", err)
	}
	return nil
}

// ReadBinary reads one wire frame from r and decodes it. Unlike
// UnmarshalBinary it consumes exactly one frame, leaving any following
// bytes unread, so frames can be streamed back to back.
func ReadBinary(r io.Reader) (AccountID, error) {
	var prefix [binaryPrefixSize]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return AccountID{}, fmt.Errorf("read account ID length prefix: %w", err)
	}
	length := binary.LittleEndian.Uint32(prefix[:])
	if length > MaxLength {
		return AccountID{}, fmt.Errorf("read account ID: declared length %d exceeds maximum %d", length, MaxLength)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return AccountID{}, fmt.Errorf("read account ID payload: %w", err)
	}
	parsed, err := Parse(string(payload))
	if err != nil {
		return AccountID{}, fmt.Errorf("read account ID: %w", err)
	}
	return parsed, nil
}
