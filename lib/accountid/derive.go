// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Implicit accounts are account IDs whose text is a fixed-length hex
// encoding of key material rather than a chosen name. The constructors
// here are the only places in this package that build account IDs
// without running the validator: a lowercase hex encoding of the
// correct length is valid by construction.

// evmAddressSize is the byte length of an EVM address.
const evmAddressSize = 20

// FromED25519PublicKey derives the NEAR-implicit account ID for an
// ED25519 public key: the lowercase hex encoding of its 32 bytes. The
// result always classifies as NearImplicitAccount.
func FromED25519PublicKey(pub ed25519.PublicKey) (AccountID, error) {
	if len(pub) != ed25519.PublicKeySize {
		return AccountID{}, fmt.Errorf("derive implicit account: public key is %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}
	return newUnvalidated(hex.EncodeToString(pub)), nil
}

// FromEVMAddress derives the ETH-implicit account ID for an EVM
// address: "0x" followed by the lowercase hex encoding of its 20 bytes.
// The result always classifies as EthImplicitAccount.
func FromEVMAddress(address [evmAddressSize]byte) AccountID {
	return newUnvalidated("0x" + hex.EncodeToString(address[:]))
}

// EVMAddressFromECDSAPublicKey computes the EVM address for a secp256k1
// public key using the standard Ethereum rule: the last 20 bytes of the
// Keccak-256 digest of the uncompressed curve point. Accepts the
// 65-byte SEC1 uncompressed form (leading 0x04) or the 64-byte raw
// X||Y coordinates.
func EVMAddressFromECDSAPublicKey(pub []byte) ([evmAddressSize]byte, error) {
	var address [evmAddressSize]byte
	switch len(pub) {
	case 65:
		if pub[0] != 0x04 {
			return address, fmt.Errorf("derive EVM address: 65-byte key must start with 0x04, got %#02x", pub[0])
		}
		pub = pub[1:]
	case 64:
	default:
		return address, fmt.Errorf("derive EVM address: public key is %d bytes, want 64 or 65", len(pub))
	}

	digest := sha3.NewLegacyKeccak256()
	digest.Write(pub)
	copy(address[:], digest.Sum(nil)[32-evmAddressSize:])
	return address, nil
}
