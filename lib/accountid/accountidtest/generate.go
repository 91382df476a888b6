// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package accountidtest generates random, correct-by-construction
// account IDs for fuzzing and property-based tests.
//
// The generator builds named accounts label by label (each label starts
// and ends with a-z0-9, interior characters may add "-" and "_", never
// adjacently), joins them with ".", and respects the package length
// bounds; implicit forms are built directly from random key-sized hex.
// Every value returned has been constructed to satisfy
// accountid.Validate — a generator output failing validation is a bug
// in this package, reported by panic.
package accountidtest

import (
	"fmt"
	"math/rand/v2"

	"github.com/nearkit/accountid/lib/accountid"
)

const (
	edgeAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
	interiorAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-_"
	hexAlphabet      = "0123456789abcdef"
)

// Weights controls the category mix of [Generator.Any]. Zero-valued
// categories are never produced; an all-zero Weights is treated as
// DefaultWeights.
type Weights struct {
	Named        int
	NearImplicit int
	EthImplicit  int
}

// DefaultWeights favors named accounts, which exercise far more of the
// grammar than the two fixed-shape implicit forms.
var DefaultWeights = Weights{Named: 8, NearImplicit: 1, EthImplicit: 1}

// Generator produces random valid account IDs from a seeded PRNG.
// Deterministic for a given seed, so failing cases can be replayed.
// Not safe for concurrent use; give each goroutine its own Generator.
type Generator struct {
	rng     *rand.Rand
	weights Weights
}

// New returns a Generator seeded with seed and using DefaultWeights.
func New(seed uint64) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewPCG(seed, seed)),
		weights: DefaultWeights,
	}
}

// SetWeights replaces the category mix used by Any.
func (g *Generator) SetWeights(w Weights) {
	g.weights = w
}

// Any returns a random account ID with category chosen by the
// generator's weights.
func (g *Generator) Any() accountid.AccountID {
	w := g.weights
	total := w.Named + w.NearImplicit + w.EthImplicit
	if total <= 0 {
		w = DefaultWeights
		total = w.Named + w.NearImplicit + w.EthImplicit
	}
	pick := g.rng.IntN(total)
	switch {
	case pick < w.Named:
		return g.Named()
	case pick < w.Named+w.NearImplicit:
		return g.NearImplicit()
	default:
		return g.EthImplicit()
	}
}

// Named returns a random named account: one or more labels joined by
// ".", within the 2-64 length bounds.
func (g *Generator) Named() accountid.AccountID {
	budget := accountid.MinLength + g.rng.IntN(accountid.MaxLength-accountid.MinLength+1)

	id := g.label(budget)
	// Keep appending sub-label prefixes while there is room for at
	// least "x." and the coin flip says to continue.
	for len(id)+2 <= budget && g.rng.IntN(2) == 1 {
		id = g.label(budget-len(id)-1) + "." + id
	}

	// A single one-character label is below the minimum total length;
	// widen it to a two-character label.
	if len(id) < accountid.MinLength {
		id += string(edgeAlphabet[g.rng.IntN(len(edgeAlphabet))])
	}

	return mustParse(id)
}

// NearImplicit returns a random NEAR-implicit account: 64 lowercase hex
// characters.
func (g *Generator) NearImplicit() accountid.AccountID {
	return mustParse(g.hex(64))
}

// EthImplicit returns a random ETH-implicit account: "0x" followed by
// 40 lowercase hex characters.
func (g *Generator) EthImplicit() accountid.AccountID {
	return mustParse("0x" + g.hex(40))
}

// label generates a single valid label of at most maxLen characters:
// edge characters from a-z0-9, interior characters may add "-" and "_"
// with no two separators adjacent.
func (g *Generator) label(maxLen int) string {
	if maxLen < 1 {
		maxLen = 1
	}
	length := 1 + g.rng.IntN(maxLen)

	buf := make([]byte, 0, length)
	buf = append(buf, edgeAlphabet[g.rng.IntN(len(edgeAlphabet))])
	lastWasSeparator := false
	for len(buf) < length-1 {
		var c byte
		if lastWasSeparator {
			c = edgeAlphabet[g.rng.IntN(len(edgeAlphabet))]
		} else {
			c = interiorAlphabet[g.rng.IntN(len(interiorAlphabet))]
		}
		lastWasSeparator = c == '-' || c == '_'
		buf = append(buf, c)
	}
	if len(buf) < length {
		buf = append(buf, edgeAlphabet[g.rng.IntN(len(edgeAlphabet))])
	}
	return string(buf)
}

func (g *Generator) hex(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = hexAlphabet[g.rng.IntN(len(hexAlphabet))]
	}
	return string(buf)
}

// mustParse converts generator output through the real parser. The
// generator's whole contract is correctness by construction, so a
// validation failure here is a generator bug.
func mustParse(s string) accountid.AccountID {
	id, err := accountid.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("accountidtest: generated invalid account ID %q: %v", s, err))
	}
	return id
}
