// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountidtest_test

import (
	"testing"

	"github.com/nearkit/accountid/lib/accountid"
	"github.com/nearkit/accountid/lib/accountid/accountidtest"
)

func TestGeneratedIDsAlwaysValidate(t *testing.T) {
	gen := accountidtest.New(42)
	for i := 0; i < 2000; i++ {
		id := gen.Any()
		if err := accountid.Validate(id.String()); err != nil {
			t.Fatalf("generated invalid ID %q: %v", id, err)
		}
	}
}

func TestGeneratorCategories(t *testing.T) {
	gen := accountidtest.New(7)
	for i := 0; i < 500; i++ {
		if got := gen.NearImplicit().Type(); got != accountid.NearImplicitAccount {
			t.Fatalf("NearImplicit produced a %s account", got)
		}
		if got := gen.EthImplicit().Type(); got != accountid.EthImplicitAccount {
			t.Fatalf("EthImplicit produced a %s account", got)
		}
		if got := gen.Named().Type(); got != accountid.NamedAccount {
			t.Fatalf("Named produced a %s account", got)
		}
	}
}

func TestGeneratorNamedLengthBounds(t *testing.T) {
	gen := accountidtest.New(11)
	for i := 0; i < 2000; i++ {
		id := gen.Named()
		if id.Len() < accountid.MinLength || id.Len() > accountid.MaxLength {
			t.Fatalf("Named produced %q with length %d", id, id.Len())
		}
	}
}

func TestGeneratorSeedDeterminism(t *testing.T) {
	a := accountidtest.New(123)
	b := accountidtest.New(123)
	for i := 0; i < 100; i++ {
		x, y := a.Any(), b.Any()
		if x != y {
			t.Fatalf("same seed diverged at draw %d: %q vs %q", i, x, y)
		}
	}

	c, d := accountidtest.New(123), accountidtest.New(124)
	diverged := false
	for i := 0; i < 100; i++ {
		if c.Any() != d.Any() {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("different seeds produced identical streams")
	}
}

func TestGeneratorWeights(t *testing.T) {
	gen := accountidtest.New(5)
	gen.SetWeights(accountidtest.Weights{Named: 0, NearImplicit: 1, EthImplicit: 0})
	for i := 0; i < 200; i++ {
		if got := gen.Any().Type(); got != accountid.NearImplicitAccount {
			t.Fatalf("weighted draw produced a %s account", got)
		}
	}
}
