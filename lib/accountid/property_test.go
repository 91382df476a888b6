// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid_test

import (
	"regexp"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/nearkit/accountid/lib/accountid"
	"github.com/nearkit/accountid/lib/accountid/accountidtest"
)

// Validate must agree with the published grammar pattern on arbitrary
// input, with the length bounds applied first.
func TestPropValidateMatchesGrammar(t *testing.T) {
	pattern := regexp.MustCompile(accountid.GrammarPattern)
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		inBounds := len(s) >= accountid.MinLength && len(s) <= accountid.MaxLength
		want := inBounds && pattern.MatchString(s)
		got := accountid.Validate(s) == nil
		if got != want {
			t.Fatalf("Validate(%q) == nil is %v, grammar says %v", s, got, want)
		}
	})
}

func TestPropGrammarStringsParse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(strings.Trim(accountid.GrammarPattern, "^$")).
			Filter(func(s string) bool {
				return len(s) >= accountid.MinLength && len(s) <= accountid.MaxLength
			}).
			Draw(t, "s")
		id, err := accountid.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if id.String() != s {
			t.Fatalf("Parse(%q).String() = %q", s, id)
		}
	})
}

func TestPropTextRoundTrip(t *testing.T) {
	gen := accountidtest.New(1)
	rapid.Check(t, func(t *rapid.T) {
		_ = rapid.Uint64().Draw(t, "step")
		id := gen.Any()
		data, err := id.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%q): %v", id, err)
		}
		var back accountid.AccountID
		if err := back.UnmarshalText(data); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", data, err)
		}
		if back != id {
			t.Fatalf("round trip %q -> %q", id, back)
		}
	})
}

func TestPropBinaryRoundTrip(t *testing.T) {
	gen := accountidtest.New(2)
	rapid.Check(t, func(t *rapid.T) {
		_ = rapid.Uint64().Draw(t, "step")
		id := gen.Any()
		data, err := id.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary(%q): %v", id, err)
		}
		var back accountid.AccountID
		if err := back.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary(% x): %v", data, err)
		}
		if back != id {
			t.Fatalf("round trip %q -> %q", id, back)
		}
	})
}

// Sub-account membership implies the parent relation and vice versa.
func TestPropParentAgreesWithIsSubAccountOf(t *testing.T) {
	gen := accountidtest.New(3)
	rapid.Check(t, func(t *rapid.T) {
		_ = rapid.Uint64().Draw(t, "step")
		id := gen.Named()
		parent, ok := id.AsRef().Parent()
		if !ok {
			if id.AsRef().IsSubAccountOf(id.AsRef()) {
				t.Fatalf("%q is a sub-account of itself", id)
			}
			return
		}
		if !id.AsRef().IsSubAccountOf(parent) {
			t.Fatalf("%q is not a sub-account of its parent %q", id, parent)
		}
		if err := accountid.Validate(parent.String()); err != nil {
			t.Fatalf("parent %q of %q is invalid: %v", parent, id, err)
		}
	})
}
