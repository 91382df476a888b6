// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/nearkit/accountid/lib/accountid"
)

func TestParseRoundtrip(t *testing.T) {
	c := loadCorpus(t)
	for _, raw := range c.OK {
		id, err := accountid.Parse(raw)
		if err != nil {
			t.Errorf("Parse(%q) = %v, want nil", raw, err)
			continue
		}
		if id.String() != raw {
			t.Errorf("Parse(%q).String() = %q", raw, id.String())
		}
		if id.AsRef().String() != raw {
			t.Errorf("Parse(%q).AsRef().String() = %q", raw, id.AsRef().String())
		}
		if id.Len() != len(raw) {
			t.Errorf("Parse(%q).Len() = %d, want %d", raw, id.Len(), len(raw))
		}
		if id.IsZero() {
			t.Errorf("Parse(%q).IsZero() = true", raw)
		}
	}
	for _, raw := range c.Bad {
		if id, err := accountid.Parse(raw); err == nil {
			t.Errorf("Parse(%q) = %q, want error", raw, id)
		}
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	accountid.MustParse("invalid.")
}

func TestZeroValue(t *testing.T) {
	var id accountid.AccountID
	if !id.IsZero() {
		t.Error("zero AccountID reports IsZero() = false")
	}
	if id.String() != "" {
		t.Errorf("zero AccountID String() = %q, want empty", id.String())
	}
	var ref accountid.Ref
	if !ref.IsZero() {
		t.Error("zero Ref reports IsZero() = false")
	}
}

func TestEqualityAcrossRepresentations(t *testing.T) {
	// Owned/owned, owned/view, view/view, and plain-string comparisons
	// must agree whenever the underlying bytes agree.
	owned := accountid.MustParse("alice.near")
	sameOwned := accountid.MustParse("alice.near")
	view := accountid.MustNewRef("alice.near")
	other := accountid.MustParse("bob.near")

	if owned != sameOwned {
		t.Error("equal owned values compare unequal with ==")
	}
	if owned.AsRef() != view {
		t.Error("owned.AsRef() differs from an equal view")
	}
	if !owned.Equal(view) {
		t.Error("owned.Equal(view) = false for equal content")
	}
	if !view.Equal(owned.AsRef()) {
		t.Error("view.Equal(owned.AsRef()) = false for equal content")
	}
	if owned.String() != view.String() {
		t.Error("string forms differ for equal content")
	}
	if owned.Equal(other.AsRef()) {
		t.Error("owned.Equal(other) = true for different content")
	}
	if view.Owned() != owned {
		t.Error("view.Owned() differs from the equal owned value")
	}
}

func TestOrdering(t *testing.T) {
	ids := []accountid.AccountID{
		accountid.MustParse("charlie.near"),
		accountid.MustParse("alice.near"),
		accountid.MustParse("bob.near"),
		accountid.MustParse("alice.aurora"),
	}
	slices.SortFunc(ids, func(a, b accountid.AccountID) int {
		return a.Compare(b.AsRef())
	})

	got := make([]string, len(ids))
	for i, id := range ids {
		got[i] = id.String()
	}
	want := []string{"alice.aurora", "alice.near", "bob.near", "charlie.near"}
	if !slices.Equal(got, want) {
		t.Errorf("sorted order = %v, want %v", got, want)
	}

	// Compare must agree with lexicographic byte order on the raw
	// strings, across owned and view forms.
	a := accountid.MustParse("aa")
	b := accountid.MustNewRef("ab")
	if a.Compare(b) >= 0 {
		t.Error("aa should order before ab")
	}
	if b.Compare(a.AsRef()) <= 0 {
		t.Error("ab should order after aa")
	}
	if a.Compare(a.AsRef()) != 0 {
		t.Error("Compare against self is not 0")
	}
}

func TestJSONRoundtrip(t *testing.T) {
	type wrapper struct {
		Account accountid.AccountID `json:"account"`
	}

	original := wrapper{Account: accountid.MustParse("app.alice.near")}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"account":"app.alice.near"}` {
		t.Errorf("JSON form = %s", data)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestJSONRejectsInvalid(t *testing.T) {
	var id accountid.AccountID
	if err := json.Unmarshal([]byte(`"not..valid"`), &id); err == nil {
		t.Errorf("Unmarshal accepted invalid account ID, got %q", id)
	}
}

func TestJSONZeroValue(t *testing.T) {
	var id accountid.AccountID
	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal zero value: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("zero value JSON = %s, want \"\"", data)
	}

	var decoded accountid.AccountID
	if err := json.Unmarshal([]byte(`""`), &decoded); err != nil {
		t.Fatalf("Unmarshal empty string: %v", err)
	}
	if !decoded.IsZero() {
		t.Errorf("empty string decoded to %q, want zero value", decoded)
	}
}
