// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"

	"github.com/nearkit/accountid/lib/accountid"
)

// accountRecord is a representative consumer struct: an account ID
// field alongside plain data.
type accountRecord struct {
	Account accountid.AccountID `json:"account"`
	Balance uint64              `json:"balance"`
	Locked  bool                `json:"locked,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := accountRecord{
		Account: accountid.MustParse("alice.near"),
		Balance: 250,
		Locked:  true,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded accountRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestAccountIDEncodesAsTextString(t *testing.T) {
	data, err := Marshal(accountid.MustParse("bob.near"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if diagnostic != `"bob.near"` {
		t.Errorf("AccountID encoded as %s, want a bare text string", diagnostic)
	}
}

func TestUnmarshalRevalidates(t *testing.T) {
	// A CBOR text string that is not a valid account ID must be
	// rejected at decode time, not accepted as an invalid AccountID.
	data, err := Marshal("Not.Valid.")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var id accountid.AccountID
	if err := Unmarshal(data, &id); err == nil {
		t.Fatalf("Unmarshal accepted invalid account ID, got %q", id)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := accountRecord{
		Account: accountid.MustParse("app.alice.near"),
		Balance: 7,
	}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestEncoderDecoderStreamRoundtrip(t *testing.T) {
	records := []accountRecord{
		{Account: accountid.MustParse("alice.near"), Balance: 1},
		{Account: accountid.MustParse("bob.near"), Balance: 2},
		{Account: accountid.MustParse("0xb794f5ea0ba39494ce839613fffba74279579268"), Balance: 3},
	}

	var buf bytes.Buffer
	encoder := NewEncoder(&buf)
	for i, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode record %d: %v", i, err)
		}
	}

	decoder := NewDecoder(&buf)
	for i, want := range records {
		var got accountRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode record %d: %v", i, err)
		}
		if got != want {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}
