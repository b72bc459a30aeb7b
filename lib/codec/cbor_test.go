// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meridian-foundation/meridian/lib/keyid"
)

// keyRecord is a representative internal record: a cached verify key
// entry as stored in a local key store.
type keyRecord struct {
	Entity  string             `cbor:"entity"`
	KeyID   keyid.SigningKeyID `cbor:"key_id"`
	Key     []byte             `cbor:"key,omitempty"`
	Expired int64              `cbor:"expired"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := keyRecord{
		Entity:  "example.org",
		KeyID:   keyid.MustParseSigningKeyID("ed25519:auto"),
		Key:     []byte{0x01, 0x02, 0x03},
		Expired: 0,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded keyRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Entity != original.Entity || decoded.KeyID != original.KeyID ||
		decoded.Expired != original.Expired || !bytes.Equal(decoded.Key, original.Key) {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestKeyIDEncodesAsTextString(t *testing.T) {
	id := keyid.MustParseSigningKeyID("ed25519:auto")

	data, err := Marshal(id)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// "ed25519:auto" is 12 bytes: major type 3 (text string) with
	// embedded length 12 → initial byte 0x6c, then the raw text.
	want := append([]byte{0x6c}, "ed25519:auto"...)
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal = %x, want %x", data, want)
	}
}

func TestKeyIDDecodeValidates(t *testing.T) {
	// A CBOR text string carrying an unregistered algorithm must be
	// rejected by the identifier's grammar on decode.
	data, err := Marshal("sha256:nope")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var id keyid.SigningKeyID
	err = Unmarshal(data, &id)
	if err == nil {
		t.Fatal("decoding an invalid key ID did not fail")
	}
	if !strings.Contains(err.Error(), "unknown key algorithm") {
		t.Errorf("error %v does not report the grammar failure", err)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := keyRecord{
		Entity: "example.org",
		KeyID:  keyid.MustParseSigningKeyID("ed25519:a_key"),
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
	records := []keyRecord{
		{Entity: "a.example", KeyID: keyid.MustParseSigningKeyID("ed25519:one"), Expired: 1},
		{Entity: "b.example", KeyID: keyid.MustParseSigningKeyID("curve25519:two"), Expired: 2},
		{Entity: "c.example", KeyID: keyid.MustParseSigningKeyID("ed25519:three")},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range records {
		var got keyRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode record %d: %v", i, err)
		}
		if got.Entity != want.Entity || got.KeyID != want.KeyID {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestOmitemptyRespected(t *testing.T) {
	withKey := keyRecord{Entity: "e", KeyID: keyid.MustParseSigningKeyID("ed25519:k"), Key: []byte{1}}
	withoutKey := keyRecord{Entity: "e", KeyID: keyid.MustParseSigningKeyID("ed25519:k")}

	dataWith, err := Marshal(withKey)
	if err != nil {
		t.Fatal(err)
	}
	dataWithout, err := Marshal(withoutKey)
	if err != nil {
		t.Fatal(err)
	}

	if len(dataWithout) >= len(dataWith) {
		t.Errorf("omitempty not effective: without=%d bytes, with=%d bytes",
			len(dataWithout), len(dataWith))
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record keyRecord
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDefaultMapType(t *testing.T) {
	data, err := Marshal(map[string]any{"key_id": "ed25519:auto"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	object, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded any-typed map is %T, want map[string]any", decoded)
	}
	if object["key_id"] != "ed25519:auto" {
		t.Errorf("object[key_id] = %v, want ed25519:auto", object["key_id"])
	}
}

func BenchmarkMarshal(b *testing.B) {
	record := keyRecord{
		Entity: "example.org",
		KeyID:  keyid.MustParseSigningKeyID("ed25519:auto"),
		Key:    bytes.Repeat([]byte{0xAB}, 32),
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Marshal(record)
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	record := keyRecord{
		Entity: "example.org",
		KeyID:  keyid.MustParseSigningKeyID("ed25519:auto"),
		Key:    bytes.Repeat([]byte{0xAB}, 32),
	}
	data, err := Marshal(record)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var decoded keyRecord
		Unmarshal(data, &decoded)
	}
}
