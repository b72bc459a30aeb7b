// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package signjson_test

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/meridian-foundation/meridian/lib/keyid"
	"github.com/meridian-foundation/meridian/lib/signjson"
)

// testKey returns a deterministic Ed25519 key pair derived from seed.
func testKey(t *testing.T, seed byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	seedBytes := make([]byte, ed25519.SeedSize)
	for i := range seedBytes {
		seedBytes[i] = seed
	}
	private := ed25519.NewKeyFromSeed(seedBytes)
	return private.Public().(ed25519.PublicKey), private
}

func TestSignVerifyRoundTrip(t *testing.T) {
	public, private := testKey(t, 1)
	id := keyid.MustParseSigningKeyID("ed25519:auto")

	object := map[string]any{
		"server_name": "example.org",
		"valid_until": int64(1700000000),
	}

	signed, err := signjson.Sign(object, "example.org", private, id)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if err := signjson.Verify(signed, "example.org", public, id); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	// The input object must not gain a signatures member.
	if _, ok := object["signatures"]; ok {
		t.Error("Sign modified its input object")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	public, private := testKey(t, 2)
	id := keyid.MustParseSigningKeyID("ed25519:auto")

	signed, err := signjson.Sign(map[string]any{"value": "original"}, "example.org", private, id)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	signed["value"] = "tampered"
	err = signjson.Verify(signed, "example.org", public, id)
	if !errors.Is(err, signjson.ErrVerificationFailed) {
		t.Fatalf("error = %v, want ErrVerificationFailed", err)
	}
}

func TestSignatureIgnoresUnsigned(t *testing.T) {
	public, private := testKey(t, 3)
	id := keyid.MustParseSigningKeyID("ed25519:auto")

	signed, err := signjson.Sign(map[string]any{"value": "x"}, "example.org", private, id)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	// The "unsigned" member is excluded from the signed bytes, so
	// adding it after signing must not break verification.
	signed["unsigned"] = map[string]any{"age": int64(5)}
	if err := signjson.Verify(signed, "example.org", public, id); err != nil {
		t.Fatalf("Verify with unsigned member: %v", err)
	}
}

func TestMultipleSignaturesPreserved(t *testing.T) {
	publicA, privateA := testKey(t, 4)
	publicB, privateB := testKey(t, 5)
	idA := keyid.MustParseSigningKeyID("ed25519:first")
	idB := keyid.MustParseSigningKeyID("ed25519:second")

	object := map[string]any{"value": "shared"}
	signed, err := signjson.Sign(object, "a.example", privateA, idA)
	if err != nil {
		t.Fatalf("first Sign: %v", err)
	}
	signed, err = signjson.Sign(signed, "b.example", privateB, idB)
	if err != nil {
		t.Fatalf("second Sign: %v", err)
	}

	if err := signjson.Verify(signed, "a.example", publicA, idA); err != nil {
		t.Errorf("first signature lost: %v", err)
	}
	if err := signjson.Verify(signed, "b.example", publicB, idB); err != nil {
		t.Errorf("second signature invalid: %v", err)
	}
}

func TestVerifyMissingSignature(t *testing.T) {
	public, _ := testKey(t, 6)
	id := keyid.MustParseSigningKeyID("ed25519:auto")

	err := signjson.Verify(map[string]any{"value": "x"}, "example.org", public, id)
	if !errors.Is(err, signjson.ErrNoSignature) {
		t.Fatalf("error = %v, want ErrNoSignature", err)
	}

	// Signed by one key, verified against another key ID.
	_, private := testKey(t, 7)
	signed, err := signjson.Sign(map[string]any{"value": "x"}, "example.org", private, id)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	otherID := keyid.MustParseSigningKeyID("ed25519:other")
	err = signjson.Verify(signed, "example.org", public, otherID)
	if !errors.Is(err, signjson.ErrNoSignature) {
		t.Fatalf("error = %v, want ErrNoSignature", err)
	}
}

func TestCurve25519KeyIDsRejected(t *testing.T) {
	public, private := testKey(t, 8)
	id := keyid.MustParseSigningKeyID("curve25519:enc")

	if _, err := signjson.Sign(map[string]any{}, "example.org", private, id); !errors.Is(err, signjson.ErrUnsupportedAlgorithm) {
		t.Errorf("Sign error = %v, want ErrUnsupportedAlgorithm", err)
	}
	if err := signjson.Verify(map[string]any{}, "example.org", public, id); !errors.Is(err, signjson.ErrUnsupportedAlgorithm) {
		t.Errorf("Verify error = %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestSignRejectsFloats(t *testing.T) {
	_, private := testKey(t, 9)
	id := keyid.MustParseSigningKeyID("ed25519:auto")

	_, err := signjson.Sign(map[string]any{"bad": 1.5}, "example.org", private, id)
	if err == nil {
		t.Fatal("signing an object with a float did not fail")
	}
}

func TestFingerprint(t *testing.T) {
	publicA, _ := testKey(t, 10)
	publicB, _ := testKey(t, 11)

	fingerprintA := signjson.Fingerprint(publicA)
	if len(fingerprintA) != 16 {
		t.Errorf("fingerprint %q has length %d, want 16", fingerprintA, len(fingerprintA))
	}
	if signjson.Fingerprint(publicA) != fingerprintA {
		t.Error("fingerprint is not stable for the same key")
	}
	if signjson.Fingerprint(publicB) == fingerprintA {
		t.Error("different keys produced the same fingerprint")
	}
}
