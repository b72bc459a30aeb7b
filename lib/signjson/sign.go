// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package signjson

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/meridian-foundation/meridian/lib/canonicaljson"
	"github.com/meridian-foundation/meridian/lib/keyid"
)

var (
	// ErrUnsupportedAlgorithm reports a key ID whose algorithm cannot
	// produce signatures (anything other than ed25519).
	ErrUnsupportedAlgorithm = errors.New("key algorithm cannot sign")

	// ErrNoSignature reports that the object carries no signature
	// from the given entity under the given key ID.
	ErrNoSignature = errors.New("no matching signature")

	// ErrVerificationFailed reports a present but invalid signature.
	ErrVerificationFailed = errors.New("signature verification failed")
)

// Sign signs a decoded JSON object and returns a copy with the new
// signature merged into its "signatures" member. The signature covers
// the canonical form of the object without "signatures" and
// "unsigned"; existing signatures from other entities or keys are
// preserved. The input object is not modified.
func Sign(object map[string]any, entity string, key ed25519.PrivateKey, id keyid.SigningKeyID) (map[string]any, error) {
	if id.Algorithm() != keyid.Ed25519 {
		return nil, fmt.Errorf("signing with %s: %w", id, ErrUnsupportedAlgorithm)
	}

	base, err := signableBytes(object)
	if err != nil {
		return nil, err
	}
	signature := base64.RawStdEncoding.EncodeToString(ed25519.Sign(key, base))

	signed := make(map[string]any, len(object)+1)
	for name, value := range object {
		signed[name] = value
	}
	signed["signatures"] = mergeSignature(object, entity, id, signature)
	return signed, nil
}

// Verify checks the signature stored under signatures.<entity>.<id>
// against the object's canonical form. Returns ErrNoSignature if the
// signature is absent, ErrVerificationFailed if present but invalid.
func Verify(object map[string]any, entity string, key ed25519.PublicKey, id keyid.SigningKeyID) error {
	if id.Algorithm() != keyid.Ed25519 {
		return fmt.Errorf("verifying with %s: %w", id, ErrUnsupportedAlgorithm)
	}

	encoded, err := signatureFor(object, entity, id)
	if err != nil {
		return err
	}
	signature, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("signature from %q under %s is not valid unpadded base64: %w", entity, id, err)
	}

	base, err := signableBytes(object)
	if err != nil {
		return err
	}
	if !ed25519.Verify(key, base, signature) {
		return fmt.Errorf("entity %q key %s: %w", entity, id, ErrVerificationFailed)
	}
	return nil
}

// signableBytes returns the canonical encoding of the object with the
// "signatures" and "unsigned" members removed — the bytes a signature
// covers.
func signableBytes(object map[string]any) ([]byte, error) {
	stripped := make(map[string]any, len(object))
	for name, value := range object {
		if name == "signatures" || name == "unsigned" {
			continue
		}
		stripped[name] = value
	}
	data, err := canonicaljson.Marshal(stripped)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing object for signing: %w", err)
	}
	return data, nil
}

// mergeSignature builds the new "signatures" member: a copy of the
// object's existing signatures with signature added under
// entity/id. Entity maps are copied shallowly so the caller's object
// is untouched.
func mergeSignature(object map[string]any, entity string, id keyid.SigningKeyID, signature string) map[string]any {
	signatures := make(map[string]any)
	if existing, ok := object["signatures"].(map[string]any); ok {
		for entityName, keys := range existing {
			signatures[entityName] = keys
		}
	}

	entityKeys := make(map[string]any)
	if existing, ok := signatures[entity].(map[string]any); ok {
		for keyName, value := range existing {
			entityKeys[keyName] = value
		}
	}
	entityKeys[id.String()] = signature
	signatures[entity] = entityKeys
	return signatures
}

// signatureFor extracts the base64 signature stored under
// signatures.<entity>.<id>, or ErrNoSignature.
func signatureFor(object map[string]any, entity string, id keyid.SigningKeyID) (string, error) {
	signatures, ok := object["signatures"].(map[string]any)
	if !ok {
		return "", fmt.Errorf("object has no signatures member: %w", ErrNoSignature)
	}
	entityKeys, ok := signatures[entity].(map[string]any)
	if !ok {
		return "", fmt.Errorf("entity %q: %w", entity, ErrNoSignature)
	}
	encoded, ok := entityKeys[id.String()].(string)
	if !ok {
		return "", fmt.Errorf("entity %q key %s: %w", entity, id, ErrNoSignature)
	}
	return encoded, nil
}
