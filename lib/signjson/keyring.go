// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package signjson

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meridian-foundation/meridian/lib/keyid"
)

// ErrUnknownEntity reports that the keyring holds no verify keys for
// an entity.
var ErrUnknownEntity = errors.New("no verify keys for entity")

// VerifyKey couples a signing key ID with its Ed25519 public key.
type VerifyKey struct {
	ID  keyid.SigningKeyID
	Key ed25519.PublicKey
}

// Keyring holds the published verify keys of remote entities, keyed
// by entity name. Build it directly or load it from a YAML file with
// LoadKeyring. A Keyring is read-only after construction and safe for
// concurrent use.
type Keyring map[string][]VerifyKey

// LoadKeyring reads verify keys from a YAML file mapping entity names
// to key IDs to unpadded-base64 Ed25519 public keys:
//
//	example.org:
//	  ed25519:auto: "3kU9u2qmGbLEPz4Bori4yCzPxsJWBVEYtCDCpQF1WqM"
//	other.example:
//	  ed25519:a_key: "..."
//
// Every key ID is validated against the signing key grammar and every
// key must decode to exactly 32 bytes. There are no fallbacks or
// search paths — the file is the single source of keys.
func LoadKeyring(path string) (Keyring, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing keyring %s: %w", path, err)
	}

	keyring := make(Keyring, len(raw))
	for entity, keys := range raw {
		if entity == "" {
			return nil, fmt.Errorf("keyring %s: empty entity name", path)
		}
		for rawID, rawKey := range keys {
			id, err := keyid.ParseSigningKeyID(rawID)
			if err != nil {
				return nil, fmt.Errorf("keyring %s, entity %q: %w", path, entity, err)
			}
			keyBytes, err := base64.RawStdEncoding.DecodeString(rawKey)
			if err != nil {
				return nil, fmt.Errorf("keyring %s, entity %q, key %s: decoding public key: %w", path, entity, id, err)
			}
			if len(keyBytes) != ed25519.PublicKeySize {
				return nil, fmt.Errorf("keyring %s, entity %q, key %s: public key is %d bytes, want %d", path, entity, id, len(keyBytes), ed25519.PublicKeySize)
			}
			keyring[entity] = append(keyring[entity], VerifyKey{
				ID:  id,
				Key: ed25519.PublicKey(keyBytes),
			})
		}
	}
	return keyring, nil
}

// VerifyAny checks that the object carries at least one valid
// signature from the entity using any key in the keyring. Returns nil
// on the first key that verifies. Returns ErrUnknownEntity if the
// keyring has no keys for the entity; otherwise the error from the
// last key tried.
func (k Keyring) VerifyAny(object map[string]any, entity string) error {
	keys := k[entity]
	if len(keys) == 0 {
		return fmt.Errorf("entity %q: %w", entity, ErrUnknownEntity)
	}

	var lastErr error
	for _, verifyKey := range keys {
		lastErr = Verify(object, entity, verifyKey.Key, verifyKey.ID)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}
