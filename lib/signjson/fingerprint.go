// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package signjson

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// fingerprintDomainKey is the 32-byte BLAKE3 key for verify key
// fingerprints. Domain separation keeps these digests distinct from
// any other hash of the same key bytes. The value is the ASCII domain
// name zero-padded to 32 bytes — readable in hex dumps, opaque to the
// keyed hash.
var fingerprintDomainKey = [32]byte{
	'm', 'e', 'r', 'i', 'd', 'i', 'a', 'n', '.', 's', 'i', 'g', 'n', 'j', 's', 'o',
	'n', '.', 'v', 'e', 'r', 'i', 'f', 'y', '-', 'k', 'e', 'y', 0, 0, 0, 0,
}

// fingerprintLength is the digest prefix included in the fingerprint:
// 8 bytes, 16 hex characters. Fingerprints are display identifiers
// for logs and CLI output, not security boundaries.
const fingerprintLength = 8

// Fingerprint returns a short, stable hex digest of an Ed25519 public
// key (e.g., "a3f29c114e0b77d2"). The same key always produces the
// same fingerprint, so operators can compare keys across machines
// without pasting full key material.
func Fingerprint(key ed25519.PublicKey) string {
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("signjson: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(key)
	return hex.EncodeToString(hasher.Sum(nil)[:fingerprintLength])
}
