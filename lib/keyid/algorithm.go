// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package keyid

// SigningAlgorithm identifies the algorithm of a server signing key.
// The set is closed: servers publish ed25519 signing keys and
// curve25519 keys for encryption handshakes.
type SigningAlgorithm string

const (
	// Ed25519 is the EdDSA signature scheme over Curve25519.
	Ed25519 SigningAlgorithm = "ed25519"

	// Curve25519 is the X25519 Diffie-Hellman function.
	Curve25519 SigningAlgorithm = "curve25519"
)

// signingRegistry is the grammar for signing key IDs. Versions are
// short tokens chosen by the key owner, restricted to word characters.
var signingRegistry = NewRegistry(
	"signing key ID",
	[]string{string(Ed25519), string(Curve25519)},
	AlphabetWord,
)

// Registry returns the signing key ID grammar. Satisfies Algorithm.
func (SigningAlgorithm) Registry() *Registry { return signingRegistry }

// String returns the algorithm name (e.g., "ed25519").
func (a SigningAlgorithm) String() string { return string(a) }

// SigningKeyID is a validated server signing key identifier
// (e.g., "ed25519:auto").
type SigningKeyID = KeyID[SigningAlgorithm]

// ParseSigningKeyID validates and wraps a raw signing key ID string.
func ParseSigningKeyID(raw string) (SigningKeyID, error) {
	return Parse[SigningAlgorithm](raw)
}

// MustParseSigningKeyID is like ParseSigningKeyID but panics on error.
func MustParseSigningKeyID(raw string) SigningKeyID {
	return MustParse[SigningAlgorithm](raw)
}

// DeviceAlgorithm identifies the algorithm of a device key. Devices
// additionally publish signed_curve25519 one-time keys, so the set is
// wider than SigningAlgorithm.
type DeviceAlgorithm string

const (
	// DeviceEd25519 is the device's EdDSA fingerprint key.
	DeviceEd25519 DeviceAlgorithm = "ed25519"

	// DeviceCurve25519 is the device's X25519 identity key.
	DeviceCurve25519 DeviceAlgorithm = "curve25519"

	// DeviceSignedCurve25519 is a signed X25519 one-time key.
	DeviceSignedCurve25519 DeviceAlgorithm = "signed_curve25519"
)

// deviceRegistry is the grammar for device key IDs. Versions are
// base64-derived device identifiers, so the class is the unpadded
// base64url alphabet (includes '-').
var deviceRegistry = NewRegistry(
	"device key ID",
	[]string{string(DeviceEd25519), string(DeviceCurve25519), string(DeviceSignedCurve25519)},
	AlphabetBase64URL,
)

// Registry returns the device key ID grammar. Satisfies Algorithm.
func (DeviceAlgorithm) Registry() *Registry { return deviceRegistry }

// String returns the algorithm name (e.g., "signed_curve25519").
func (a DeviceAlgorithm) String() string { return string(a) }

// DeviceKeyID is a validated device key identifier
// (e.g., "curve25519:BNLWQID").
type DeviceKeyID = KeyID[DeviceAlgorithm]

// ParseDeviceKeyID validates and wraps a raw device key ID string.
func ParseDeviceKeyID(raw string) (DeviceKeyID, error) {
	return Parse[DeviceAlgorithm](raw)
}

// MustParseDeviceKeyID is like ParseDeviceKeyID but panics on error.
func MustParseDeviceKeyID(raw string) DeviceKeyID {
	return MustParse[DeviceAlgorithm](raw)
}
