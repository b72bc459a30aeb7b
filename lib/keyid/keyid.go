// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package keyid

import (
	"fmt"
	"math"
	"strings"
)

// Algorithm is the constraint for key algorithm enumerations. Each
// identifier kind defines a string-based type whose values are its
// registered algorithm names, with a Registry method returning the
// kind's grammar. The method must be callable on the zero value —
// Parse calls it before any algorithm text exists.
type Algorithm interface {
	~string
	Registry() *Registry
}

// KeyID is a validated key identifier of the form "algorithm:version"
// (e.g., "ed25519:Abc_1"). The full text is stored once together with
// the byte offset of the ':'; Algorithm and Version slice the stored
// text at zero allocation cost.
//
// KeyID is an immutable comparable value: == compares the full text
// (two identifiers are equal iff their texts are byte-identical), and
// a KeyID is usable as a map key. The zero value is not valid; use
// IsZero to check.
type KeyID[A Algorithm] struct {
	id    string
	colon uint8
}

// Parse validates and wraps a raw key identifier string. The raw
// string is stored verbatim — no normalization. Returns an error
// wrapping ErrMissingDelimiter, ErrUnknownAlgorithm, or
// ErrInvalidVersion, in that order of precedence.
func Parse[A Algorithm](raw string) (KeyID[A], error) {
	var zero A
	colon, err := zero.Registry().Validate(raw)
	if err != nil {
		return KeyID[A]{}, err
	}
	return KeyID[A]{id: raw, colon: uint8(colon)}, nil
}

// MustParse is like Parse but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustParse[A Algorithm](raw string) KeyID[A] {
	k, err := Parse[A](raw)
	if err != nil {
		panic(fmt.Sprintf("keyid.MustParse(%q): %v", raw, err))
	}
	return k
}

// New builds a key identifier from an already-known algorithm and
// version, skipping validation. The version is trusted: callers
// assert it is non-empty and within the kind's character class. This
// is the constructor for code that holds a typed algorithm constant
// and a version it produced itself — never for untrusted input, which
// must go through Parse.
//
// Panics if the algorithm text is empty or exceeds 255 bytes (the
// offset is a single byte and never zero; registered algorithm names
// are always far shorter).
func New[A Algorithm](algorithm A, version string) KeyID[A] {
	if len(algorithm) == 0 {
		panic("keyid.New: empty algorithm")
	}
	if len(algorithm) > math.MaxUint8 {
		panic(fmt.Sprintf("keyid.New: algorithm name %q exceeds 255 bytes", string(algorithm)))
	}
	return KeyID[A]{
		id:    string(algorithm) + ":" + version,
		colon: uint8(len(algorithm)),
	}
}

// String returns the full identifier text (e.g., "ed25519:Abc_1").
func (k KeyID[A]) String() string { return k.id }

// IsZero reports whether the KeyID is the zero value (uninitialized).
func (k KeyID[A]) IsZero() bool { return k.id == "" }

// Algorithm returns the algorithm component as the kind's typed
// enumeration value. The prefix matched a registered name at
// construction, so the conversion cannot produce an unregistered
// value. Panics if called on a zero-value KeyID.
func (k KeyID[A]) Algorithm() A {
	if k.id == "" {
		panic("KeyID.Algorithm called on zero value")
	}
	return A(k.id[:k.colon])
}

// Version returns the version component (the text after the ':').
// The returned string shares the identifier's backing storage.
// Panics if called on a zero-value KeyID.
func (k KeyID[A]) Version() string {
	if k.id == "" {
		panic("KeyID.Version called on zero value")
	}
	return k.id[k.colon+1:]
}

// Compare orders two key identifiers by their full text, byte-wise.
// Returns -1, 0, or +1 like strings.Compare.
func (k KeyID[A]) Compare(other KeyID[A]) int {
	return strings.Compare(k.id, other.id)
}

// MarshalText implements encoding.TextMarshaler for JSON, CBOR, and
// other text-based serialization formats.
func (k KeyID[A]) MarshalText() ([]byte, error) {
	if k.id == "" {
		return []byte{}, nil
	}
	return []byte(k.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the
// identifier exactly as Parse does. An empty input produces the zero
// value (unset identifier).
func (k *KeyID[A]) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*k = KeyID[A]{}
		return nil
	}
	parsed, err := Parse[A](string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
