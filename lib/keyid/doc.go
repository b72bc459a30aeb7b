// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package keyid provides validated, immutable key identifier value
// types of the form "algorithm:version" (e.g., "ed25519:Abc_1").
//
// A key identifier names one key among the several a federation
// entity may publish: the prefix is the key algorithm, drawn from a
// closed per-kind registry, and the suffix is an opaque version
// string restricted to a per-kind character class.
//
// The representation is compact: one string plus a one-byte delimiter
// offset. Accessors slice the stored string — no per-field
// allocations, no re-validation after construction. A KeyID is a
// plain comparable value: equality, map-key hashing, and ordering all
// operate on the full identifier text.
//
// Each identifier kind is a string-based algorithm enumeration
// implementing the Algorithm constraint. The generic Parse, MustParse,
// and New constructors are instantiated per kind at compile time;
// SigningKeyID and DeviceKeyID are the kinds defined here.
//
// The canonical serialization form is the identifier text itself.
// JSON, CBOR, and other text-based encodings round-trip through
// encoding.TextMarshaler / encoding.TextUnmarshaler.
package keyid
