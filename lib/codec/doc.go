// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Meridian's standard CBOR encoding
// configuration.
//
// Meridian uses two serialization formats with a clear boundary:
//
//   - JSON for federation-facing payloads, which must hash and sign
//     identically across implementations (see lib/canonicaljson and
//     lib/signjson).
//   - CBOR for internal protocols: key stores, cached server key
//     responses, and envelope types exchanged between local
//     components.
//
// This package provides the shared CBOR encoding and decoding modes
// so that every Meridian package encodes identically without
// duplicating configuration. The encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes.
//
// Identifier value types (keyid.SigningKeyID, keyid.DeviceKeyID)
// encode as CBOR text strings through encoding.TextMarshaler, so a
// key ID occupies exactly its textual form on the wire and is
// re-validated on decode.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(conn)
//	decoder := codec.NewDecoder(conn)
package codec
