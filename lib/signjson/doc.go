// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package signjson signs and verifies JSON objects in the federation
// signing scheme: the object is canonicalized (lib/canonicaljson)
// with its "signatures" and "unsigned" members removed, signed with
// Ed25519, and the unpadded-base64 signature is stored under
// signatures.<entity>.<key ID>.
//
// Signing keys are identified by keyid.SigningKeyID values
// ("ed25519:auto"). Only the ed25519 algorithm is supported for
// signatures; curve25519 key IDs name encryption keys and are
// rejected by Sign and Verify.
//
// A Keyring carries the published verify keys of remote entities,
// loaded from a static YAML file supplied by the operator. The
// keyring is plain data — this package never fetches keys over the
// network.
package signjson
