// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package keyid

import (
	"fmt"
	"math"
	"strings"
)

// Version character alphabets. A kind picks one when it builds its
// registry.
const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// AlphabetWord is letters, digits, and underscore. The version
	// class for server signing key IDs.
	AlphabetWord = alphanumeric + "_"

	// AlphabetBase64URL is the unpadded base64url alphabet. The
	// version class for device key IDs, whose versions are
	// base64-derived device identifiers.
	AlphabetBase64URL = alphanumeric + "_-"
)

// Registry describes the grammar of one key identifier kind: the
// closed set of algorithm names allowed before the ':' delimiter and
// the character class allowed in the version after it. A Registry is
// built once per kind at package init and is read-only afterward, so
// validation is safe for concurrent use.
type Registry struct {
	kind       string
	algorithms map[string]struct{}
	allowed    [256]bool
}

// NewRegistry builds the grammar for one identifier kind. The kind
// label appears in error messages (e.g., "signing key ID"). Panics if
// an algorithm name is empty or longer than 255 bytes: algorithm
// names are short static strings, and the delimiter offset is stored
// as a single byte — a longer name is a defect in the kind
// definition, not a runtime condition.
func NewRegistry(kind string, algorithms []string, versionAlphabet string) *Registry {
	registry := &Registry{
		kind:       kind,
		algorithms: make(map[string]struct{}, len(algorithms)),
	}
	for _, algorithm := range algorithms {
		if algorithm == "" {
			panic(fmt.Sprintf("keyid.NewRegistry(%q): empty algorithm name", kind))
		}
		if len(algorithm) > math.MaxUint8 {
			panic(fmt.Sprintf("keyid.NewRegistry(%q): algorithm name %q exceeds 255 bytes", kind, algorithm))
		}
		registry.algorithms[algorithm] = struct{}{}
	}
	for i := 0; i < len(versionAlphabet); i++ {
		registry.allowed[versionAlphabet[i]] = true
	}
	return registry
}

// Kind returns the human-readable kind label (e.g., "signing key ID").
func (r *Registry) Kind() string { return r.kind }

// Validate checks a raw identifier string against the registry's
// grammar and returns the byte offset of the ':' delimiter. Checks
// run in a fixed order — delimiter presence, then algorithm, then
// version — and the returned error wraps the sentinel for the first
// failing check. Pure function of the input: no state, safe to call
// repeatedly and concurrently.
func (r *Registry) Validate(raw string) (int, error) {
	colon := strings.IndexByte(raw, ':')
	if colon < 0 {
		return 0, fmt.Errorf("%s %q: %w", r.kind, raw, ErrMissingDelimiter)
	}

	if _, ok := r.algorithms[raw[:colon]]; !ok {
		return 0, fmt.Errorf("%s %q: algorithm %q: %w", r.kind, raw, raw[:colon], ErrUnknownAlgorithm)
	}

	version := raw[colon+1:]
	if version == "" {
		return 0, fmt.Errorf("%s %q: empty version: %w", r.kind, raw, ErrInvalidVersion)
	}
	for i := 0; i < len(version); i++ {
		if !r.allowed[version[i]] {
			return 0, fmt.Errorf("%s %q: character %q at version position %d: %w", r.kind, raw, version[i], i, ErrInvalidVersion)
		}
	}

	// Registered algorithm names are at most 255 bytes (enforced in
	// NewRegistry), so a matched prefix always fits the stored offset.
	return colon, nil
}
