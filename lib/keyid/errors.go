// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package keyid

import "errors"

// The three ways a raw identifier can fail validation. Registry
// validation errors always wrap exactly one of these; callers
// discriminate with errors.Is. The check order is fixed — delimiter,
// then algorithm, then version — so an input failing several checks
// reports the earliest one.
var (
	// ErrMissingDelimiter reports that the input contains no ':'
	// separating the algorithm from the version.
	ErrMissingDelimiter = errors.New("missing ':' delimiter between algorithm and version")

	// ErrUnknownAlgorithm reports that the text before the ':' is not
	// a registered algorithm for this identifier kind. An empty
	// prefix (input starting with ':') is never registered and fails
	// with this error.
	ErrUnknownAlgorithm = errors.New("unknown key algorithm")

	// ErrInvalidVersion reports that the text after the ':' is empty
	// or contains a character outside the kind's version class.
	ErrInvalidVersion = errors.New("invalid key version")
)
