// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package canonicaljson produces the canonical JSON form used for
// federation signing: object keys sorted lexicographically, no
// insignificant whitespace, no HTML escaping, integers restricted to
// the exactly-representable double range ±(2^53 − 1), and no floating
// point numbers at all.
//
// Two implementations that canonicalize the same logical object
// produce identical bytes, so signatures computed over the canonical
// form verify everywhere.
package canonicaljson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxCanonicalInt is the largest integer magnitude allowed in
// canonical JSON: 2^53 − 1, the largest integer a double represents
// exactly.
const maxCanonicalInt = 1<<53 - 1

var (
	// ErrFloat reports a floating point number in the input.
	// Canonical JSON has no float representation — different
	// implementations format floats differently, which would break
	// signature verification.
	ErrFloat = errors.New("canonical JSON forbids floating point numbers")

	// ErrIntRange reports an integer outside ±(2^53 − 1).
	ErrIntRange = errors.New("integer outside canonical JSON range")
)

// Marshal encodes v with encoding/json and returns the canonical form
// of the result.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicaljson: %w", err)
	}
	return Canonicalize(data)
}

// Canonicalize re-encodes a JSON document in canonical form. The
// input must be a single well-formed JSON value; numbers must be
// in-range integers.
func Canonicalize(data []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("canonicaljson: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("canonicaljson: trailing data after JSON value")
	}

	var buffer bytes.Buffer
	if err := writeValue(&buffer, value); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func writeValue(buffer *bytes.Buffer, value any) error {
	switch v := value.(type) {
	case nil:
		buffer.WriteString("null")
	case bool:
		if v {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}
	case json.Number:
		return writeNumber(buffer, v)
	case string:
		return writeString(buffer, v)
	case []any:
		buffer.WriteByte('[')
		for i, element := range v {
			if i > 0 {
				buffer.WriteByte(',')
			}
			if err := writeValue(buffer, element); err != nil {
				return err
			}
		}
		buffer.WriteByte(']')
	case map[string]any:
		return writeObject(buffer, v)
	default:
		return fmt.Errorf("canonicaljson: unsupported value type %T", value)
	}
	return nil
}

func writeObject(buffer *bytes.Buffer, object map[string]any) error {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buffer.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buffer.WriteByte(',')
		}
		if err := writeString(buffer, key); err != nil {
			return err
		}
		buffer.WriteByte(':')
		if err := writeValue(buffer, object[key]); err != nil {
			return err
		}
	}
	buffer.WriteByte('}')
	return nil
}

func writeNumber(buffer *bytes.Buffer, number json.Number) error {
	text := number.String()
	if strings.ContainsAny(text, ".eE") {
		return fmt.Errorf("canonicaljson: number %s: %w", text, ErrFloat)
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil || value > maxCanonicalInt || value < -maxCanonicalInt {
		return fmt.Errorf("canonicaljson: number %s: %w", text, ErrIntRange)
	}
	buffer.WriteString(strconv.FormatInt(value, 10))
	return nil
}

// writeString appends the JSON encoding of s without HTML escaping.
// Non-ASCII text stays raw UTF-8.
func writeString(buffer *bytes.Buffer, s string) error {
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("canonicaljson: encoding string: %w", err)
	}
	// Encode terminates the value with a newline that has no place
	// inside canonical output.
	buffer.Truncate(buffer.Len() - 1)
	return nil
}
