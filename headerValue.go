/*
 * (C) Copyright 2024 Johan Michel PIQUET, France (https://johanpiquet.fr/).
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package httpRepresentation

import (
	"encoding/json"
	"unicode/utf8"
)

// HeaderValue is the byte-string value of one header occurrence.
//
// The raw bytes are the canonical representation. The string, percent
// and JSON accessors are read-only views derived from them on demand,
// they never replace or mutate the stored bytes.
type HeaderValue struct {
	raw []byte
}

// NewHeaderValue creates a header value over a private copy
// of the given bytes.
func NewHeaderValue(raw []byte) HeaderValue {
	owned := make([]byte, len(raw))
	copy(owned, raw)
	return HeaderValue{raw: owned}
}

// HeaderValueFromString creates a header value over the string's bytes.
func HeaderValueFromString(text string) HeaderValue {
	return HeaderValue{raw: []byte(text)}
}

// PercentEncodedHeaderValue percent-encodes the given string and
// stores the encoded bytes.
func PercentEncodedHeaderValue(text string) HeaderValue {
	return HeaderValue{raw: []byte(PercentEncode(text))}
}

// JsonHeaderValue serializes the value as JSON, percent-encodes the
// result and stores the encoded bytes. Fails with JsonError if the
// value itself cannot be serialized.
func JsonHeaderValue(value any) (HeaderValue, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return HeaderValue{}, &JsonError{Cause: err}
	}

	return PercentEncodedHeaderValue(string(raw)), nil
}

// Bytes returns the raw value. The slice must not be modified.
func (v HeaderValue) Bytes() []byte {
	return v.raw
}

// Len returns the raw value length in bytes.
func (v HeaderValue) Len() int {
	return len(v.raw)
}

// Str decodes the raw bytes as UTF-8,
// failing with EncodingError on invalid bytes.
func (v HeaderValue) Str() (string, error) {
	if !utf8.Valid(v.raw) {
		return "", NewEncodingError("header value is not valid utf-8")
	}
	return string(v.raw), nil
}

// PercentDecoded percent-decodes the raw bytes and checks the result
// for valid UTF-8, failing with EncodingError otherwise.
func (v HeaderValue) PercentDecoded() (string, error) {
	return PercentDecode(string(v.raw))
}

// JSON percent-decodes the raw bytes, then deserializes the result
// into target. A bad escape or bad UTF-8 is an EncodingError,
// malformed or wrong-shaped JSON is a JsonError; the two stay
// distinguishable.
func (v HeaderValue) JSON(target any) error {
	text, err := v.PercentDecoded()
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(text), target); err != nil {
		return &JsonError{Cause: err}
	}

	return nil
}
