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

import "unicode/utf8"

// Percent encoding for header-value contexts. Every printable ASCII
// byte except '%' passes through unchanged, control bytes, DEL, '%'
// and non-ASCII bytes are escaped as %XX. This keeps any UTF-8 string
// representable inside a header value while staying readable, and
// PercentDecode(PercentEncode(s)) == s always holds.

const gUpperHex = "0123456789ABCDEF"

func isPercentSafe(b byte) bool {
	return b >= 0x20 && b < 0x7f && b != '%'
}

// PercentEncode escapes the string's UTF-8 bytes so they are safe to
// store as a header value.
func PercentEncode(text string) string {
	escaped := 0
	for i := 0; i < len(text); i++ {
		if !isPercentSafe(text[i]) {
			escaped++
		}
	}

	if escaped == 0 {
		return text
	}

	out := make([]byte, 0, len(text)+2*escaped)
	for i := 0; i < len(text); i++ {
		b := text[i]

		if isPercentSafe(b) {
			out = append(out, b)
		} else {
			out = append(out, '%', gUpperHex[b>>4], gUpperHex[b&0x0f])
		}
	}

	return string(out)
}

// PercentDecode reverses PercentEncode. It fails with EncodingError on
// a truncated or invalid escape sequence, and on decoded bytes that
// are not valid UTF-8.
func PercentDecode(text string) (string, error) {
	raw, err := percentDecodeBytes([]byte(text))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", NewEncodingError("percent-decoded value is not valid utf-8")
	}

	return string(raw), nil
}

func percentDecodeBytes(raw []byte) ([]byte, error) {
	escaped := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '%' {
			escaped++
		}
	}

	if escaped == 0 {
		return raw, nil
	}

	// Capacity is a hint only: with invalid escapes ("%", "%%") the
	// exact size would go negative before the loop rejects them.
	out := make([]byte, 0, len(raw))

	for i := 0; i < len(raw); i++ {
		b := raw[i]

		if b != '%' {
			out = append(out, b)
			continue
		}

		if i+2 >= len(raw) {
			return nil, NewEncodingError("truncated percent-escape sequence")
		}

		hi, okHi := unhex(raw[i+1])
		lo, okLo := unhex(raw[i+2])
		if !okHi || !okLo {
			return nil, NewEncodingError("invalid percent-escape sequence")
		}

		out = append(out, hi<<4|lo)
		i += 2
	}

	return out, nil
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
