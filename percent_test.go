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
	"errors"
	"testing"
)

func TestPercentRoundTrip(t *testing.T) {
	samples := []string{
		"",
		"plain ascii stays plain",
		"50% off!",
		"🚀 Rocket",
		"tab\tand\nnewline",
		"%%%",
		"a=b&c=d;e\"f\"",
		"ümläute and 雪",
	}

	for _, sample := range samples {
		encoded := PercentEncode(sample)
		decoded, err := PercentDecode(encoded)

		if err != nil {
			t.Error("round trip of [", sample, "] failed:", err)
			continue
		}

		if decoded != sample {
			t.Error("round trip of [", sample, "] gave [", decoded, "]")
		}
	}
}

func TestPercentEncodeKeepsPrintableAscii(t *testing.T) {
	if encoded := PercentEncode("a b,c"); encoded != "a b,c" {
		t.Error("printable ascii must pass through, got [", encoded, "]")
	}

	if encoded := PercentEncode("\x00"); encoded != "%00" {
		t.Error("control bytes must be escaped, got [", encoded, "]")
	}

	if encoded := PercentEncode("%"); encoded != "%25" {
		t.Error("the escape character itself must be escaped, got [", encoded, "]")
	}
}

func TestPercentDecodeRejectsBadEscapes(t *testing.T) {
	var encodingErr *EncodingError

	// "%" and "%%" also check that sizing the output never assumes
	// the escapes are well formed
	for _, sample := range []string{"%", "%%", "%1", "%zz", "%1g", "abc%", "%%%25"} {
		_, err := PercentDecode(sample)
		if !errors.As(err, &encodingErr) {
			t.Error("decoding [", sample, "] must fail with EncodingError, got:", err)
		}
	}
}

func TestPercentDecodeRejectsInvalidUtf8(t *testing.T) {
	// a lone continuation byte is not valid utf-8
	_, err := PercentDecode("%FF")

	var encodingErr *EncodingError
	if !errors.As(err, &encodingErr) {
		t.Error("decoded bytes must be valid utf-8, got:", err)
	}
}
