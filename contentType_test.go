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

import "testing"

func TestMimeTable(t *testing.T) {
	if MimeJar.MainType() != "application" {
		t.Error("MimeJar main type is", MimeJar.MainType())
	}
	if MimeJar.SubType() != "java-archive" {
		t.Error("MimeJar sub type is", MimeJar.SubType())
	}
	if MimeJs.Ext() != "js" {
		t.Error("MimeJs extension is", MimeJs.Ext())
	}

	if MimeFromExt("png") != MimePng {
		t.Error("extension lookup failed for png")
	}
	if MimeFromExt("no-such-ext") != MimeBinary {
		t.Error("unknown extensions must fall back to binary")
	}

	if mime, ok := TryMimeFromMimeType("text/css"); !ok || mime != MimeCss {
		t.Error("mime type lookup failed for text/css")
	}
}

func TestMimeCharset(t *testing.T) {
	if _, ok := MimeText.Charset(); !ok {
		t.Error("text mime types carry a charset")
	}
	if _, ok := MimeJson.Charset(); !ok {
		t.Error("json carries a charset")
	}
	if _, ok := MimePng.Charset(); ok {
		t.Error("binary mime types carry no charset")
	}
}

func TestContentTypeString(t *testing.T) {
	known := ContentTypeFromMime(MimeJs)
	if known.String() != "application/javascript; charset=utf-8" {
		t.Error("rendered [", known.String(), "]")
	}

	unknown := ContentTypeFromString("application/rust")
	if unknown.String() != "application/rust" {
		t.Error("rendered [", unknown.String(), "]")
	}
	if _, ok := unknown.Charset(); ok {
		t.Error("an unknown mime type carries no charset")
	}

	empty := EmptyContentType()
	if !empty.IsEmpty() || empty.String() != "" {
		t.Error("the empty content type must render as empty string")
	}
}

func TestParseContentType(t *testing.T) {
	parsed := parseContentType("text/html; charset=utf-8")
	if parsed.MimeType() != "text/html" {
		t.Error("parsed mime [", parsed.MimeType(), "]")
	}
	if _, ok := parsed.Charset(); !ok {
		t.Error("the charset directive must be kept")
	}

	bare := parseContentType("application/octet-stream")
	if bare.MimeType() != "application/octet-stream" {
		t.Error("parsed mime [", bare.MimeType(), "]")
	}
}

func TestHttpMethodMapping(t *testing.T) {
	names := []string{"GET", "POST", "HEAD", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"}

	for _, name := range names {
		code := MethodNameToMethodCode(name)
		if code.String() != name {
			t.Error("method [", name, "] maps to [", code.String(), "]")
		}
	}

	if MethodNameToMethodCode("BREW") != HttpMethodGET {
		t.Error("unknown methods fall back to GET")
	}
}

func TestStatusCode(t *testing.T) {
	if StatusOk.Message() != "OK" {
		t.Error("200 message is [", StatusOk.Message(), "]")
	}
	if StatusNotFound.String() != "404 Not Found" {
		t.Error("404 renders as [", StatusNotFound.String(), "]")
	}
	if !StatusBadRequest.IsClientError() || StatusBadRequest.IsServerError() {
		t.Error("400 must be a client error")
	}
	if !StatusInternalServerError.IsServerError() {
		t.Error("500 must be a server error")
	}
	if StatusCode(299).IsKnown() {
		t.Error("299 carries no reason phrase")
	}
}

func TestResponseHeaderBuilder(t *testing.T) {
	builder := NewResponseHeaderBuilder()
	builder.StatusCode(StatusCreated)
	builder.ContentType(ContentTypeFromMime(MimeJson))
	builder.Values().SetString("X-Request-Id", "abc")

	header := builder.Build()

	if header.StatusCode != StatusCreated {
		t.Error("status code not kept")
	}
	if header.Version != HttpVersion11 {
		t.Error("the version must default to HTTP/1.1")
	}
	if header.ContentType.MimeType() != "application/json" {
		t.Error("content type not kept")
	}
	if text, found := header.Value("x-request-id"); !found || text != "abc" {
		t.Error("header value not kept")
	}

	defaults := NewResponseHeaderBuilder().Build()
	if defaults.StatusCode != StatusOk || !defaults.ContentType.IsEmpty() {
		t.Error("unset fields must fall back to defaults")
	}
}

func TestRequestHeaderContentType(t *testing.T) {
	header := NewRequestHeader(HttpMethodPOST, "/upload")
	header.Values.SetString("Content-Type", "application/json; charset=utf-8")

	contentType := header.ContentType()
	if contentType.MimeType() != "application/json" {
		t.Error("parsed mime [", contentType.MimeType(), "]")
	}

	bare := NewRequestHeader(HttpMethodGET, "/")
	if !bare.ContentType().IsEmpty() {
		t.Error("a missing content type must be empty")
	}
}
