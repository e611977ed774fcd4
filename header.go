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

//region RequestHeader

// RequestHeader bundles the already-parsed head of a request: remote
// address, method, uri, version and header values. This layer never
// parses or validates header names itself, it represents what the
// engine in front already parsed.
type RequestHeader struct {
	Address string
	Method  HttpMethod
	URI     string
	Version HttpVersion
	Values  *HeaderValues
}

// NewRequestHeader creates a RequestHeader with an empty value set.
func NewRequestHeader(method HttpMethod, uri string) *RequestHeader {
	return &RequestHeader{
		Method:  method,
		URI:     uri,
		Version: HttpVersion11,
		Values:  NewHeaderValues(),
	}
}

// Value returns a header value as a string if it exists and holds
// valid UTF-8. Use Values.PercentDecoded for an encoded value.
func (m *RequestHeader) Value(name string) (string, bool) {
	text, found, err := m.Values.Str(name)
	if err != nil {
		return "", false
	}
	return text, found
}

// ContentType returns the Content-Type header as a ContentType.
func (m *RequestHeader) ContentType() ContentType {
	text, found := m.Value("Content-Type")
	if !found || text == "" {
		return EmptyContentType()
	}
	return parseContentType(text)
}

//endregion

//region ResponseHeader

// ResponseHeader bundles what a server answers ahead of the body.
type ResponseHeader struct {
	Version     HttpVersion
	StatusCode  StatusCode
	ContentType ContentType
	Values      *HeaderValues
}

// DefaultResponseHeader creates a 200 text response header.
func DefaultResponseHeader() *ResponseHeader {
	return &ResponseHeader{
		Version:     HttpVersion11,
		StatusCode:  StatusOk,
		ContentType: ContentTypeFromMime(MimeText),
		Values:      NewHeaderValues(),
	}
}

// Value returns a header value as a string if it exists and holds
// valid UTF-8.
func (m *ResponseHeader) Value(name string) (string, bool) {
	text, found, err := m.Values.Str(name)
	if err != nil {
		return "", false
	}
	return text, found
}

//endregion

//region ResponseHeaderBuilder

// ResponseHeaderBuilder accumulates response-header fields, filling
// the unset ones with defaults at build time.
type ResponseHeaderBuilder struct {
	version     *HttpVersion
	statusCode  *StatusCode
	contentType *ContentType
	values      *HeaderValues
}

func NewResponseHeaderBuilder() *ResponseHeaderBuilder {
	return &ResponseHeaderBuilder{values: NewHeaderValues()}
}

func (m *ResponseHeaderBuilder) Version(version HttpVersion) *ResponseHeaderBuilder {
	m.version = &version
	return m
}

func (m *ResponseHeaderBuilder) StatusCode(statusCode StatusCode) *ResponseHeaderBuilder {
	m.statusCode = &statusCode
	return m
}

func (m *ResponseHeaderBuilder) ContentType(contentType ContentType) *ResponseHeaderBuilder {
	m.contentType = &contentType
	return m
}

// Values returns the header values being accumulated, mutably.
func (m *ResponseHeaderBuilder) Values() *HeaderValues {
	return m.values
}

// Build creates the ResponseHeader, using defaults for every field
// that was not configured.
func (m *ResponseHeaderBuilder) Build() *ResponseHeader {
	header := &ResponseHeader{
		Version:     HttpVersion11,
		StatusCode:  StatusOk,
		ContentType: EmptyContentType(),
		Values:      m.values,
	}

	if m.version != nil {
		header.Version = *m.version
	}
	if m.statusCode != nil {
		header.StatusCode = *m.statusCode
	}
	if m.contentType != nil {
		header.ContentType = *m.contentType
	}

	return header
}

//endregion

// parseContentType splits "mime; charset=x" into a ContentType.
// Other directives are ignored.
func parseContentType(text string) ContentType {
	mimePart := text
	charsetPart := ""

	for i := 0; i < len(text); i++ {
		if text[i] == ';' {
			mimePart = trimSpaces(text[:i])
			charsetPart = trimSpaces(text[i+1:])
			break
		}
	}

	contentType := ContentTypeFromString(mimePart)

	const prefix = "charset="
	if len(charsetPart) > len(prefix) && charsetPart[:len(prefix)] == prefix {
		if charset, ok := CharsetFromString(charsetPart[len(prefix):]); ok {
			contentType = contentType.WithCharset(charset)
		}
	}

	return contentType
}

func trimSpaces(text string) string {
	for len(text) > 0 && (text[0] == ' ' || text[0] == '\t') {
		text = text[1:]
	}
	for len(text) > 0 && (text[len(text)-1] == ' ' || text[len(text)-1] == '\t') {
		text = text[:len(text)-1]
	}
	return text
}
