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

import "strings"

//region Enum Mime

// Mime is one of the most common mime types, with its usual
// file extension.
type Mime int

const (
	// text
	MimeText Mime = iota
	MimeHtml
	MimeJs
	MimeCss
	MimeJson
	MimeCsv
	MimeDoc
	MimeDocx
	MimePdf
	MimePhp
	MimeRtf
	MimeSh
	MimeVsd
	MimeXml

	// images
	MimeJpg
	MimePng
	MimeGif
	MimeSvg
	MimeIco
	MimeTiff
	MimeWebp

	// fonts
	MimeEot
	MimeTtf
	MimeWoff
	MimeWoff2

	// video
	MimeAvi
	MimeOgv
	MimeWebm
	MimeMp4

	// audio
	MimeAac
	MimeMp3
	MimeOga
	MimeWav
	MimeWeba

	// archives
	MimeRar
	MimeTar
	MimeZip
	Mime7Zip

	// binary
	MimeJar
	MimeBinary
	MimeWasm
)

var gMimeTable = []struct {
	ext  string
	mime string
}{
	MimeText:   {"txt", "text/plain"},
	MimeHtml:   {"html", "text/html"},
	MimeJs:     {"js", "application/javascript"},
	MimeCss:    {"css", "text/css"},
	MimeJson:   {"json", "application/json"},
	MimeCsv:    {"csv", "text/csv"},
	MimeDoc:    {"doc", "application/msword"},
	MimeDocx:   {"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	MimePdf:    {"pdf", "application/pdf"},
	MimePhp:    {"php", "application/php"},
	MimeRtf:    {"rtf", "application/rtf"},
	MimeSh:     {"sh", "application/x-sh"},
	MimeVsd:    {"vsd", "application/vnd.visio"},
	MimeXml:    {"xml", "text/xml"},
	MimeJpg:    {"jpg", "image/jpeg"},
	MimePng:    {"png", "image/png"},
	MimeGif:    {"gif", "image/gif"},
	MimeSvg:    {"svg", "image/svg+xml"},
	MimeIco:    {"ico", "image/vnd.microsoft.icon"},
	MimeTiff:   {"tiff", "image/tiff"},
	MimeWebp:   {"webp", "image/webp"},
	MimeEot:    {"eot", "application/vnd.ms-fontobject"},
	MimeTtf:    {"ttf", "font/ttf"},
	MimeWoff:   {"woff", "font/woff"},
	MimeWoff2:  {"woff2", "font/woff2"},
	MimeAvi:    {"avi", "video/x-msvideo"},
	MimeOgv:    {"ogv", "video/ogg"},
	MimeWebm:   {"webm", "video/webm"},
	MimeMp4:    {"mp4", "video/mp4"},
	MimeAac:    {"aac", "audio/aac"},
	MimeMp3:    {"mp3", "audio/mpeg"},
	MimeOga:    {"oga", "audio/ogg"},
	MimeWav:    {"wav", "audio/wav"},
	MimeWeba:   {"weba", "audio/webm"},
	MimeRar:    {"rar", "application/vnd.rar"},
	MimeTar:    {"tar", "application/x-tar"},
	MimeZip:    {"zip", "application/zip"},
	Mime7Zip:   {"7z", "application/x-7z-compressed"},
	MimeJar:    {"jar", "application/java-archive"},
	MimeBinary: {"bin", "application/octet-stream"},
	MimeWasm:   {"wasm", "application/wasm"},
}

// Ext returns the usual file extension, without the dot.
func (m Mime) Ext() string {
	return gMimeTable[m].ext
}

// MimeType returns the mime type string.
func (m Mime) MimeType() string {
	return gMimeTable[m].mime
}

// MainType returns the part before the slash.
func (m Mime) MainType() string {
	mime := m.MimeType()
	return mime[:strings.IndexByte(mime, '/')]
}

// SubType returns the part after the slash.
func (m Mime) SubType() string {
	mime := m.MimeType()
	return mime[strings.IndexByte(mime, '/')+1:]
}

// Charset returns CharsetUtf8 for text-like mime types.
func (m Mime) Charset() (Charset, bool) {
	if m.MainType() == "text" || m == MimeJs || m == MimeJson {
		return CharsetUtf8, true
	}
	return 0, false
}

// TryMimeFromExt returns the mime type for a file extension.
func TryMimeFromExt(ext string) (Mime, bool) {
	for i := range gMimeTable {
		if gMimeTable[i].ext == ext {
			return Mime(i), true
		}
	}
	return 0, false
}

// MimeFromExt returns the mime type for a file extension,
// MimeBinary if the extension is unknown.
func MimeFromExt(ext string) Mime {
	if mime, ok := TryMimeFromExt(ext); ok {
		return mime
	}
	return MimeBinary
}

// TryMimeFromMimeType returns the Mime for a mime type string.
func TryMimeFromMimeType(mimeType string) (Mime, bool) {
	for i := range gMimeTable {
		if gMimeTable[i].mime == mimeType {
			return Mime(i), true
		}
	}
	return 0, false
}

//endregion

//region Enum Charset

type Charset int

const (
	CharsetUtf8 Charset = iota
)

func (m Charset) String() string {
	return "utf-8"
}

func CharsetFromString(value string) (Charset, bool) {
	if value == "utf-8" {
		return CharsetUtf8, true
	}
	return 0, false
}

//endregion

//region ContentType

type contentTypeKind uint8

const (
	contentTypeNone contentTypeKind = iota
	contentTypeKnown
	contentTypeUnknown
)

// ContentType combines a mime type (known, free-form or none) with an
// optional charset. The `boundary` directive is not supported.
type ContentType struct {
	kind    contentTypeKind
	known   Mime
	unknown string

	charset    Charset
	hasCharset bool
}

// EmptyContentType creates a ContentType carrying nothing.
func EmptyContentType() ContentType {
	return ContentType{}
}

// ContentTypeFromMime creates a ContentType from a known mime type,
// automatically adding the charset for text-like mime types.
func ContentTypeFromMime(mime Mime) ContentType {
	charset, hasCharset := mime.Charset()
	return ContentType{
		kind:       contentTypeKnown,
		known:      mime,
		charset:    charset,
		hasCharset: hasCharset,
	}
}

// ContentTypeFromString creates a ContentType from a free-form mime
// type string. The table of known mime types is tried first.
func ContentTypeFromString(mimeType string) ContentType {
	if mime, ok := TryMimeFromMimeType(mimeType); ok {
		return ContentTypeFromMime(mime)
	}
	return ContentType{kind: contentTypeUnknown, unknown: mimeType}
}

// WithCharset returns a copy with an explicitly chosen charset.
func (m ContentType) WithCharset(charset Charset) ContentType {
	m.charset = charset
	m.hasCharset = true
	return m
}

// IsEmpty tells if neither a mime type nor a charset is carried.
func (m ContentType) IsEmpty() bool {
	return m.kind == contentTypeNone
}

// MimeType returns the mime type string, empty when none is carried.
func (m ContentType) MimeType() string {
	switch m.kind {
	case contentTypeKnown:
		return m.known.MimeType()
	case contentTypeUnknown:
		return m.unknown
	default:
		return ""
	}
}

// Charset returns the carried charset if there is one.
func (m ContentType) Charset() (Charset, bool) {
	return m.charset, m.hasCharset
}

// String renders the header value: mime type, plus the charset
// directive when one is carried.
func (m ContentType) String() string {
	if m.hasCharset {
		return m.MimeType() + "; charset=" + m.charset.String()
	}
	return m.MimeType()
}

//endregion
