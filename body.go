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
	"bytes"
	"context"
	"io"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

//region Body

type bodyKind uint8

const (
	bodyEmpty bodyKind = iota
	bodyBuffered
	bodyStreaming
	bodyReader
	bodyForeign
)

// Body is the entity-body of an HTTP message in flight.
//
// It hides whether the bytes are already buffered in memory, arrive
// as a chunk stream, come from a plain io.Reader or from a foreign
// HTTP engine. All variants are consumed through the same NextChunk
// and Collect operations.
//
// A Body belongs to exactly one reader. It is consumed destructively,
// hand it over by moving the pointer (or via Take), never read it from
// two goroutines.
type Body struct {
	kind   bodyKind
	buf    []byte
	offset int
	stream ChunkStream
	reader io.Reader

	limited bool
	done    bool
}

// NewBody creates a new empty body.
func NewBody() *Body {
	return &Body{}
}

// BodyFromBytes creates a body over the given buffer. The body takes
// ownership of the slice, the caller must not reuse it. An empty slice
// yields an empty body.
func BodyFromBytes(buf []byte) *Body {
	if len(buf) == 0 {
		return &Body{}
	}
	return &Body{kind: bodyBuffered, buf: buf}
}

// BodyCopyFromBytes is BodyFromBytes over a private copy of the slice.
func BodyCopyFromBytes(buf []byte) *Body {
	if len(buf) == 0 {
		return &Body{}
	}
	owned := make([]byte, len(buf))
	copy(owned, buf)
	return &Body{kind: bodyBuffered, buf: owned}
}

// BodyFromString creates a buffered body over the string's bytes.
func BodyFromString(text string) *Body {
	return BodyFromBytes([]byte(text))
}

// BodyFromReader creates a body driven by an io.Reader.
// Reader failures surface as SourceError.
func BodyFromReader(reader io.Reader) *Body {
	return &Body{
		kind:   bodyReader,
		reader: reader,
		stream: ChunkStreamFromReader(reader),
	}
}

// BodyFromStream creates a body driven by a ChunkStream.
func BodyFromStream(stream ChunkStream) *Body {
	return &Body{kind: bodyStreaming, stream: stream}
}

// BodyFromForeignStream creates a body over a stream owned by an
// external HTTP engine. It behaves like BodyFromStream, the tag only
// marks where the bytes come from. Engine adapter packages use this.
func BodyFromForeignStream(stream ChunkStream) *Body {
	return &Body{kind: bodyForeign, stream: stream}
}

//endregion

//region Reading

// NextChunk returns the next chunk of the body, or (nil, nil) once it
// is exhausted. Exhaustion is not an error and repeating the call
// keeps answering (nil, nil).
//
// For an empty or buffered body this resolves immediately. For the
// other variants it drives the underlying source, waiting for data or
// for ctx to be done, whichever comes first.
func (m *Body) NextChunk(ctx context.Context) ([]byte, error) {
	switch m.kind {
	case bodyEmpty:
		return nil, nil

	case bodyBuffered:
		if m.offset >= len(m.buf) {
			return nil, nil
		}
		chunk := m.buf[m.offset:]
		m.offset = len(m.buf)
		return chunk, nil

	default:
		if m.done {
			return nil, nil
		}

		chunk, err := m.stream.NextChunk(ctx)
		if err != nil {
			return nil, wrapSourceError(err)
		}

		if len(chunk) == 0 {
			m.done = true
			return nil, nil
		}

		return chunk, nil
	}
}

// Collect reads the whole body into one owned buffer. It is
// all-or-nothing: on a source failure the partial bytes are dropped
// and only the error is returned.
func (m *Body) Collect(ctx context.Context) ([]byte, error) {
	switch m.kind {
	case bodyEmpty:
		return nil, nil

	case bodyBuffered:
		chunk, _ := m.NextChunk(ctx)
		return chunk, nil
	}

	acc := bytebufferpool.Get()
	defer bytebufferpool.Put(acc)

	for {
		chunk, err := m.NextChunk(ctx)
		if err != nil {
			return nil, err
		}
		if chunk == nil {
			break
		}

		_, _ = acc.Write(chunk)
	}

	owned := make([]byte, len(acc.B))
	copy(owned, acc.B)
	return owned, nil
}

// CollectString collects the body and decodes it as UTF-8,
// failing with EncodingError on invalid bytes.
func (m *Body) CollectString(ctx context.Context) (string, error) {
	raw, err := m.Collect(ctx)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", NewEncodingError("body is not valid utf-8")
	}

	return string(raw), nil
}

// WriteTo streams the whole body into the given writer.
func (m *Body) WriteTo(ctx context.Context, writer io.Writer) error {
	for {
		chunk, err := m.NextChunk(ctx)
		if err != nil {
			return err
		}
		if chunk == nil {
			return nil
		}

		if _, err := writer.Write(chunk); err != nil {
			return err
		}
	}
}

// ToReader exposes the remaining body as an io.Reader. The body is
// consumed through the returned reader, don't mix it with NextChunk.
func (m *Body) ToReader(ctx context.Context) io.Reader {
	switch m.kind {
	case bodyEmpty:
		return bytes.NewReader(nil)

	case bodyBuffered:
		reader := bytes.NewReader(m.buf[m.offset:])
		m.offset = len(m.buf)
		return reader

	case bodyReader:
		if !m.limited {
			return m.reader
		}
	}

	return &streamReader{ctx: ctx, stream: m.stream}
}

//endregion

//region Introspection

// IsEmpty tells if the body is the empty variant. For a streaming or
// foreign body the answer stays false even when the source turns out
// to produce nothing.
func (m *Body) IsEmpty() bool {
	return m.kind == bodyEmpty
}

// Len returns the number of remaining bytes when it is known up
// front, which is the case for empty and buffered bodies only.
func (m *Body) Len() (int, bool) {
	switch m.kind {
	case bodyEmpty:
		return 0, true
	case bodyBuffered:
		return len(m.buf) - m.offset, true
	default:
		return 0, false
	}
}

// Take returns this body and leaves an empty one behind.
// It is the ownership-transfer helper for struct fields.
func (m *Body) Take() *Body {
	taken := *m
	*m = Body{}
	return &taken
}

// SetSizeLimit caps how many bytes a streaming, reader or foreign
// body may produce. Crossing the cap surfaces on read as a
// SourceError wrapping ErrSizeLimitReached. Returns false for empty
// and buffered bodies, whose size is already known.
func (m *Body) SetSizeLimit(maxSize int) bool {
	switch m.kind {
	case bodyStreaming, bodyReader, bodyForeign:
		m.stream = &sizeLimitStream{inner: m.stream, remaining: maxSize}
		m.limited = true
		return true
	}
	return false
}

func (m *Body) String() string {
	switch m.kind {
	case bodyBuffered:
		return "Body:Buffered"
	case bodyStreaming:
		return "Body:Streaming"
	case bodyReader:
		return "Body:Reader"
	case bodyForeign:
		return "Body:Foreign"
	default:
		return "Body:Empty"
	}
}

//endregion
