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
	"context"
	"io"
)

// DefaultChunkSize is the read size used when adapting an io.Reader
// into a chunk stream.
const DefaultChunkSize = 4096

// ChunkStream produces a lazy sequence of byte chunks.
//
// NextChunk returns the next chunk, or (nil, nil) once the source is
// exhausted. A returned chunk is never empty. Implementations must keep
// returning (nil, nil) after exhaustion. A ChunkStream is meant for a
// single sequential reader, it must not be shared.
type ChunkStream interface {
	NextChunk(ctx context.Context) ([]byte, error)
}

// ChunkStreamFromReader adapts an io.Reader into a ChunkStream.
// Read errors are surfaced as SourceError.
func ChunkStreamFromReader(reader io.Reader) ChunkStream {
	return &readerStream{reader: reader}
}

type readerStream struct {
	reader io.Reader
	done   bool
}

func (m *readerStream) NextChunk(ctx context.Context) ([]byte, error) {
	if m.done {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := make([]byte, DefaultChunkSize)

	for {
		n, err := m.reader.Read(buf)

		if n > 0 {
			if err == io.EOF {
				m.done = true
			}
			return buf[:n], nil
		}

		if err == io.EOF {
			m.done = true
			return nil, nil
		}

		if err != nil {
			return nil, NewSourceError(err)
		}
	}
}

// streamReader is the reverse adapter, exposing a ChunkStream
// as an io.Reader.
type streamReader struct {
	ctx    context.Context
	stream ChunkStream
	buf    []byte
	done   bool
	err    error
}

func (m *streamReader) Read(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	if len(m.buf) == 0 {
		if m.done {
			return 0, io.EOF
		}

		chunk, err := m.stream.NextChunk(m.ctx)
		if err != nil {
			m.err = err
			return 0, err
		}

		if len(chunk) == 0 {
			m.done = true
			return 0, io.EOF
		}

		m.buf = chunk
	}

	n := copy(p, m.buf)
	m.buf = m.buf[n:]
	return n, nil
}

// sizeLimitStream caps how many bytes the wrapped stream may produce.
// Crossing the limit surfaces as SourceError(ErrSizeLimitReached).
type sizeLimitStream struct {
	inner     ChunkStream
	remaining int
}

func (m *sizeLimitStream) NextChunk(ctx context.Context) ([]byte, error) {
	chunk, err := m.inner.NextChunk(ctx)
	if err != nil || chunk == nil {
		return chunk, err
	}

	m.remaining -= len(chunk)
	if m.remaining < 0 {
		return nil, NewSourceError(ErrSizeLimitReached)
	}

	return chunk, nil
}
