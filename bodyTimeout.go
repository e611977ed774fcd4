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
	"time"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// TimeoutMode selects how the deadline of a TimeoutBody is armed.
type TimeoutMode int

const (
	// TimeoutPerChunk re-arms the deadline after every chunk: the
	// guarantee is "never more than the configured duration of idle
	// time between chunks". A slow-but-steady producer passes, a
	// stalled one fails, whatever the total body size.
	TimeoutPerChunk TimeoutMode = iota

	// TimeoutTotal arms one deadline over the whole remaining body,
	// starting at the first read.
	TimeoutTotal
)

// TimeoutOptions configures a TimeoutBody.
type TimeoutOptions struct {
	Duration time.Duration
	Mode     TimeoutMode
}

// TimeoutBody wraps a Body and bounds how long a read may wait for
// the next chunk. It never alters the bytes, it only may end the read
// sequence early with a TimeoutError.
//
// Once a timeout fired the wrapped body is in an undefined consumption
// state and must not be reused; every later call on the decorator
// keeps returning TimeoutError.
type TimeoutBody struct {
	body    *Body
	options TimeoutOptions

	results  chan chunkResult
	abandon  chan struct{}
	deadline time.Time
	failed   error
	done     bool
}

type chunkResult struct {
	chunk []byte
	err   error
}

// NewTimeoutBody wraps the body with a per-chunk idle timeout.
// A non-positive duration is a ConfigError.
func NewTimeoutBody(body *Body, duration time.Duration) (*TimeoutBody, error) {
	return NewTimeoutBodyWithOptions(body, TimeoutOptions{Duration: duration})
}

// NewTimeoutBodyWithOptions wraps the body with an explicit
// timeout policy. A non-positive duration is a ConfigError.
func NewTimeoutBodyWithOptions(body *Body, options TimeoutOptions) (*TimeoutBody, error) {
	if options.Duration <= 0 {
		return nil, &ConfigError{msg: "timeout duration must be positive"}
	}

	return &TimeoutBody{body: body, options: options}, nil
}

// WithTimeout wraps this body with a per-chunk idle timeout.
func (m *Body) WithTimeout(duration time.Duration) (*TimeoutBody, error) {
	return NewTimeoutBody(m, duration)
}

// Body returns the wrapped body. Calls on it bypass the timeout. It
// must not be touched anymore once reading through the decorator has
// started, and never after a TimeoutError.
func (m *TimeoutBody) Body() *Body {
	return m.body
}

// IsEmpty tells if the wrapped body is the empty variant.
func (m *TimeoutBody) IsEmpty() bool {
	return m.body.IsEmpty()
}

// SetDuration replaces the configured duration. It only affects reads
// that have not started waiting yet.
func (m *TimeoutBody) SetDuration(duration time.Duration) {
	if duration > 0 {
		m.options.Duration = duration
	}
}

// NextChunk behaves like Body.NextChunk but races the read against
// the configured deadline. Expiry and source failures are terminal:
// every later call returns the same error immediately.
func (m *TimeoutBody) NextChunk(ctx context.Context) ([]byte, error) {
	if m.failed != nil {
		return nil, m.failed
	}
	if m.done {
		return nil, nil
	}

	// Empty and buffered bodies resolve immediately,
	// no need to arm anything.
	if m.body.kind == bodyEmpty || m.body.kind == bodyBuffered {
		return m.body.NextChunk(ctx)
	}

	if m.results == nil {
		m.startPump()
		if m.options.Mode == TimeoutTotal {
			m.deadline = time.Now().Add(m.options.Duration)
		}
	}

	wait := m.options.Duration
	if m.options.Mode == TimeoutTotal {
		wait = time.Until(m.deadline)
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case result := <-m.results:
		if result.err != nil {
			m.failed = result.err
			return nil, result.err
		}
		if result.chunk == nil {
			m.done = true
			return nil, nil
		}
		return result.chunk, nil

	case <-timer.C:
		m.failed = &TimeoutError{Idle: m.options.Duration}
		close(m.abandon)
		return nil, m.failed

	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Collect reads the whole body into one owned buffer, inheriting the
// timeout semantics chunk per chunk, not as one blanket deadline (in
// TimeoutPerChunk mode). All-or-nothing like Body.Collect.
func (m *TimeoutBody) Collect(ctx context.Context) ([]byte, error) {
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
func (m *TimeoutBody) CollectString(ctx context.Context) (string, error) {
	raw, err := m.Collect(ctx)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(raw) {
		return "", NewEncodingError("body is not valid utf-8")
	}

	return string(raw), nil
}

// The pump drives the wrapped body from its own goroutine so a read
// can be raced against the timer. Every send races against the abandon
// channel, which a fired timeout closes, so the pump exits even when
// the source would keep producing forever.
func (m *TimeoutBody) startPump() {
	m.results = make(chan chunkResult, 1)
	m.abandon = make(chan struct{})
	abandon := m.abandon

	go func() {
		for {
			chunk, err := m.body.NextChunk(context.Background())

			select {
			case m.results <- chunkResult{chunk: chunk, err: err}:
			case <-abandon:
				return
			}

			if err != nil || chunk == nil {
				return
			}
		}
	}()
}
