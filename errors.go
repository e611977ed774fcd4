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
	"errors"
	"fmt"
	"time"
)

// ErrSizeLimitReached is wrapped in a SourceError once a body
// configured with SetSizeLimit produced more bytes than allowed.
var ErrSizeLimitReached = errors.New("body size limit reached")

// SourceError reports that the underlying byte source failed.
// The cause is kept opaque: a network fault, an engine fault,
// whatever the source produced. It is never retried here.
type SourceError struct {
	Cause error
}

func NewSourceError(cause error) *SourceError {
	return &SourceError{Cause: cause}
}

func (e *SourceError) Error() string {
	return "body source failed: " + e.Cause.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// TimeoutError reports that no chunk arrived within the configured
// idle window. The body behind the decorator is unusable afterwards.
type TimeoutError struct {
	Idle time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no body chunk within %s", e.Idle)
}

// EncodingError reports invalid UTF-8 or an invalid
// percent-escape sequence.
type EncodingError struct {
	msg string
}

func NewEncodingError(msg string) *EncodingError {
	return &EncodingError{msg: msg}
}

func (e *EncodingError) Error() string {
	return e.msg
}

// JsonError reports malformed JSON text or a value shape mismatch.
// It is kept distinct from EncodingError so callers can tell
// transport corruption apart from wrong-shaped content.
type JsonError struct {
	Cause error
}

func (e *JsonError) Error() string {
	return "json: " + e.Cause.Error()
}

func (e *JsonError) Unwrap() error {
	return e.Cause
}

// ConfigError reports an invalid construction parameter,
// detected fail-fast, never deferred to read time.
type ConfigError struct {
	msg string
}

func NewConfigError(msg string) *ConfigError {
	return &ConfigError{msg: msg}
}

func (e *ConfigError) Error() string {
	return e.msg
}

// wrapSourceError keeps already classified errors and context errors
// as-is, everything else becomes a SourceError.
func wrapSourceError(err error) error {
	var sourceErr *SourceError
	var timeoutErr *TimeoutError

	if errors.As(err, &sourceErr) || errors.As(err, &timeoutErr) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return &SourceError{Cause: err}
}
