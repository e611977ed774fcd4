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
	"encoding/json"
)

// BodyFromJSON serializes the value and returns a buffered body over
// the result. Serialization failures (unsupported types, non-finite
// floats, ...) surface right here as JsonError, never at read time.
func BodyFromJSON(value any) (*Body, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, &JsonError{Cause: err}
	}

	return BodyFromBytes(raw), nil
}

// IntoJSON collects the body and deserializes the bytes into target.
// A failing source surfaces as SourceError, malformed or wrong-shaped
// JSON as JsonError; the two stay distinguishable via errors.As.
func (m *Body) IntoJSON(ctx context.Context, target any) error {
	raw, err := m.Collect(ctx)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return &JsonError{Cause: err}
	}

	return nil
}

// IntoJSON collects the wrapped body under timeout semantics and
// deserializes the bytes into target.
func (m *TimeoutBody) IntoJSON(ctx context.Context, target any) error {
	raw, err := m.Collect(ctx)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return &JsonError{Cause: err}
	}

	return nil
}
