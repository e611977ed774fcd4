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

//region HeaderValues

// HeaderValues maps header names to their values. Lookup is
// case-insensitive, a name may carry several values and their
// insertion order is preserved.
//
// It is a plain in-memory mapping without locking: share it across
// goroutines only behind your own synchronization.
type HeaderValues struct {
	index map[string][]HeaderValue

	// first-seen spelling per lowercased name, for VisitAll
	names map[string]string
	order []string
}

// NewHeaderValues creates an empty header-value mapping.
func NewHeaderValues() *HeaderValues {
	return &HeaderValues{
		index: make(map[string][]HeaderValue),
		names: make(map[string]string),
	}
}

func headerKey(name string) string {
	return strings.ToLower(name)
}

// Get returns the first value for the name. The flag distinguishes an
// absent name from a present one with an empty value.
func (m *HeaderValues) Get(name string) (HeaderValue, bool) {
	values := m.index[headerKey(name)]
	if len(values) == 0 {
		return HeaderValue{}, false
	}
	return values[0], true
}

// GetAll returns all values for the name in insertion order,
// nil if the name is absent. The returned slice is the caller's own,
// appending to it never aliases the stored values.
func (m *HeaderValues) GetAll(name string) []HeaderValue {
	values := m.index[headerKey(name)]
	if values == nil {
		return nil
	}

	out := make([]HeaderValue, len(values))
	copy(out, values)
	return out
}

// Has tells if at least one value is stored for the name.
func (m *HeaderValues) Has(name string) bool {
	return len(m.index[headerKey(name)]) > 0
}

// Len returns the total number of stored values,
// counting every occurrence.
func (m *HeaderValues) Len() int {
	count := 0
	for _, values := range m.index {
		count += len(values)
	}
	return count
}

// Insert appends a value for the name, keeping the existing ones.
func (m *HeaderValues) Insert(name string, value HeaderValue) {
	key := headerKey(name)

	if _, exists := m.names[key]; !exists {
		m.names[key] = name
		m.order = append(m.order, key)
	}

	m.index[key] = append(m.index[key], value)
}

// Set replaces all values stored for the name with the given one.
func (m *HeaderValues) Set(name string, value HeaderValue) {
	key := headerKey(name)

	if _, exists := m.names[key]; !exists {
		m.names[key] = name
		m.order = append(m.order, key)
	}

	m.index[key] = []HeaderValue{value}
}

// Del removes every value stored for the name.
func (m *HeaderValues) Del(name string) {
	key := headerKey(name)

	if _, exists := m.names[key]; !exists {
		return
	}

	delete(m.index, key)
	delete(m.names, key)

	for i, other := range m.order {
		if other == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// VisitAll calls f for every stored value, names in first-insertion
// order, values per name in insertion order. The name is reported
// with its first-seen spelling.
func (m *HeaderValues) VisitAll(f func(name string, value HeaderValue)) {
	for _, key := range m.order {
		name := m.names[key]
		for _, value := range m.index[key] {
			f(name, value)
		}
	}
}

//endregion

//region Convenience accessors

// InsertString appends a plain string value for the name.
func (m *HeaderValues) InsertString(name string, text string) {
	m.Insert(name, HeaderValueFromString(text))
}

// SetString replaces all values for the name with a plain string one.
func (m *HeaderValues) SetString(name string, text string) {
	m.Set(name, HeaderValueFromString(text))
}

// Str returns the first value for the name decoded as UTF-8. The flag
// distinguishes absence, the error reports invalid UTF-8.
func (m *HeaderValues) Str(name string) (string, bool, error) {
	value, found := m.Get(name)
	if !found {
		return "", false, nil
	}

	text, err := value.Str()
	return text, true, err
}

// PercentDecoded returns the first value for the name after
// percent-decoding. The flag distinguishes absence.
func (m *HeaderValues) PercentDecoded(name string) (string, bool, error) {
	value, found := m.Get(name)
	if !found {
		return "", false, nil
	}

	text, err := value.PercentDecoded()
	return text, true, err
}

// SetPercentEncoded percent-encodes the string and stores it as the
// only value for the name.
func (m *HeaderValues) SetPercentEncoded(name string, text string) {
	m.Set(name, PercentEncodedHeaderValue(text))
}

// JSON percent-decodes the first value for the name and deserializes
// it into target. The flag distinguishes absence; EncodingError and
// JsonError stay distinguishable in the returned error.
func (m *HeaderValues) JSON(name string, target any) (bool, error) {
	value, found := m.Get(name)
	if !found {
		return false, nil
	}

	return true, value.JSON(target)
}

// SetJSON serializes the value as JSON, percent-encodes it and stores
// it as the only value for the name.
func (m *HeaderValues) SetJSON(name string, value any) error {
	encoded, err := JsonHeaderValue(value)
	if err != nil {
		return err
	}

	m.Set(name, encoded)
	return nil
}

//endregion
