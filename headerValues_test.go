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

func TestSetReplacesAllValues(t *testing.T) {
	values := NewHeaderValues()
	values.SetString("X", "a")
	values.SetString("X", "b")

	all := values.GetAll("X")
	if len(all) != 1 {
		t.Fatal("set then set must leave exactly one value, got", len(all))
	}

	if text, _ := all[0].Str(); text != "b" {
		t.Error("the last set value must win, got [", text, "]")
	}
}

func TestInsertAppendsInOrder(t *testing.T) {
	values := NewHeaderValues()
	values.InsertString("X", "a")
	values.InsertString("X", "b")

	all := values.GetAll("X")
	if len(all) != 2 {
		t.Fatal("insert then insert must leave two values, got", len(all))
	}

	first, _ := all[0].Str()
	second, _ := all[1].Str()
	if first != "a" || second != "b" {
		t.Error("insertion order broken: [", first, second, "]")
	}
}

func TestGetAllIsDetachedFromStorage(t *testing.T) {
	values := NewHeaderValues()
	values.InsertString("X", "a")

	// growing the returned slice must not overwrite what a later
	// Insert stores
	got := values.GetAll("X")
	got = append(got, HeaderValueFromString("rogue"))
	_ = got

	values.InsertString("X", "b")

	all := values.GetAll("X")
	if len(all) != 2 {
		t.Fatal("expected two stored values, got", len(all))
	}

	second, _ := all[1].Str()
	if second != "b" {
		t.Error("stored value clobbered through an aliased slice, got [", second, "]")
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	values := NewHeaderValues()
	values.InsertString("Content-Type", "text/plain")

	for _, name := range []string{"content-type", "CONTENT-TYPE", "Content-type"} {
		if !values.Has(name) {
			t.Error("lookup must be case-insensitive, missed [", name, "]")
		}
	}
}

func TestAbsenceVsEmptyValue(t *testing.T) {
	values := NewHeaderValues()
	values.SetString("Present", "")

	if _, found := values.Get("Present"); !found {
		t.Error("a present name with an empty value must be found")
	}

	if _, found := values.Get("Absent"); found {
		t.Error("an absent name must not be found")
	}

	if values.GetAll("Absent") != nil {
		t.Error("GetAll on an absent name must return nil")
	}
}

func TestDel(t *testing.T) {
	values := NewHeaderValues()
	values.InsertString("A", "1")
	values.InsertString("B", "2")
	values.Del("a")

	if values.Has("A") {
		t.Error("Del must remove all values, case-insensitively")
	}
	if !values.Has("B") {
		t.Error("Del must not touch other names")
	}
	if values.Len() != 1 {
		t.Error("Len must count remaining occurrences, got", values.Len())
	}
}

func TestVisitAllOrder(t *testing.T) {
	values := NewHeaderValues()
	values.InsertString("First", "1")
	values.InsertString("Second", "2a")
	values.InsertString("second", "2b")

	var visited []string
	values.VisitAll(func(name string, value HeaderValue) {
		text, _ := value.Str()
		visited = append(visited, name+"="+text)
	})

	expected := []string{"First=1", "Second=2a", "Second=2b"}
	if len(visited) != len(expected) {
		t.Fatal("visited", visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Error("visit order broken at", i, ":", visited[i])
		}
	}
}

func TestStrRejectsInvalidUtf8(t *testing.T) {
	values := NewHeaderValues()
	values.Set("Raw", NewHeaderValue([]byte{0xff, 0x00}))

	_, found, err := values.Str("Raw")
	if !found {
		t.Fatal("the value must be reported as present")
	}

	var encodingErr *EncodingError
	if !errors.As(err, &encodingErr) {
		t.Error("invalid utf-8 must fail with EncodingError, got:", err)
	}
}

func TestPercentEncodedHeader(t *testing.T) {
	values := NewHeaderValues()
	values.SetPercentEncoded("Rocket", "🚀 Rocket")

	stored, _, err := values.Str("Rocket")
	if err != nil {
		t.Fatal(err)
	}
	if stored != "%F0%9F%9A%80 Rocket" {
		t.Error("stored bytes are [", stored, "]")
	}

	decoded, _, err := values.PercentDecoded("Rocket")
	if err != nil {
		t.Fatal(err)
	}
	if decoded != "🚀 Rocket" {
		t.Error("decoded to [", decoded, "]")
	}
}

func TestHeaderJsonRoundTrip(t *testing.T) {
	type value struct {
		Text   string `json:"text"`
		Number int    `json:"number"`
	}

	values := NewHeaderValues()
	sent := value{Text: "🚀 Rocket", Number: 42}

	if err := values.SetJSON("Value", &sent); err != nil {
		t.Fatal("SetJSON failed:", err)
	}

	stored, _, err := values.Str("Value")
	if err != nil {
		t.Fatal(err)
	}
	if stored != `{"text":"%F0%9F%9A%80 Rocket","number":42}` {
		t.Error("stored bytes are [", stored, "]")
	}

	var received value
	found, err := values.JSON("Value", &received)
	if !found || err != nil {
		t.Fatal("JSON read failed:", found, err)
	}

	if received != sent {
		t.Error("round trip mismatch:", received)
	}
}

func TestHeaderJsonShapeMismatch(t *testing.T) {
	values := NewHeaderValues()
	// valid percent encoding, valid JSON, wrong shape
	values.SetString("Value", "42")

	var target struct{ Text string }
	found, err := values.JSON("Value", &target)
	if !found {
		t.Fatal("the value must be reported as present")
	}

	var jsonErr *JsonError
	var encodingErr *EncodingError
	if !errors.As(err, &jsonErr) {
		t.Fatal("a shape mismatch must be a JsonError, got:", err)
	}
	if errors.As(err, &encodingErr) {
		t.Error("a shape mismatch must not look like an EncodingError")
	}
}

func TestHeaderJsonBadEscape(t *testing.T) {
	values := NewHeaderValues()
	values.SetString("Value", "%zz")

	var target any
	_, err := values.JSON("Value", &target)

	var encodingErr *EncodingError
	if !errors.As(err, &encodingErr) {
		t.Error("a bad escape must be an EncodingError, got:", err)
	}
}

func TestJsonHeaderValueRejectsUnserializable(t *testing.T) {
	_, err := JsonHeaderValue(make(chan int))

	var jsonErr *JsonError
	if !errors.As(err, &jsonErr) {
		t.Error("an unserializable value must fail with JsonError, got:", err)
	}
}
