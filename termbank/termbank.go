// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package termbank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// Prefix is the name prefix of term bank entries.
	Prefix = "term_bank_"

	// Suffix is the name suffix of term bank entries.
	Suffix = ".json"
)

// Positions of the fields used from a term record.
const (
	headwordField = 0
	readingField  = 1
	glossaryField = 5

	// minFields is the minimum number of fields in a valid record.
	minFields = 6
)

// ErrEntryFormat indicates that a term bank or one of its records does not
// have the expected shape.
var ErrEntryFormat = errors.New("invalid term bank entry")

var (
	errNotArray      = errors.New("not an array")
	errTooFewFields  = fmt.Errorf("fewer than %d fields", minFields)
	errNotString     = errors.New("not a string")
	errBadGlossEntry = errors.New("unsupported glossary entry")
)

// EntryFormatError describes where a term bank failed validation.
type EntryFormatError struct {
	// Entry is the archive entry name of the term bank.
	Entry string

	// Record is the zero-based position of the failing record or -1 if the
	// term bank as a whole is malformed.
	Record int

	// Err is the underlying reason.
	Err error
}

func (e *EntryFormatError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("%v: %s: %v", ErrEntryFormat, e.Entry, e.Err)
	}
	return fmt.Sprintf("%v: %s: record %d: %v", ErrEntryFormat, e.Entry, e.Record, e.Err)
}

// Is reports whether target is ErrEntryFormat.
func (e *EntryFormatError) Is(target error) bool {
	return target == ErrEntryFormat
}

// Unwrap returns the underlying reason.
func (e *EntryFormatError) Unwrap() error {
	return e.Err
}

// Record is a validated term record.
type Record struct {
	// Headword is the term itself and the lookup key.
	Headword string

	// Reading is the phonetic reading of the headword.
	Reading string

	// Translations are the glossary entries in their original order.
	Translations []string
}

// IsTermBank reports whether the archive entry name refers to a term bank.
func IsTermBank(name string) bool {
	return strings.HasPrefix(name, Prefix) && strings.HasSuffix(name, Suffix)
}

// Parse parses the term bank data. The name is only used for error
// reporting. Parsing stops at the first invalid record.
func Parse(name string, data []byte) ([]*Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, &EntryFormatError{
			Entry:  name,
			Record: -1,
			Err:    errors.New("invalid JSON"),
		}
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, &EntryFormatError{
			Entry:  name,
			Record: -1,
			Err:    errNotArray,
		}
	}

	var records []*Record
	var parseErr error
	i := 0
	root.ForEach(func(_, value gjson.Result) bool {
		r, err := parseRecord(value)
		if err != nil {
			parseErr = &EntryFormatError{
				Entry:  name,
				Record: i,
				Err:    err,
			}
			return false
		}
		records = append(records, r)
		i++
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return records, nil
}

func parseRecord(value gjson.Result) (*Record, error) {
	if !value.IsArray() {
		return nil, errNotArray
	}
	fields := value.Array()
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: got %d", errTooFewFields, len(fields))
	}

	if fields[headwordField].Type != gjson.String {
		return nil, fmt.Errorf("headword: %w", errNotString)
	}
	if fields[readingField].Type != gjson.String {
		return nil, fmt.Errorf("reading: %w", errNotString)
	}

	glossary := fields[glossaryField]
	if !glossary.IsArray() {
		return nil, fmt.Errorf("translations: %w", errNotArray)
	}

	// NOTE: Translations is never nil so that merged entries always carry a
	// list, even when the glossary is empty.
	translations := []string{}
	for j, g := range glossary.Array() {
		t, err := glossText(g)
		if err != nil {
			return nil, fmt.Errorf("translation %d: %w", j, err)
		}
		translations = append(translations, t)
	}

	return &Record{
		Headword:     fields[headwordField].Str,
		Reading:      fields[readingField].Str,
		Translations: translations,
	}, nil
}

// glossText returns the text of a glossary entry. Plain strings are used
// verbatim. Structured entries are only accepted in their text form:
// {"type": "text", "text": "..."}.
func glossText(g gjson.Result) (string, error) {
	if g.Type == gjson.String {
		return g.Str, nil
	}
	if g.IsObject() && g.Get("type").String() == "text" {
		if text := g.Get("text"); text.Type == gjson.String {
			return text.Str, nil
		}
	}
	return "", fmt.Errorf("%w: %s", errBadGlossEntry, g.Raw)
}
