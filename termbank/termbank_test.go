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

package termbank_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomidict/termbank"
)

func TestIsTermBank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected bool
	}{
		{name: "term_bank_1.json", expected: true},
		{name: "term_bank_12.json", expected: true},
		{name: "term_bank_.json", expected: true},
		{name: "index.json", expected: false},
		{name: "tag_bank_1.json", expected: false},
		{name: "term_meta_bank_1.json", expected: false},
		{name: "term_bank_1.json.bak", expected: false},
		{name: "dir/term_bank_1.json", expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if want, got := test.expected, termbank.IsTermBank(test.name); want != got {
				t.Fatalf("IsTermBank(%q); want: %v, got: %v", test.name, want, got)
			}
		})
	}
}

// TestParse tests Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected []*termbank.Record
		record   int
		err      bool
	}{
		{
			name:     "empty bank",
			data:     `[]`,
			expected: nil,
		},
		{
			name: "single record",
			data: `[["犬","いぬ","n","",100,["dog","canine"],1000,""]]`,
			expected: []*termbank.Record{
				{
					Headword:     "犬",
					Reading:      "いぬ",
					Translations: []string{"dog", "canine"},
				},
			},
		},
		{
			name: "exactly six fields",
			data: `[["猫","ねこ",null,null,0,["cat"]]]`,
			expected: []*termbank.Record{
				{
					Headword:     "猫",
					Reading:      "ねこ",
					Translations: []string{"cat"},
				},
			},
		},
		{
			name: "multiple records keep order",
			data: `[
				["犬","いぬ","","",0,["dog"]],
				["犬","けん","","",0,["dog (formal)"]],
				["猫","ねこ","","",0,[]]
			]`,
			expected: []*termbank.Record{
				{Headword: "犬", Reading: "いぬ", Translations: []string{"dog"}},
				{Headword: "犬", Reading: "けん", Translations: []string{"dog (formal)"}},
				{Headword: "猫", Reading: "ねこ", Translations: []string{}},
			},
		},
		{
			name: "structured text glossary",
			data: `[["東京","とうきょう","","",0,[{"type":"text","text":"Tokyo"},"capital"]]]`,
			expected: []*termbank.Record{
				{
					Headword:     "東京",
					Reading:      "とうきょう",
					Translations: []string{"Tokyo", "capital"},
				},
			},
		},
		{
			name:   "invalid json",
			data:   `[["犬","いぬ"`,
			record: -1,
			err:    true,
		},
		{
			name:   "top level object",
			data:   `{"犬":"いぬ"}`,
			record: -1,
			err:    true,
		},
		{
			name:   "record not an array",
			data:   `["犬"]`,
			record: 0,
			err:    true,
		},
		{
			name:   "too few fields",
			data:   `[["犬","いぬ","","",0,["dog"]],["猫","ねこ","","",0]]`,
			record: 1,
			err:    true,
		},
		{
			name:   "headword not a string",
			data:   `[[1,"いぬ","","",0,["dog"]]]`,
			record: 0,
			err:    true,
		},
		{
			name:   "reading not a string",
			data:   `[["犬",null,"","",0,["dog"]]]`,
			record: 0,
			err:    true,
		},
		{
			name:   "translations not an array",
			data:   `[["犬","いぬ","","",0,"dog"]]`,
			record: 0,
			err:    true,
		},
		{
			name:   "translation not a string",
			data:   `[["犬","いぬ","","",0,["dog",7]]]`,
			record: 0,
			err:    true,
		},
		{
			name:   "structured content glossary",
			data:   `[["犬","いぬ","","",0,[{"type":"structured-content","content":"dog"}]]]`,
			record: 0,
			err:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			records, err := termbank.Parse("term_bank_1.json", []byte(test.data))
			if test.err {
				if !errors.Is(err, termbank.ErrEntryFormat) {
					t.Fatalf("Parse: want: %v, got: %v", termbank.ErrEntryFormat, err)
				}
				var formatErr *termbank.EntryFormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("Parse: expected *EntryFormatError, got: %T", err)
				}
				if want, got := test.record, formatErr.Record; want != got {
					t.Errorf("EntryFormatError.Record; want: %d, got: %d", want, got)
				}
				if want, got := "term_bank_1.json", formatErr.Entry; want != got {
					t.Errorf("EntryFormatError.Entry; want: %q, got: %q", want, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			if diff := cmp.Diff(test.expected, records); diff != "" {
				t.Fatalf("Parse (-want, +got):\n%s", diff)
			}
		})
	}
}
