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

package yomidict_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomidict"
	"github.com/ianlewis/go-yomidict/internal/testutil"
	"github.com/ianlewis/go-yomidict/termbank"
)

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	_, err := yomidict.Open(filepath.Join(t.TempDir(), "missing.zip"))
	if !errors.Is(err, yomidict.ErrArchiveRead) {
		t.Fatalf("Open: want: %v, got: %v", yomidict.ErrArchiveRead, err)
	}
}

func TestOpen_corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "corrupt.zip")
	if err := os.WriteFile(path, []byte("not a zip file"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := yomidict.Open(path)
	if !errors.Is(err, yomidict.ErrArchiveRead) {
		t.Fatalf("Open: want: %v, got: %v", yomidict.ErrArchiveRead, err)
	}
}

// TestArchive_TermBanks tests Archive.TermBanks.
func TestArchive_TermBanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []string
		expected []string
	}{
		{
			name:     "no entries",
			entries:  nil,
			expected: nil,
		},
		{
			name:     "no term banks",
			entries:  []string{"index.json", "tag_bank_1.json"},
			expected: nil,
		},
		{
			name: "archive order",
			entries: []string{
				"index.json",
				"term_bank_2.json",
				"term_meta_bank_1.json",
				"term_bank_1.json",
				"term_bank_3.txt",
			},
			expected: []string{"term_bank_2.json", "term_bank_1.json"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var entries []testutil.Entry
			for _, name := range test.entries {
				entries = append(entries, testutil.Entry{Name: name, Data: []byte("[]")})
			}
			path := testutil.MakeArchive(t, "dict.zip", entries...)

			a, err := yomidict.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer a.Close()

			if diff := cmp.Diff(test.expected, a.TermBanks()); diff != "" {
				t.Fatalf("TermBanks (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestArchive_ReadTermBank(t *testing.T) {
	t.Parallel()

	path := testutil.MakeArchive(t, "dict.zip",
		testutil.Entry{
			Name: "term_bank_1.json",
			Data: testutil.MakeTermBank(t, testutil.Term("犬", "いぬ", "dog", "canine")),
		},
		testutil.Entry{
			Name: "term_bank_2.json",
			Data: []byte(`[["犬","いぬ"]]`),
		},
	)

	a, err := yomidict.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer a.Close()

	records, err := a.ReadTermBank("term_bank_1.json")
	if err != nil {
		t.Fatalf("ReadTermBank: %v", err)
	}
	expected := []*termbank.Record{
		{Headword: "犬", Reading: "いぬ", Translations: []string{"dog", "canine"}},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Fatalf("ReadTermBank (-want, +got):\n%s", diff)
	}

	if _, err := a.ReadTermBank("term_bank_2.json"); !errors.Is(err, termbank.ErrEntryFormat) {
		t.Fatalf("ReadTermBank: want: %v, got: %v", termbank.ErrEntryFormat, err)
	}
}

// TestArchive_Info tests Archive.Info.
func TestArchive_Info(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []testutil.Entry
		expected *yomidict.Info
		err      error
	}{
		{
			name: "format 3",
			entries: []testutil.Entry{
				{
					Name: "index.json",
					Data: []byte(`{"title":"JMdict (English)","revision":"jmdict4","format":3,"sequenced":true,"author":"EDRDG","url":"https://www.edrdg.org/"}`),
				},
			},
			expected: &yomidict.Info{
				Title:     "JMdict (English)",
				Revision:  "jmdict4",
				Format:    3,
				Sequenced: true,
				Author:    "EDRDG",
				URL:       "https://www.edrdg.org/",
			},
		},
		{
			name: "legacy version key",
			entries: []testutil.Entry{
				{
					Name: "index.json",
					Data: []byte(`{"title":"JMnedict","revision":"jmnedict1","version":1}`),
				},
			},
			expected: &yomidict.Info{
				Title:    "JMnedict",
				Revision: "jmnedict1",
				Format:   1,
			},
		},
		{
			name:    "no index",
			entries: nil,
			expected: &yomidict.Info{
				Title: "kireicake",
			},
		},
		{
			name: "invalid index",
			entries: []testutil.Entry{
				{Name: "index.json", Data: []byte(`["title"]`)},
			},
			err: yomidict.ErrArchiveRead,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.MakeArchive(t, "kireicake.zip", test.entries...)
			a, err := yomidict.Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer a.Close()

			info, err := a.Info()
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Info: want: %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Info: %v", err)
			}
			if diff := cmp.Diff(test.expected, info); diff != "" {
				t.Fatalf("Info (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.zip", "a.ZIP", "notes.txt", filepath.Join("sub", "c.zip")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	paths, errs := yomidict.FindAll(dir)
	if len(errs) > 0 {
		t.Fatalf("FindAll: %v", errs)
	}

	expected := []string{
		filepath.Join(dir, "a.ZIP"),
		filepath.Join(dir, "b.zip"),
		filepath.Join(dir, "sub", "c.zip"),
	}
	if diff := cmp.Diff(expected, paths); diff != "" {
		t.Fatalf("FindAll (-want, +got):\n%s", diff)
	}
}
