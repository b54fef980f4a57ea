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

// Package testutil contains helpers for building test dictionary archives.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

// Entry is a named file stored in a test archive.
type Entry struct {
	Name string
	Data []byte
}

// Term returns a term record in the archive's positional layout. Fields the
// index does not use are filled with placeholder values.
func Term(headword, reading string, translations ...string) []any {
	if translations == nil {
		translations = []string{}
	}
	return []any{headword, reading, "", "", 0, translations, 0, ""}
}

// MakeTermBank encodes records as term bank JSON.
func MakeTermBank(t *testing.T, records ...[]any) []byte {
	t.Helper()

	if records == nil {
		records = [][]any{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// MakeArchive writes a zip archive holding entries, in order, to a temporary
// directory and returns its path. The archive is removed when the test ends.
func MakeArchive(t *testing.T, name string, entries ...Entry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z := zip.NewWriter(f)
	for _, e := range entries {
		w, err := z.Create(e.Name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(e.Data); err != nil {
			t.Fatal(err)
		}
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

// MakeTermArchive writes an archive with a single term bank containing
// records.
func MakeTermArchive(t *testing.T, name string, records ...[]any) string {
	t.Helper()

	return MakeArchive(t, name, Entry{
		Name: "term_bank_1.json",
		Data: MakeTermBank(t, records...),
	})
}
