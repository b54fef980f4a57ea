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

package snapshot_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomidict/index"
	"github.com/ianlewis/go-yomidict/snapshot"
)

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []index.Entry
	}{
		{
			name:    "empty index",
			entries: []index.Entry{},
		},
		{
			name: "entries",
			entries: []index.Entry{
				{Headword: "日本", Reading: "にほん", Translations: []string{"Japan", "Nippon (place)"}},
				{Headword: "犬", Reading: "いぬ", Translations: []string{"dog", "dog"}},
				{Headword: "猫", Reading: "ねこ", Translations: []string{}},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "index.json.dz")
			if err := snapshot.Save(path, index.New(test.entries)); err != nil {
				t.Fatalf("Save: %v", err)
			}

			idx, err := snapshot.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !idx.Valid() {
				t.Fatal("Load: index is not valid")
			}

			if diff := cmp.Diff(test.entries, idx.Entries()); diff != "" {
				t.Fatalf("Entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSave_replaces(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "index.json.dz")

	if err := snapshot.Save(path, index.New([]index.Entry{{Headword: "犬"}})); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := snapshot.Save(path, index.New([]index.Entry{{Headword: "猫"}})); err != nil {
		t.Fatalf("Save: %v", err)
	}

	idx, err := snapshot.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := idx.Get("猫"); !ok {
		t.Fatal("Get: expected the latest snapshot")
	}

	// No temporary files are left behind.
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 1, len(files); want != got {
		t.Fatalf("files; want: %d, got: %d", want, got)
	}
}

func TestSave_invalidIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := snapshot.Save(filepath.Join(dir, "index.json.dz"), nil); err == nil {
		t.Fatal("Save: expected failure")
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want, got := 0, len(files); want != got {
		t.Fatalf("files; want: %d, got: %d", want, got)
	}
}

func TestRead_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty",
			data: []byte{},
		},
		{
			name: "not compressed",
			data: []byte(`{"format":1,"entries":[]}`),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if _, err := snapshot.Read(bytes.NewReader(test.data)); !errors.Is(err, snapshot.ErrFormat) {
				t.Fatalf("Read: want: %v, got: %v", snapshot.ErrFormat, err)
			}
		})
	}
}

func TestLoad_missing(t *testing.T) {
	t.Parallel()

	if _, err := snapshot.Load(filepath.Join(t.TempDir(), "missing.dz")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load: want: %v, got: %v", os.ErrNotExist, err)
	}
}
