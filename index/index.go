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

// Package index implements the merged, in-memory term index.
//
// An Index is built once from one or more dictionary archives by a Builder
// and is read-only afterwards. It is safe for concurrent use by multiple
// goroutines.
package index

import (
	"slices"
	"strings"

	"github.com/ianlewis/go-yomidict/internal/sorted"
)

// Entry is a merged index entry.
type Entry struct {
	// Headword is the lookup key.
	Headword string `json:"headword" yaml:"headword"`

	// Reading is the reading from the first archive the headword was seen in.
	Reading string `json:"reading" yaml:"reading"`

	// Translations are the translations from all archives in the order they
	// were read.
	Translations []string `json:"translations" yaml:"translations"`
}

// String returns the entry's headword.
func (e *Entry) String() string {
	return e.Headword
}

func (e *Entry) clone() *Entry {
	return &Entry{
		Headword:     e.Headword,
		Reading:      e.Reading,
		Translations: slices.Clone(e.Translations),
	}
}

// Index is a term index keyed by headword. Headwords are unique and kept in
// byte-wise lexical order. The zero value is not a valid index; use a
// Builder, Build, or New.
type Index struct {
	entries *sorted.List[*Entry]
}

// New returns an index holding the given entries. Entries must have unique
// headwords; when a headword repeats, the first entry wins. The entries are
// copied.
func New(entries []Entry) *Index {
	seen := make(map[string]bool, len(entries))
	copies := make([]*Entry, 0, len(entries))
	for i := range entries {
		if seen[entries[i].Headword] {
			continue
		}
		seen[entries[i].Headword] = true
		copies = append(copies, entries[i].clone())
	}

	return &Index{
		entries: sorted.New(copies, strings.Compare),
	}
}

// Valid reports whether idx was built. A nil or zero Index is not valid.
func (idx *Index) Valid() bool {
	return idx != nil && idx.entries != nil
}

// Len returns the number of headwords in the index.
func (idx *Index) Len() int {
	if !idx.Valid() {
		return 0
	}
	return idx.entries.Len()
}

// Headword returns the i'th headword in lexical order.
func (idx *Index) Headword(i int) string {
	return idx.entries.At(i).Headword
}

// Get returns a copy of the entry for the given headword.
func (idx *Index) Get(headword string) (Entry, bool) {
	if !idx.Valid() {
		return Entry{}, false
	}
	match := idx.entries.Search(headword)
	if len(match) == 0 {
		return Entry{}, false
	}
	return *match[0].clone(), true
}

// Entries returns a copy of all entries in lexical order of their headwords.
func (idx *Index) Entries() []Entry {
	entries := make([]Entry, 0, idx.Len())
	for i := range idx.Len() {
		entries = append(entries, *idx.entries.At(i).clone())
	}
	return entries
}
