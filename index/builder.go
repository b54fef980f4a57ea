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

package index

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/ianlewis/go-yomidict"
	"github.com/ianlewis/go-yomidict/termbank"
)

// ErrEntryFormat is returned when a term bank record is malformed.
var ErrEntryFormat = termbank.ErrEntryFormat

// Options are options for building an index.
type Options struct {
	// Logger receives progress messages. Messages are discarded when nil.
	Logger *slog.Logger
}

// DefaultOptions is the default options for a Builder.
var DefaultOptions = &Options{}

// Builder merges term records into an index. A Builder is not safe for
// concurrent use.
type Builder struct {
	entries map[string]*Entry
	logger  *slog.Logger
}

// NewBuilder returns a new empty Builder.
func NewBuilder(options *Options) *Builder {
	if options == nil {
		options = DefaultOptions
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Builder{
		entries: map[string]*Entry{},
		logger:  logger,
	}
}

// AddRecords merges records into the builder and returns the number of new
// headwords. A new headword is inserted with a copy of its translations. A
// known headword keeps its reading and has the translations appended.
func (b *Builder) AddRecords(records []*termbank.Record) int {
	added := 0
	for _, r := range records {
		if e, ok := b.entries[r.Headword]; ok {
			e.Translations = append(e.Translations, r.Translations...)
			continue
		}
		b.entries[r.Headword] = &Entry{
			Headword:     r.Headword,
			Reading:      r.Reading,
			Translations: slices.Clone(r.Translations),
		}
		added++
	}
	return added
}

// AddArchive reads every term bank in the archive at path and merges its
// records. Either all of the archive's records are merged or, on error, none
// are. The archive is closed before AddArchive returns.
func (b *Builder) AddArchive(path string) (err error) {
	a, err := yomidict.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", yomidict.ErrArchiveRead, cerr)
		}
	}()

	banks := a.TermBanks()
	var records []*termbank.Record
	for _, name := range banks {
		r, err := a.ReadTermBank(name)
		if err != nil {
			return err
		}
		records = append(records, r...)
	}

	added := b.AddRecords(records)
	b.logger.Debug("indexed archive",
		"path", path,
		"term_banks", len(banks),
		"records", len(records),
		"new_headwords", added,
	)

	return nil
}

// Index returns an index of everything merged so far. The index does not
// share memory with the builder so the builder may continue to be used.
func (b *Builder) Index() *Index {
	entries := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		entries = append(entries, *e)
	}
	return New(entries)
}

// Build builds an index from the archives at the given paths, in order.
// Archive order determines which reading is kept for a headword found in
// more than one archive. No index is returned if any archive fails.
func Build(paths []string, options *Options) (*Index, error) {
	b := NewBuilder(options)
	for _, path := range paths {
		if err := b.AddArchive(path); err != nil {
			return nil, err
		}
	}

	idx := b.Index()
	b.logger.Info("built index",
		"archives", len(paths),
		"headwords", idx.Len(),
	)
	return idx, nil
}
