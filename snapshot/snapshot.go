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

// Package snapshot implements saving and loading built term indexes.
//
// A snapshot is a JSON document compressed with the dictzip format. Loading
// a snapshot is much faster than rebuilding the index from the original
// dictionary archives.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-yomidict/index"
)

// formatVersion is the current snapshot format version.
const formatVersion = 1

// ErrFormat indicates that a snapshot is unreadable or of an unsupported
// format.
var ErrFormat = errors.New("invalid snapshot")

type document struct {
	Format  int           `json:"format"`
	Entries []index.Entry `json:"entries"`
}

// Write writes idx to w as a snapshot.
func Write(w io.Writer, idx *index.Index) error {
	if !idx.Valid() {
		return fmt.Errorf("writing snapshot: %w", errors.New("index not built"))
	}

	z, err := dictzip.NewWriter(w)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := json.NewEncoder(z).Encode(&document{
		Format:  formatVersion,
		Entries: idx.Entries(),
	}); err != nil {
		_ = z.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := z.Close(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Read reads a snapshot from r and returns the index.
func Read(r io.ReadSeeker) (*index.Index, error) {
	z, err := dictzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	var doc document
	if err := json.NewDecoder(z).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if doc.Format != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format %d", ErrFormat, doc.Format)
	}

	return index.New(doc.Entries), nil
}

// Save writes idx as a snapshot to path. The snapshot is written to a
// temporary file first and renamed into place so readers never see a
// partially written snapshot.
func Save(path string, idx *index.Index) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err := Write(f, idx); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot at path.
func Load(path string) (*index.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	idx, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return idx, nil
}
