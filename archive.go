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

package yomidict

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/ianlewis/go-yomidict/termbank"
)

// ErrArchiveRead indicates that an archive is missing, corrupt, or otherwise
// unreadable.
var ErrArchiveRead = errors.New("reading archive")

// errEntryNotFound is returned when a named entry is not in the archive.
var errEntryNotFound = errors.New("entry not found")

// Archive is an open dictionary archive.
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// FindAll returns the paths of all dictionary archives under path. If path
// is itself a file it is returned as is. Paths are returned in lexical order.
// This function will return all archives found along with any errors that
// occurred while walking the directory tree.
func FindAll(path string) ([]string, []error) {
	var paths []string
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".zip") {
			paths = append(paths, path)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return paths, errs
}

// Open opens the dictionary archive at the given path. The caller must call
// Close when done reading.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrArchiveRead, path, err)
	}

	return &Archive{
		path: path,
		zr:   zr,
	}, nil
}

// Path returns the path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// TermBanks returns the names of the term bank entries in the order they are
// stored in the archive.
func (a *Archive) TermBanks() []string {
	var names []string
	for _, f := range a.zr.File {
		if termbank.IsTermBank(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names
}

// ReadTermBank reads and parses the named term bank. Errors reading the
// archive wrap ErrArchiveRead while malformed records wrap
// termbank.ErrEntryFormat.
func (a *Archive) ReadTermBank(name string) ([]*termbank.Record, error) {
	b, err := a.readEntry(name)
	if err != nil {
		return nil, err
	}

	records, err := termbank.Parse(name, b)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", a.path, err)
	}
	return records, nil
}

// Info reads the archive's index.json metadata. Archives without an
// index.json return an Info with the title derived from the file name.
func (a *Archive) Info() (*Info, error) {
	b, err := a.readEntry(indexEntryName)
	if errors.Is(err, errEntryNotFound) {
		return &Info{
			Title: strings.TrimSuffix(filepath.Base(a.path), filepath.Ext(a.path)),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	info, err := parseInfo(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s: %w", ErrArchiveRead, a.path, indexEntryName, err)
	}
	return info, nil
}

// Close closes the archive.
func (a *Archive) Close() error {
	if err := a.zr.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", a.path, err)
	}
	return nil
}

func (a *Archive) readEntry(name string) ([]byte, error) {
	var file *zip.File
	for _, f := range a.zr.File {
		if f.Name == name {
			file = f
			break
		}
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %q: %s", errEntryNotFound, a.path, name)
	}

	r, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s: %w", ErrArchiveRead, a.path, name, err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s: %w", ErrArchiveRead, a.path, name, err)
	}
	return b, nil
}
