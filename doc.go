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

// Package yomidict implements reading Japanese term dictionaries packaged as
// zip archives, in pure Go.
//
// A dictionary archive contains several entries:
//  1. An index.json entry that contains metadata about the dictionary
//     (title, revision, format version, attribution).
//  2. One or more term_bank_<n>.json entries that contain the term records.
//     See package termbank for the record layout.
//  3. Other entries (tag banks, term meta banks, media) which are ignored.
//
// Archives are opened read-only and are meant to be closed once their term
// banks have been read. The merged, in-memory term index lives in package
// index and lookups are performed by package lookup.
package yomidict
