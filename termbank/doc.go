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

// Package termbank implements reading term bank entries.
//
// A term bank is a JSON file named term_bank_<n>.json stored inside a
// dictionary archive. It holds a JSON array of term records. Each record is
// itself an array of positional fields:
//  1. The headword: a string.
//  2. The reading: a string, the phonetic transcription of the headword.
//  3. Definition tags (ignored).
//  4. Deinflection rules (ignored).
//  5. Popularity score (ignored).
//  6. The glossary: an array of translation strings.
//
// Records may carry further trailing fields (sequence number, term tags)
// which are ignored.
package termbank
