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

package lookup

import (
	"fmt"
	"slices"
)

// Kind identifies what a lookup found.
type Kind int

const (
	// NoMatch means neither an exact nor a close enough match was found. It
	// is a normal result, not an error.
	NoMatch Kind = iota

	// ExactMatch means the query is a headword in the index.
	ExactMatch

	// ApproximateMatch means the closest headword scored above the
	// threshold.
	ApproximateMatch
)

var kindNames = map[Kind]string{
	NoMatch:          "none",
	ExactMatch:       "exact",
	ApproximateMatch: "approximate",
}

// String implements [fmt.Stringer.String].
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler.MarshalText].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Result is the result of a single lookup.
type Result struct {
	// Kind is the kind of match.
	Kind Kind `json:"kind" yaml:"kind"`

	// Query is the query after normalization.
	Query string `json:"query" yaml:"query"`

	// Headword is the matched headword. For an exact match it equals Query.
	Headword string `json:"headword,omitempty" yaml:"headword,omitempty"`

	// Score is the similarity score of an approximate match.
	Score int `json:"score,omitempty" yaml:"score,omitempty"`

	// Reading is the matched entry's reading.
	Reading string `json:"reading,omitempty" yaml:"reading,omitempty"`

	// Translations are the matched entry's translations.
	Translations []string `json:"translations,omitempty" yaml:"translations,omitempty"`
}

func (r Result) clone() Result {
	r.Translations = slices.Clone(r.Translations)
	return r
}
