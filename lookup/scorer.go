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
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

// MaxScore is the score of identical strings.
const MaxScore = 100

// ErrUnknownAlgorithm indicates an unsupported similarity algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown similarity algorithm")

// Scorer scores how similar a candidate is to a query. Scores range from 0
// (unrelated) to MaxScore (identical).
type Scorer interface {
	Score(query, candidate string) int
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(query, candidate string) int

// Score implements [Scorer.Score].
func (f ScorerFunc) Score(query, candidate string) int {
	return f(query, candidate)
}

// DefaultAlgorithm is the similarity algorithm used by default.
const DefaultAlgorithm = "levenshtein"

var algorithms = map[string]edlib.Algorithm{
	"levenshtein":         edlib.Levenshtein,
	"damerau-levenshtein": edlib.DamerauLevenshtein,
	"osa":                 edlib.OSADamerauLevenshtein,
	"lcs":                 edlib.Lcs,
	"jaro":                edlib.Jaro,
	"jaro-winkler":        edlib.JaroWinkler,
	"cosine":              edlib.Cosine,
	"jaccard":             edlib.Jaccard,
	"sorensen-dice":       edlib.SorensenDice,
	"qgram":               edlib.Qgram,
}

// Algorithms returns the names accepted by NewScorer in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EditDistanceScorer scores strings by a normalized string similarity. The
// similarity in [0, 1] is scaled to [0, MaxScore] and rounded.
type EditDistanceScorer struct {
	Algorithm edlib.Algorithm
}

// NewScorer returns an EditDistanceScorer for the named algorithm. An empty
// name selects DefaultAlgorithm.
func NewScorer(name string) (*EditDistanceScorer, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	algo, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return &EditDistanceScorer{Algorithm: algo}, nil
}

// Score implements [Scorer.Score].
func (s *EditDistanceScorer) Score(query, candidate string) int {
	if query == candidate {
		return MaxScore
	}
	if query == "" || candidate == "" {
		return 0
	}

	sim, err := edlib.StringsSimilarity(query, candidate, s.Algorithm)
	if err != nil || math.IsNaN(float64(sim)) {
		return 0
	}
	return int(math.Round(float64(sim) * MaxScore))
}
