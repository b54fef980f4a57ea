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

// Package lookup implements looking up queries in a term index.
//
// A lookup first tries the query as an exact headword. On a miss, every
// headword in the index is scored against the query and the best scoring
// headword is returned if its score is strictly greater than the threshold.
// When several headwords share the best score the lexically smallest one
// wins.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-yomidict/index"
	"github.com/ianlewis/go-yomidict/internal/folding"
)

// DefaultThreshold is the default acceptance threshold. Approximate matches
// must score strictly greater than the threshold.
const DefaultThreshold = 80

// minChunk is the minimum number of candidates scored per worker.
const minChunk = 1024

var (
	// ErrInvalidIndex indicates that a lookup was attempted with an index
	// that was never built.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidOptions indicates that the engine options are out of range.
	ErrInvalidOptions = errors.New("invalid options")
)

// Searcher looks up queries.
type Searcher interface {
	Lookup(query string) Result
}

// Options are options for an Engine.
type Options struct {
	// Scorer scores candidates. Defaults to an EditDistanceScorer using
	// DefaultAlgorithm.
	Scorer Scorer

	// Threshold is the acceptance threshold in [0, MaxScore]. A threshold
	// of zero accepts any candidate scoring above zero. DefaultOptions uses
	// DefaultThreshold.
	Threshold int

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// width folding, kana folding, etc.) on the query and the headwords
	// before scoring. Exact matching is never folded. Nil disables folding.
	Folder func() transform.Transformer

	// Workers is the number of goroutines scoring candidates. Values below
	// two score sequentially. Results do not depend on Workers.
	Workers int
}

// DefaultOptions is the default options for an Engine.
var DefaultOptions = &Options{
	Threshold: DefaultThreshold,
	Workers:   1,
}

// Engine looks up queries in an index. Engine is safe for concurrent use.
type Engine struct {
	idx       *index.Index
	scorer    Scorer
	threshold int
	folder    func() transform.Transformer
	workers   int

	// folded holds the folded headwords in index order when a folder is
	// set.
	folded []string
}

// New returns a new Engine for idx. It returns ErrInvalidIndex if idx was
// never built.
func New(idx *index.Index, options *Options) (*Engine, error) {
	if !idx.Valid() {
		return nil, ErrInvalidIndex
	}
	if options == nil {
		options = DefaultOptions
	}

	e := &Engine{
		idx:       idx,
		scorer:    options.Scorer,
		threshold: options.Threshold,
		folder:    options.Folder,
		workers:   max(options.Workers, 1),
	}
	if e.threshold < 0 || e.threshold > MaxScore {
		return nil, fmt.Errorf("%w: threshold %d", ErrInvalidOptions, options.Threshold)
	}
	if e.scorer == nil {
		s, err := NewScorer(DefaultAlgorithm)
		if err != nil {
			return nil, err
		}
		e.scorer = s
	}

	if e.folder != nil {
		e.folded = make([]string, idx.Len())
		for i := range idx.Len() {
			f, err := folding.String(e.folder, idx.Headword(i))
			if err != nil {
				return nil, err
			}
			e.folded[i] = f
		}
	}

	return e, nil
}

// Lookup looks up query in idx with the default options.
func Lookup(query string, idx *index.Index) (Result, error) {
	e, err := New(idx, nil)
	if err != nil {
		return Result{}, err
	}
	return e.Lookup(query), nil
}

// Lookup looks up the query. Leading and trailing white space is removed
// from the query; no other normalization is done for exact matches.
func (e *Engine) Lookup(query string) Result {
	q := strings.TrimSpace(query)

	if entry, ok := e.idx.Get(q); ok {
		return Result{
			Kind:         ExactMatch,
			Query:        q,
			Headword:     entry.Headword,
			Reading:      entry.Reading,
			Translations: entry.Translations,
		}
	}

	if q == "" || e.idx.Len() == 0 {
		return Result{Kind: NoMatch, Query: q}
	}

	scored := q
	if e.folder != nil {
		// NOTE: a query that cannot be folded is scored as is.
		if f, err := folding.String(e.folder, q); err == nil {
			scored = f
		}
	}

	best := e.best(scored)
	if best.score <= e.threshold {
		return Result{Kind: NoMatch, Query: q}
	}

	entry, _ := e.idx.Get(e.idx.Headword(best.i))
	return Result{
		Kind:         ApproximateMatch,
		Query:        q,
		Headword:     entry.Headword,
		Score:        best.score,
		Reading:      entry.Reading,
		Translations: entry.Translations,
	}
}

type candidate struct {
	// i is the position of the headword in the index.
	i     int
	score int
}

// best returns the best scoring candidate. Ties go to the candidate with
// the smallest position.
func (e *Engine) best(q string) candidate {
	n := e.idx.Len()
	workers := min(e.workers, n/minChunk)
	if workers < 2 {
		return e.bestIn(q, 0, n)
	}

	size := (n + workers - 1) / workers
	results := make([]candidate, workers)
	var g errgroup.Group
	for w := range workers {
		lo := w * size
		hi := min(lo+size, n)
		g.Go(func() error {
			results[w] = e.bestIn(q, lo, hi)
			return nil
		})
	}
	// bestIn never fails.
	_ = g.Wait()

	best := candidate{i: -1, score: -1}
	for _, c := range results {
		if c.score > best.score {
			best = c
		}
	}
	return best
}

// bestIn returns the best scoring candidate in positions [lo, hi).
func (e *Engine) bestIn(q string, lo, hi int) candidate {
	best := candidate{i: -1, score: -1}
	for i := lo; i < hi; i++ {
		s := min(max(e.scorer.Score(q, e.candidate(i)), 0), MaxScore)
		if s > best.score {
			best = candidate{i: i, score: s}
			if s == MaxScore {
				break
			}
		}
	}
	return best
}

func (e *Engine) candidate(i int) string {
	if e.folded != nil {
		return e.folded[i]
	}
	return e.idx.Headword(i)
}
