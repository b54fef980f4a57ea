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

// Package folding implements text folding used to make similar spellings
// compare equal: width folding, kana folding and case folding.
package folding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// ErrUnknownFolder indicates an unsupported folder name.
var ErrUnknownFolder = errors.New("unknown folder")

const (
	// Width folds full-width ASCII to half-width and half-width katakana to
	// full-width.
	Width = "width"

	// Kana folds katakana to hiragana.
	Kana = "kana"

	// Case performs Unicode case folding.
	Case = "case"
)

// Names returns the supported folder names.
func Names() []string {
	return []string{Width, Kana, Case}
}

// Katakana and hiragana blocks are offset by a constant.
const (
	katakanaStart = 'ァ'
	katakanaEnd   = 'ヶ'
	kanaOffset    = 'ァ' - 'ぁ'
)

// Hiragana maps katakana runes to hiragana. Other runes are returned as is.
func Hiragana(r rune) rune {
	switch {
	case katakanaStart <= r && r <= katakanaEnd:
		return r - kanaOffset
	case r == 'ヽ', r == 'ヾ':
		// Iteration marks.
		return r - kanaOffset
	default:
		return r
	}
}

// New returns a function that creates a transformer applying the named
// folders in order. Folding is idempotent for each of the folders. New
// returns a nil function when no names are given.
func New(names []string) (func() transform.Transformer, error) {
	var makers []func() transform.Transformer
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case Width:
			makers = append(makers, func() transform.Transformer { return width.Fold })
		case Kana:
			makers = append(makers, func() transform.Transformer { return runes.Map(Hiragana) })
		case Case:
			makers = append(makers, func() transform.Transformer { return cases.Fold() })
		case "":
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFolder, name)
		}
	}

	if len(makers) == 0 {
		return nil, nil
	}

	return func() transform.Transformer {
		t := make([]transform.Transformer, 0, len(makers))
		for _, m := range makers {
			t = append(t, m())
		}
		return transform.Chain(t...)
	}, nil
}

// String folds s with a transformer returned by folder. A nil folder
// returns s unchanged.
func String(folder func() transform.Transformer, s string) (string, error) {
	if folder == nil {
		return s, nil
	}
	folded, _, err := transform.String(folder(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
