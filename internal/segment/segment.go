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

// Package segment splits Japanese text into words so that each word can be
// looked up in its dictionary form.
package segment

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is a word in segmented text.
type Token struct {
	// Surface is the word as it appears in the text.
	Surface string `json:"surface" yaml:"surface"`

	// BaseForm is the dictionary form of the word. It equals Surface when
	// the word is not inflected or is unknown to the tokenizer.
	BaseForm string `json:"base_form" yaml:"base_form"`

	// Reading is the katakana reading, if known.
	Reading string `json:"reading,omitempty" yaml:"reading,omitempty"`

	// POS is the part of speech hierarchy, most general first.
	POS []string `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// IsContent reports whether the token carries meaning on its own. Particles,
// auxiliary verbs, punctuation and white space are not content words.
func (t Token) IsContent() bool {
	if strings.TrimSpace(t.Surface) == "" || len(t.POS) == 0 {
		return false
	}
	switch t.POS[0] {
	case "助詞", "助動詞", "記号":
		return false
	}
	return true
}

// Segmenter segments text.
type Segmenter struct {
	t *tokenizer.Tokenizer
}

// New returns a Segmenter using the IPA dictionary.
func New() (*Segmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}
	return &Segmenter{t: t}, nil
}

// Segment splits text into tokens.
func (s *Segmenter) Segment(text string) []Token {
	ktoks := s.t.Tokenize(text)
	tokens := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		tok := Token{
			Surface:  kt.Surface,
			BaseForm: kt.Surface,
			POS:      kt.POS(),
		}
		// The IPA dictionary uses "*" for unknown features.
		if base, ok := kt.BaseForm(); ok && base != "*" {
			tok.BaseForm = base
		}
		if reading, ok := kt.Reading(); ok && reading != "*" {
			tok.Reading = reading
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
