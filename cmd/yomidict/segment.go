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

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomidict/internal/segment"
	"github.com/ianlewis/go-yomidict/lookup"
)

// segmentResult is the lookup result for a word of a segmented sentence.
type segmentResult struct {
	Token  segment.Token `json:"token"  yaml:"token"`
	Result lookup.Result `json:"result" yaml:"result"`
}

var segmentCommand = &cli.Command{
	Name:            "segment",
	Usage:           "Split a sentence into words and look them up",
	ArgsUsage:       "SENTENCE",
	Description:     "Split a Japanese sentence into words and look up the dictionary form of each content word.",
	Flags:           append(lookupFlags(), helpFlag()),
	HideHelp:        true,
	HideHelpCommand: true,
	OnUsageError:    usageError,
	Action: commandAction(func(c *cli.Context) error {
		sentence := strings.Join(c.Args().Slice(), " ")
		if strings.TrimSpace(sentence) == "" {
			return fmt.Errorf("%w: no sentence given", ErrFlagParse)
		}

		format := c.String("format")
		if err := checkFormat(format); err != nil {
			return err
		}

		s, err := newSession(c)
		if err != nil {
			return err
		}
		if err := s.setLookupFlags(c); err != nil {
			return err
		}

		idx, err := s.index()
		if err != nil {
			return err
		}
		searcher, err := s.searcher(idx)
		if err != nil {
			return err
		}

		seg, err := segment.New()
		if err != nil {
			return err
		}

		var results []segmentResult
		var blocks []block
		for _, tok := range seg.Segment(sentence) {
			if !tok.IsContent() {
				continue
			}
			r := searcher.Lookup(tok.BaseForm)
			results = append(results, segmentResult{
				Token:  tok,
				Result: r,
			})

			heading := tok.Surface
			if tok.BaseForm != tok.Surface {
				heading = fmt.Sprintf("%s (%s)", tok.Surface, tok.BaseForm)
			}
			blocks = append(blocks, block{
				heading: heading,
				result:  r,
			})
		}

		return writeOutput(c.App.Writer, format, results, blocks)
	}),
}
