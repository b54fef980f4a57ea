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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomidict/lookup"
)

var queryCommand = &cli.Command{
	Name:            "query",
	Usage:           "Look up words",
	ArgsUsage:       "WORD...",
	Description:     "Look up each word, falling back to the most similar headword when there is no exact match.",
	Flags:           append(lookupFlags(), helpFlag()),
	HideHelp:        true,
	HideHelpCommand: true,
	OnUsageError:    usageError,
	Action: commandAction(func(c *cli.Context) error {
		words := c.Args().Slice()
		if len(words) == 0 {
			return fmt.Errorf("%w: no words given", ErrFlagParse)
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

		results := make([]lookup.Result, 0, len(words))
		blocks := make([]block, 0, len(words))
		for _, word := range words {
			r := searcher.Lookup(word)
			s.logger.Debug("looked up word", "query", word, "kind", r.Kind, "headword", r.Headword, "score", r.Score)
			results = append(results, r)
			blocks = append(blocks, block{result: r})
		}

		return writeOutput(c.App.Writer, format, results, blocks)
	}),
}
