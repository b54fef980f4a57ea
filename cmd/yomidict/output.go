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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-yomidict/internal/render"
	"github.com/ianlewis/go-yomidict/lookup"
)

const (
	formatText   = "text"
	formatMarkup = "markup"
	formatJSON   = "json"
	formatYAML   = "yaml"
)

// block renders a result for the text formats.
type block struct {
	heading string
	result  lookup.Result
}

// writeOutput writes v as a JSON or YAML document, or the blocks separated
// by blank lines for the text formats.
func writeOutput(w io.Writer, format string, v any, blocks []block) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("writing json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		return nil
	case formatText, formatMarkup:
		for i, b := range blocks {
			if i > 0 {
				check(writeLine(w, ""))
			}
			if b.heading != "" {
				check(writeLine(w, b.heading))
			}
			text := render.Markup(b.result)
			if strings.EqualFold(format, formatText) {
				text = render.Plain(text)
			}
			check(writeLine(w, text))
		}
		return nil
	default:
		return fmt.Errorf("%w: output format %q", ErrUnsupported, format)
	}
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

// checkFormat returns an error if format is not a supported output format.
func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case formatText, formatMarkup, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: output format %q", ErrUnsupported, format)
	}
}
