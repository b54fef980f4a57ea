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

// Package render renders lookup results as text for display.
//
// Results are first rendered with inline HTML markup (the headword is set in
// bold) for display surfaces that understand it. Plain strips the markup so
// the same text can be printed to a terminal or copied.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/ianlewis/go-yomidict/lookup"
)

// Delimiter separates translations.
const Delimiter = ", "

// NoMatchText is shown when nothing was found.
const NoMatchText = "No translation found."

// Markup renders r with inline markup.
func Markup(r lookup.Result) string {
	var b strings.Builder
	switch r.Kind {
	case lookup.ExactMatch:
		fmt.Fprintf(&b, "Word: <b>%s</b>\n", html.EscapeString(r.Headword))
	case lookup.ApproximateMatch:
		fmt.Fprintf(&b, "Approximate word: <b>%s</b> (%d%%)\n", html.EscapeString(r.Headword), r.Score)
	default:
		return NoMatchText
	}
	fmt.Fprintf(&b, "Reading: %s\n", html.EscapeString(r.Reading))
	fmt.Fprintf(&b, "Translations: %s", html.EscapeString(strings.Join(r.Translations, Delimiter)))
	return b.String()
}

// tags are the only markup Markup produces.
var tags = strings.NewReplacer("<b>", "", "</b>", "")

// Plain strips inline markup from text produced by Markup. White space and
// line breaks are kept as they are so the text can be copied verbatim.
func Plain(markup string) string {
	return html.UnescapeString(tags.Replace(markup))
}

// Text renders r as plain text.
func Text(r lookup.Result) string {
	return Plain(Markup(r))
}
