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

package yomidict

import (
	"errors"

	"github.com/tidwall/gjson"
)

const indexEntryName = "index.json"

var errInvalidInfo = errors.New("invalid metadata")

// Info is the dictionary metadata stored in an archive's index.json.
type Info struct {
	// Title is the dictionary name.
	Title string

	// Revision is the dictionary revision string.
	Revision string

	// Format is the archive format version. Older archives call this
	// "version".
	Format int

	// Sequenced indicates that records carry sequence numbers.
	Sequenced bool

	Author      string
	URL         string
	Description string
	Attribution string
}

func parseInfo(b []byte) (*Info, error) {
	if !gjson.ValidBytes(b) {
		return nil, errInvalidInfo
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, errInvalidInfo
	}

	format := root.Get("format")
	if !format.Exists() {
		format = root.Get("version")
	}

	return &Info{
		Title:       root.Get("title").String(),
		Revision:    root.Get("revision").String(),
		Format:      int(format.Int()),
		Sequenced:   root.Get("sequenced").Bool(),
		Author:      root.Get("author").String(),
		URL:         root.Get("url").String(),
		Description: root.Get("description").String(),
		Attribution: root.Get("attribution").String(),
	}, nil
}
