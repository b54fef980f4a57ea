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
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a Searcher that remembers the results of recent lookups. Cache is
// safe for concurrent use.
type Cache struct {
	s   Searcher
	lru *lru.Cache[string, Result]
}

// NewCache returns a Cache holding up to size results of lookups made with
// s.
func NewCache(s Searcher, size int) (*Cache, error) {
	c, err := lru.New[string, Result](size)
	if err != nil {
		return nil, fmt.Errorf("%w: cache size %d: %w", ErrInvalidOptions, size, err)
	}
	return &Cache{
		s:   s,
		lru: c,
	}, nil
}

// Lookup implements [Searcher.Lookup]. Queries differing only in leading or
// trailing white space share a cache entry.
func (c *Cache) Lookup(query string) Result {
	q := strings.TrimSpace(query)
	if r, ok := c.lru.Get(q); ok {
		return r.clone()
	}

	r := c.s.Lookup(q)
	c.lru.Add(q, r.clone())
	return r
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.lru.Len()
}
