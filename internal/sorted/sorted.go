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

// Package sorted implements an immutable slice of values kept in key order.
package sorted

import (
	"fmt"
	"slices"
	"sort"
)

// List is a sorted, read-only list of values keyed by their String value.
type List[V fmt.Stringer] struct {
	items []V
	cmp   func(string, string) int
}

// New creates a list from the given values and comparison function. The
// values are copied and sorted stably, so values with equal keys keep their
// relative order. cmp(a, b) should return a negative number when a < b, a
// positive number when a > b and zero when a == b.
func New[V fmt.Stringer](items []V, cmp func(string, string) int) *List[V] {
	sorted := make([]V, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(a.String(), b.String())
	})

	return &List[V]{
		items: sorted,
		cmp:   cmp,
	}
}

// Len returns the number of values in the list.
func (l *List[V]) Len() int {
	return len(l.items)
}

// At returns the i'th value in key order.
func (l *List[V]) At(i int) V {
	return l.items[i]
}

// Search performs a binary search over the list and returns all values whose
// key equals query.
func (l *List[V]) Search(query string) []V {
	i, found := sort.Find(len(l.items), func(i int) int {
		return l.cmp(query, l.items[i].String())
	})
	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(l.items) && l.cmp(query, l.items[j].String()) == 0; j++ {
	}
	return l.items[i:j]
}
