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

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-yomidict/internal/folding"
	"github.com/ianlewis/go-yomidict/lookup"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks value ranges and names. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (l *LookupConfig) validate() error {
	if l.Threshold < 0 || l.Threshold > lookup.MaxScore {
		return fmt.Errorf("%w: threshold must be in [0, %d] (got %d)", ErrInvalid, lookup.MaxScore, l.Threshold)
	}
	if l.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0 (got %d)", ErrInvalid, l.Workers)
	}
	if l.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must be >= 0 (got %d)", ErrInvalid, l.CacheSize)
	}
	if _, err := lookup.NewScorer(l.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm: %w", ErrInvalid, err)
	}
	if _, err := folding.New(l.Fold); err != nil {
		return fmt.Errorf("%w: fold: %w", ErrInvalid, err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("%w: level %q", ErrInvalid, l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("%w: format %q", ErrInvalid, l.Format)
	}
	return nil
}
