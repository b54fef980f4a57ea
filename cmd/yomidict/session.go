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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomidict"
	"github.com/ianlewis/go-yomidict/index"
	"github.com/ianlewis/go-yomidict/internal/config"
	"github.com/ianlewis/go-yomidict/internal/folding"
	"github.com/ianlewis/go-yomidict/internal/logging"
	"github.com/ianlewis/go-yomidict/lookup"
	"github.com/ianlewis/go-yomidict/snapshot"
)

// session holds the configuration shared by the commands. Flags override
// the configuration file and environment.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newSession(c *cli.Context) (*session, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("dictionary") {
		cfg.Dictionary.Paths = c.StringSlice("dictionary")
	}
	if c.IsSet("snapshot") {
		cfg.Dictionary.Snapshot = c.String("snapshot")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	return &session{
		cfg:    cfg,
		logger: logging.New(c.App.ErrWriter, cfg.Log.Level, cfg.Log.Format),
	}, nil
}

// archives returns the archive paths to build from, in order. Directories
// are searched for archives. Default locations that do not exist are
// skipped. Configured paths that do not exist are passed through so that
// building reports them.
func (s *session) archives() ([]string, error) {
	paths := s.cfg.Dictionary.Paths
	explicit := len(paths) > 0
	if !explicit {
		paths = dictLocations()
	}

	var archives []string
	for _, path := range paths {
		fi, err := os.Stat(path)
		switch {
		case err != nil && !explicit:
			continue
		case err != nil:
			archives = append(archives, path)
		case fi.IsDir():
			found, errs := yomidict.FindAll(path)
			for _, err := range errs {
				s.logger.Warn("searching for archives", "path", path, "error", err)
			}
			archives = append(archives, found...)
		default:
			archives = append(archives, path)
		}
	}

	if len(archives) == 0 {
		return nil, ErrNoDictionaries
	}
	return archives, nil
}

// buildIndex builds an index from the configured archives.
func (s *session) buildIndex() (*index.Index, error) {
	paths, err := s.archives()
	if err != nil {
		return nil, err
	}
	idx, err := index.Build(paths, &index.Options{
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}
	return idx, nil
}

// index loads the configured snapshot, or builds the index from the
// archives when no snapshot is configured or the snapshot does not exist.
func (s *session) index() (*index.Index, error) {
	if path := s.cfg.Dictionary.Snapshot; path != "" {
		idx, err := snapshot.Load(path)
		switch {
		case err == nil:
			s.logger.Info("loaded snapshot", "path", path, "headwords", idx.Len())
			return idx, nil
		case errors.Is(err, fs.ErrNotExist):
			s.logger.Warn("snapshot not found, building from archives", "path", path)
		default:
			return nil, err
		}
	}
	return s.buildIndex()
}

// setLookupFlags overrides the lookup configuration with the lookup flags
// that were set on the command line.
func (s *session) setLookupFlags(c *cli.Context) error {
	if c.IsSet("threshold") {
		s.cfg.Lookup.Threshold = c.Int("threshold")
	}
	if c.IsSet("algorithm") {
		s.cfg.Lookup.Algorithm = c.String("algorithm")
	}
	if c.IsSet("fold") {
		s.cfg.Lookup.Fold = c.StringSlice("fold")
	}
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return nil
}

// searcher returns a Searcher for idx configured by the session.
func (s *session) searcher(idx *index.Index) (lookup.Searcher, error) {
	lc := s.cfg.Lookup

	scorer, err := lookup.NewScorer(lc.Algorithm)
	if err != nil {
		return nil, err
	}
	folder, err := folding.New(lc.Fold)
	if err != nil {
		return nil, err
	}

	engine, err := lookup.New(idx, &lookup.Options{
		Scorer:    scorer,
		Threshold: lc.Threshold,
		Folder:    folder,
		Workers:   lc.Workers,
	})
	if err != nil {
		return nil, err
	}

	if lc.CacheSize == 0 {
		return engine, nil
	}
	return lookup.NewCache(engine, lc.CacheSize)
}

// lookupFlags are the flags shared by commands that look up words.
func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output `FORMAT` (text, markup, json, yaml)",
			Aliases: []string{"f"},
			Value:   formatText,
		},
		&cli.IntFlag{
			Name:  "threshold",
			Usage: "minimum similarity `SCORE` an approximate match must exceed",
		},
		&cli.StringFlag{
			Name:  "algorithm",
			Usage: "similarity `ALGORITHM` used for approximate matches",
		},
		&cli.StringSliceFlag{
			Name:  "fold",
			Usage: "fold `NAME` (width, kana, case) before approximate matching",
		},
	}
}
