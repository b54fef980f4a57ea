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
	"strconv"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomidict"
)

var listCommand = &cli.Command{
	Name:            "list",
	Usage:           "List dictionaries",
	Description:     "List the dictionary archives that an index would be built from, in build order.",
	Flags:           []cli.Flag{helpFlag()},
	HideHelp:        true,
	HideHelpCommand: true,
	OnUsageError:    usageError,
	Action: commandAction(func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		paths, err := s.archives()
		if err != nil {
			return err
		}

		tbl := table.New("Path", "Title", "Revision", "Term Banks").WithWriter(c.App.Writer)

		var errs []error
		for _, path := range paths {
			info, banks, err := describe(path)
			if err != nil {
				s.logger.Error("reading archive", "path", path, "error", err)
				errs = append(errs, err)
				continue
			}
			tbl.AddRow(path, info.Title, info.Revision, strconv.Itoa(banks))
		}

		tbl.Print()

		return errors.Join(errs...)
	}),
}

// describe returns the metadata and number of term banks of the archive
// at path.
func describe(path string) (*yomidict.Info, int, error) {
	a, err := yomidict.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer a.Close()

	info, err := a.Info()
	if err != nil {
		return nil, 0, err
	}
	return info, len(a.TermBanks()), nil
}
