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

	"github.com/ianlewis/go-yomidict/snapshot"
)

var buildCommand = &cli.Command{
	Name:        "build",
	Usage:       "Build an index snapshot",
	Description: "Build the index from the dictionary archives and save it as a snapshot that later commands load with --snapshot.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Usage:    "write the snapshot to `FILE`",
			Aliases:  []string{"o"},
			Required: true,
		},
		helpFlag(),
	},
	HideHelp:        true,
	HideHelpCommand: true,
	OnUsageError:    usageError,
	Action: commandAction(func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		idx, err := s.buildIndex()
		if err != nil {
			return err
		}

		path := c.String("output")
		if err := snapshot.Save(path, idx); err != nil {
			return err
		}
		s.logger.Info("saved snapshot", "path", path, "headwords", idx.Len())

		_, err = fmt.Fprintf(c.App.Writer, "Saved %d headwords to %s\n", idx.Len(), path)
		return err
	}),
}
