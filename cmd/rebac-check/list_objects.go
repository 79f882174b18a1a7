// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"

	"github.com/kopexa-grc/rebac/fga"
	"github.com/kopexa-grc/rebac/logger"
	"github.com/spf13/cobra"
)

// pausableLog is the subset of logger.BufferedWriter this command needs
// to silence per-candidate debug noise during the ListObjects fan-out.
type pausableLog interface {
	Pause()
	Resume()
}

var listObjectsCmd = &cobra.Command{
	Use:   "list-objects <fixture.json> <object_type> <relation> <subject>",
	Short: "List every object of object_type the subject holds relation on",
	Long: `Enumerates candidates from the fixture and re-checks each one
individually; this is a per-candidate scan, not a reverse index.

Example:

  rebac-check list-objects fixture.json doc viewer user:alice`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadFixture(args[0])
		if err != nil {
			return err
		}

		objectType := args[1]
		relation := args[2]

		subject, err := parseEntityArg(args[3])
		if err != nil {
			return err
		}

		client := fga.NewClient(store)

		// The fan-out logs one debug line per candidate; buffer it and
		// flush as a single block once the scan is done.
		if w, ok := logger.LogOutputWriter.(pausableLog); ok {
			w.Pause()
			defer w.Resume()
		}

		objects, err := client.ListObjects(cmd.Context(), objectType, relation, string(subject.Kind), subject.Identifier)
		if err != nil {
			return err
		}

		for _, objectID := range objects {
			fmt.Printf("%s:%s\n", objectType, objectID)
		}

		return nil
	},
}
