// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Command rebac-check is a small ad-hoc CLI for running checks against a
// fixture file: a JSON or YAML snapshot of tuples, relation configs, and
// condition definitions loaded into an in-memory store.
package main

import (
	"os"

	"github.com/kopexa-grc/rebac/logger"
)

func main() {
	logger.CliLogger()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
