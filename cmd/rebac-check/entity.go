// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import "github.com/kopexa-grc/rebac/tuple"

func parseEntityArg(s string) (tuple.Entity, error) {
	return tuple.ParseEntity(s)
}
