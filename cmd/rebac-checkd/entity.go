// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	kerrors "github.com/kopexa-grc/rebac/errors"
	"github.com/kopexa-grc/rebac/fga"
)

// parseEntity parses a "kind:id" or "kind:id#relation" reference, wrapping
// a malformed reference as a structured bad-request so khttp.Handle
// renders it with the right status code instead of a bare 500.
func parseEntity(s string) (fga.Entity, error) {
	e, err := fga.ParseEntity(s)
	if err != nil {
		return fga.Entity{}, kerrors.NewBadRequest("invalid entity reference: " + s)
	}

	return e, nil
}
