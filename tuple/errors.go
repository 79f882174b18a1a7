// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package tuple

import "errors"

// ErrInvalidEntity is returned when an entity string cannot be parsed.
var ErrInvalidEntity = errors.New("invalid entity reference")
