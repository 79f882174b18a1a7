// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package condition

import "errors"

// ErrConditionNotFound is returned when a tuple names a condition that has
// no registered definition. This is a hard failure on the check path.
var ErrConditionNotFound = errors.New("condition: definition not found")

// ErrMalformedExpression is returned when a condition's expression fails to
// compile. This is a hard failure on the check path.
var ErrMalformedExpression = errors.New("condition: malformed expression")

// ErrConditionEvaluationError is returned when a compiled condition fails
// at runtime for a reason other than a missing context variable.
var ErrConditionEvaluationError = errors.New("condition: evaluation error")
