// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package fga

import (
	"context"
	"fmt"

	"github.com/kopexa-grc/rebac/check"
	"github.com/kopexa-grc/rebac/tuple"
)

// AccessCheck represents a permission check request.
// It contains all the necessary information to check if a subject has a specific relation to an object.
type AccessCheck struct {
	// SubjectType is the type of the subject (e.g., "user", "organization")
	SubjectType string
	// SubjectID is the unique identifier of the subject
	SubjectID string
	// ObjectID is the unique identifier of the object
	ObjectID string
	// ObjectType is the type of the object (e.g., "document", "space")
	ObjectType string
	// Relation is the relation to check (e.g., "viewer", "editor")
	Relation string

	// Context supplies values referenced by conditional expressions.
	Context map[string]any
	// ContextualTuples are ephemeral tuples visible only for this check.
	ContextualTuples []tuple.Tuple
}

// validate ensures that all required fields are present in the AccessCheck.
// Returns an error if any required field is missing.
func (ac AccessCheck) validate() error {
	if ac.SubjectID == "" || ac.ObjectID == "" || ac.Relation == "" {
		return fmt.Errorf("%w: subject_id, object_id, and relation are required", ErrInvalidArgument)
	}

	return nil
}

func (ac AccessCheck) toCheckRequest(maxDepth int) (check.Request, error) {
	if err := ac.validate(); err != nil {
		return check.Request{}, err
	}

	return check.Request{
		ObjectType:       ac.ObjectType,
		ObjectID:         ac.ObjectID,
		Relation:         ac.Relation,
		SubjectType:      ac.SubjectType,
		SubjectID:        ac.SubjectID,
		Context:          ac.Context,
		ContextualTuples: ac.ContextualTuples,
		MaxDepth:         maxDepth,
	}, nil
}

// CheckAccess checks if a subject has a specific relation to an object.
// Returns true if the permission is granted, false otherwise.
//
// Example:
//
//	allowed, err := client.CheckAccess(ctx, AccessCheck{
//	    SubjectID: "user123",
//	    Relation: "viewer",
//	    ObjectType: "document",
//	    ObjectID: "doc456",
//	})
func (c *Client) CheckAccess(ctx context.Context, ac AccessCheck) (bool, error) {
	return c.checkAccess(ctx, ac)
}

func (c *Client) checkAccess(ctx context.Context, ac AccessCheck) (bool, error) {
	req, err := ac.toCheckRequest(c.maxDepth)
	if err != nil {
		return false, err
	}

	return c.checker.Check(ctx, req)
}
