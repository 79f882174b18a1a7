// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package contextual decorates a store.Store with a per-request set of
// ephemeral tuples. It never writes through to the wrapped store: the
// overlay exists so that a single check can see caller-supplied tuples
// (e.g. "token claims → group membership") without those tuples ever
// becoming visible to any other request.
package contextual

import (
	"context"

	"github.com/kopexa-grc/rebac/store"
	"github.com/kopexa-grc/rebac/tuple"
)

// Overlay wraps a store.Store, prepending a fixed set of contextual
// tuples to every read that enumerates or matches tuples. Mutating
// methods and schema reads pass straight through to the wrapped store.
type Overlay struct {
	store.Store

	contextual []tuple.Tuple
}

// New constructs an overlay over s carrying the given contextual tuples.
// An empty or nil slice makes the overlay a transparent passthrough.
func New(s store.Store, contextualTuples []tuple.Tuple) *Overlay {
	return &Overlay{Store: s, contextual: contextualTuples}
}

// FindDirectTuple returns the first matching contextual tuple, or falls
// through to the wrapped store if none matches.
func (o *Overlay) FindDirectTuple(ctx context.Context, objectType, objectID, relation, subjectType, subjectID string) (*tuple.Tuple, error) {
	for _, t := range o.contextual {
		if t.ObjectType == objectType && t.ObjectID == objectID && t.Relation == relation &&
			t.SubjectType == subjectType && t.SubjectID == subjectID && t.SubjectRelation == "" {
			found := t
			return &found, nil
		}
	}

	return o.Store.FindDirectTuple(ctx, objectType, objectID, relation, subjectType, subjectID)
}

// FindUsersetTuples returns contextual userset matches followed by stored matches.
func (o *Overlay) FindUsersetTuples(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	stored, err := o.Store.FindUsersetTuples(ctx, objectType, objectID, relation)
	if err != nil {
		return nil, err
	}

	var contextual []tuple.Tuple

	for _, t := range o.contextual {
		if t.ObjectType == objectType && t.ObjectID == objectID && t.Relation == relation && t.IsUserset() {
			contextual = append(contextual, t)
		}
	}

	return append(contextual, stored...), nil
}

// FindTuplesByRelation returns contextual matches followed by stored matches, any subject shape.
func (o *Overlay) FindTuplesByRelation(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	stored, err := o.Store.FindTuplesByRelation(ctx, objectType, objectID, relation)
	if err != nil {
		return nil, err
	}

	var contextual []tuple.Tuple

	for _, t := range o.contextual {
		if t.ObjectType == objectType && t.ObjectID == objectID && t.Relation == relation {
			contextual = append(contextual, t)
		}
	}

	return append(contextual, stored...), nil
}

// ListDirectSubjects returns contextual direct subjects followed by stored ones.
func (o *Overlay) ListDirectSubjects(ctx context.Context, objectType, objectID, relation string) ([]tuple.SubjectRef, error) {
	stored, err := o.Store.ListDirectSubjects(ctx, objectType, objectID, relation)
	if err != nil {
		return nil, err
	}

	var contextual []tuple.SubjectRef

	for _, t := range o.contextual {
		if t.ObjectType == objectType && t.ObjectID == objectID && t.Relation == relation {
			contextual = append(contextual, tuple.SubjectRef{
				SubjectType:     t.SubjectType,
				SubjectID:       t.SubjectID,
				SubjectRelation: t.SubjectRelation,
			})
		}
	}

	return append(contextual, stored...), nil
}
