// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package store defines the abstract query interface the check evaluator
// consumes. It never touches a database itself; concrete adapters live
// in store/memory and store/postgres.
package store

import (
	"context"

	"github.com/kopexa-grc/rebac/tuple"
)

//go:generate mockgen -destination=storemock/storemock.go -package=storemock github.com/kopexa-grc/rebac/store Store

// Store is the tuple store interface the check evaluator, the contextual
// overlay, and the admin façade are built against. Every method may
// suspend (block on I/O); implementations must be race-free under
// concurrent writes but need not be serializable across operations.
type Store interface {
	// FindDirectTuple looks up a tuple with subject_relation absent.
	FindDirectTuple(ctx context.Context, objectType, objectID, relation, subjectType, subjectID string) (*tuple.Tuple, error)
	// FindUsersetTuples enumerates tuples whose subject_relation is present.
	FindUsersetTuples(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error)
	// FindTuplesByRelation enumerates all tuples for (objectType, objectID, relation), any subject shape.
	FindTuplesByRelation(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error)
	// FindRelationConfig returns the relation configuration, or nil if none is configured.
	FindRelationConfig(ctx context.Context, objectType, relation string) (*tuple.RelationConfig, error)
	// FindConditionDefinition returns the named condition definition, or nil if not found.
	FindConditionDefinition(ctx context.Context, name string) (*tuple.ConditionDefinition, error)
	// ListCandidateObjectIDs returns the union of distinct object ids appearing in tuples of objectType.
	// This is a pre-filter only; callers must re-check each candidate.
	ListCandidateObjectIDs(ctx context.Context, objectType string) ([]string, error)
	// ListDirectSubjects returns every subject reference recorded directly on (objectType, objectID, relation).
	ListDirectSubjects(ctx context.Context, objectType, objectID, relation string) ([]tuple.SubjectRef, error)

	// InsertTuple upserts a tuple on its natural key.
	InsertTuple(ctx context.Context, t tuple.Tuple) error
	// DeleteTuple removes the tuple matching key, reporting whether a row was removed.
	DeleteTuple(ctx context.Context, key tuple.Key) (bool, error)
	// UpsertRelationConfig creates or replaces a relation configuration.
	UpsertRelationConfig(ctx context.Context, cfg tuple.RelationConfig) error
	// DeleteRelationConfig removes a relation configuration, reporting whether one existed.
	DeleteRelationConfig(ctx context.Context, objectType, relation string) (bool, error)
	// UpsertConditionDefinition creates or replaces a condition definition.
	UpsertConditionDefinition(ctx context.Context, def tuple.ConditionDefinition) error
	// DeleteConditionDefinition removes a condition definition, reporting whether one existed.
	DeleteConditionDefinition(ctx context.Context, name string) (bool, error)
}
