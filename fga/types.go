// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package fga is the public admin façade: it pre-validates writes and
// delegates checks to package check. It is the only package callers of
// this module are expected to import directly.
package fga

import "github.com/kopexa-grc/rebac/tuple"

// Kind, Relation, and Entity are re-exported from package tuple so
// callers of this façade can name entities without importing it
// (relation configs, condition definitions and contextual tuples are
// still tuple types); the wire
// format ("kind:id" / "kind:id#relation") matches OpenFGA's own
// User/Object string conventions.
type (
	Kind     = tuple.Kind
	Relation = tuple.Relation
	Entity   = tuple.Entity
)

// ParseEntity parses a "kind:id" or "kind:id#relation" string into an Entity.
func ParseEntity(s string) (Entity, error) {
	return tuple.ParseEntity(s)
}

// Condition gates a tuple's liveness on a named, parameterized expression.
type Condition struct {
	Name    string
	Context map[string]any
}

func (c Condition) toTupleCondition() tuple.Condition {
	return tuple.Condition{Name: c.Name, Context: c.Context}
}

// TupleKey is a relationship assertion as seen by the admin façade: who
// (Subject) has what (Relation) on what (Object), optionally gated by a Condition.
type TupleKey struct {
	Subject   Entity
	Object    Entity
	Relation  Relation
	Condition Condition
}

func (k TupleKey) toTuple() tuple.Tuple {
	return tuple.Tuple{
		ObjectType: string(k.Object.Kind), ObjectID: k.Object.Identifier,
		Relation:        string(k.Relation),
		SubjectType:     string(k.Subject.Kind),
		SubjectID:       k.Subject.Identifier,
		SubjectRelation: string(k.Subject.Relation),
		Condition:       k.Condition.toTupleCondition(),
	}
}
