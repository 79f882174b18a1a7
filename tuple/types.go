// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package tuple defines the data model consumed by the check evaluator:
// relationship tuples, relation configurations, and condition definitions.
// It mirrors the OpenFGA wire shapes (type:id#relation strings) so stored
// data and log output stay compatible with the wider OpenFGA tooling
// ecosystem, but it is not a client of any remote service.
package tuple

import (
	"fmt"
	"strings"
)

// Wildcard is the subject id literal meaning "every principal of the stated type".
const Wildcard = "*"

// Kind identifies the type of an entity (e.g. "user", "document", "team").
type Kind string

// String returns the lowercase string representation of the Kind.
func (k Kind) String() string {
	return strings.ToLower(string(k))
}

// Relation identifies a named relation on an object type (e.g. "viewer", "member").
type Relation string

// String returns the lowercase string representation of the Relation.
func (r Relation) String() string {
	return strings.ToLower(string(r))
}

// Entity is a reference to an object or subject: a Kind, an Identifier, and
// an optional Relation (present when the entity denotes a userset rather
// than a principal).
type Entity struct {
	Kind       Kind
	Identifier string
	Relation   Relation
}

// String renders the entity in OpenFGA's "kind:id" / "kind:id#relation" form.
func (e Entity) String() string {
	if e.Kind == "" && e.Identifier == "" {
		return ""
	}

	if e.Relation == "" {
		return fmt.Sprintf("%s:%s", e.Kind, e.Identifier)
	}

	return fmt.Sprintf("%s:%s#%s", e.Kind, e.Identifier, e.Relation)
}

// IsWildcard reports whether the entity denotes "every principal of Kind".
func (e Entity) IsWildcard() bool {
	return e.Relation == "" && e.Identifier == Wildcard
}

// Condition gates a tuple's liveness on a named, parameterized boolean
// expression evaluated against a merged request/tuple context.
type Condition struct {
	// Name is the identifier of the condition definition to evaluate.
	Name string
	// Context supplies the condition's parameter values captured at write time.
	Context map[string]any
}

// IsZero reports whether no condition is attached.
func (c Condition) IsZero() bool {
	return c.Name == ""
}

// Tuple is an assertion that a subject has a relation on an object.
//
// When SubjectRelation is non-empty the subject is a userset: "every
// principal that has SubjectRelation on (SubjectType, SubjectID)". When
// SubjectID is the wildcard literal "*" and SubjectRelation is empty, the
// subject is "every principal of SubjectType".
type Tuple struct {
	ObjectType string
	ObjectID   string
	Relation   string

	SubjectType     string
	SubjectID       string
	SubjectRelation string

	Condition Condition
}

// Key is the natural key of a tuple: writes are upserts on this key, and
// two tuples differing only in condition metadata collapse to one row.
type Key struct {
	ObjectType      string
	ObjectID        string
	Relation        string
	SubjectType     string
	SubjectID       string
	SubjectRelation string
}

// Key returns the tuple's natural key.
func (t Tuple) Key() Key {
	return Key{
		ObjectType:      t.ObjectType,
		ObjectID:        t.ObjectID,
		Relation:        t.Relation,
		SubjectType:     t.SubjectType,
		SubjectID:       t.SubjectID,
		SubjectRelation: t.SubjectRelation,
	}
}

// IsUserset reports whether the tuple's subject is a userset reference
// rather than a principal.
func (t Tuple) IsUserset() bool {
	return t.SubjectRelation != ""
}

// IsWildcard reports whether the tuple grants access to every principal of
// SubjectType.
func (t Tuple) IsWildcard() bool {
	return t.SubjectRelation == "" && t.SubjectID == Wildcard
}

// Object returns the tuple's object as an Entity.
func (t Tuple) Object() Entity {
	return Entity{Kind: Kind(t.ObjectType), Identifier: t.ObjectID}
}

// Subject returns the tuple's subject as an Entity.
func (t Tuple) Subject() Entity {
	return Entity{
		Kind:       Kind(t.SubjectType),
		Identifier: t.SubjectID,
		Relation:   Relation(t.SubjectRelation),
	}
}

// SubjectRef identifies a subject without binding it to any particular
// object or relation; returned by Store.ListDirectSubjects.
type SubjectRef struct {
	SubjectType     string
	SubjectID       string
	SubjectRelation string
}

// ParseEntity parses a "kind:id" or "kind:id#relation" string into an Entity.
func ParseEntity(s string) (Entity, error) {
	if s == Wildcard {
		return Entity{}, fmt.Errorf("%w: bare wildcard has no kind: %q", ErrInvalidEntity, s)
	}

	kind, rest, ok := strings.Cut(s, ":")
	if !ok || kind == "" || rest == "" {
		return Entity{}, fmt.Errorf("%w: %q", ErrInvalidEntity, s)
	}

	id, rel, _ := strings.Cut(rest, "#")

	return Entity{Kind: Kind(kind), Identifier: id, Relation: Relation(rel)}, nil
}
