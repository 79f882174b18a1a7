// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package tuple

// SubjectTypeRef is an entry of RelationConfig.DirectlyAssignableTypes: a
// bare type name ("T"), a wildcard reference ("T:*"), or a type name when
// userset subjects are allowed for the relation.
type SubjectTypeRef string

// WildcardRef returns the "T:*" reference form for the given type.
func WildcardRef(objectType string) SubjectTypeRef {
	return SubjectTypeRef(objectType + ":" + Wildcard)
}

// TupleToUserset is one entry of RelationConfig.TupleToUserset: "find
// tuples on this object with relation Tupleset, and for each such tuple's
// target object, check ComputedUserset".
type TupleToUserset struct {
	Tupleset        string
	ComputedUserset string
}

// IntersectionOperandKind distinguishes the three operand shapes an
// intersection can be built from.
type IntersectionOperandKind string

const (
	// IntersectionDirect restricts resolution to direct/wildcard/userset
	// tuples on the relation itself (no rewrites).
	IntersectionDirect IntersectionOperandKind = "direct"
	// IntersectionComputedUserset requires the named sibling relation.
	IntersectionComputedUserset IntersectionOperandKind = "computed_userset"
	// IntersectionTupleToUserset requires the TTU rewrite to hold.
	IntersectionTupleToUserset IntersectionOperandKind = "tuple_to_userset"
)

// IntersectionOperand is one conjunct of RelationConfig.Intersection.
type IntersectionOperand struct {
	Kind            IntersectionOperandKind
	ComputedUserset string         // set when Kind == IntersectionComputedUserset
	TupleToUserset  TupleToUserset // set when Kind == IntersectionTupleToUserset
}

// RelationConfig is the schema entry for one (object_type, relation) pair.
//
// At most one of {ComputedUserset, Intersection} is meaningfully present;
// ImpliedBy, TupleToUserset, and ExcludedBy compose with any form.
type RelationConfig struct {
	ObjectType string
	Relation   string

	DirectlyAssignableTypes []SubjectTypeRef
	AllowsUsersetSubjects   bool

	ImpliedBy []string

	ComputedUserset string

	TupleToUserset []TupleToUserset

	ExcludedBy string

	Intersection []IntersectionOperand
}

// HasIntersection reports whether the relation is defined as a conjunction.
func (c RelationConfig) HasIntersection() bool {
	return len(c.Intersection) > 0
}

// AllowsSubjectRef reports whether ref is legal for a direct write on this
// relation. A nil/empty DirectlyAssignableTypes means the write path does
// not restrict subject types (no legality list was configured).
func (c RelationConfig) AllowsSubjectRef(ref SubjectTypeRef) bool {
	if len(c.DirectlyAssignableTypes) == 0 {
		return true
	}

	for _, allowed := range c.DirectlyAssignableTypes {
		if allowed == ref {
			return true
		}
	}

	return false
}

// ConditionDefinition names a parameterized CEL boolean expression.
type ConditionDefinition struct {
	Name       string
	Expression string
	Parameters map[string]ParameterType
}

// ParameterType is the declared type of one condition parameter, drawn
// from the closed set the condition evaluator knows how to coerce.
type ParameterType string

// The closed set of parameter types a condition definition may declare.
const (
	ParamString    ParameterType = "string"
	ParamInt       ParameterType = "int"
	ParamUint      ParameterType = "uint"
	ParamBool      ParameterType = "bool"
	ParamDouble    ParameterType = "double"
	ParamDuration  ParameterType = "duration"
	ParamTimestamp ParameterType = "timestamp"
	ParamList      ParameterType = "list"
	ParamMap       ParameterType = "map"
	ParamAny       ParameterType = "any"
)
