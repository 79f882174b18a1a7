package fga

import (
	"context"

	"github.com/kopexa-grc/rebac/tuple"
)

// AccessBuilder provides a fluent interface for building access checks.
// It allows chaining methods to construct a complete access check request.
type AccessBuilder struct {
	client *Client
	ac     *AccessCheck
}

// Has starts a new access check builder chain. The subject defaults to
// type "user"; call Subject to check on behalf of a different kind (e.g.
// a workspace or service account acting as a userset member).
func (c *Client) Has() *AccessBuilder {
	return &AccessBuilder{
		client: c,
		ac:     &AccessCheck{SubjectType: "user"},
	}
}

// User sets the subject ID for the access check.
// Returns the AccessBuilder for method chaining.
func (b *AccessBuilder) User(userID string) *AccessBuilder {
	b.ac.SubjectID = userID
	return b
}

// Subject overrides both the subject type and ID for the access check.
func (b *AccessBuilder) Subject(subjectType, subjectID string) *AccessBuilder {
	b.ac.SubjectType = subjectType
	b.ac.SubjectID = subjectID

	return b
}

// WithContext supplies values referenced by the relation's conditional expressions.
func (b *AccessBuilder) WithContext(values map[string]any) *AccessBuilder {
	b.ac.Context = values
	return b
}

// WithContextualTuples adds tuples visible only for this check.
func (b *AccessBuilder) WithContextualTuples(tuples ...tuple.Tuple) *AccessBuilder {
	b.ac.ContextualTuples = append(b.ac.ContextualTuples, tuples...)
	return b
}

// Capability sets the relation/capability to check for.
// Returns the AccessBuilder for method chaining.
func (b *AccessBuilder) Capability(capability string) *AccessBuilder {
	b.ac.Relation = capability
	return b
}

// In sets the object type and ID for the access check.
// Returns the AccessBuilder for method chaining.
func (b *AccessBuilder) In(objectType string, objectID string) *AccessBuilder {
	b.ac.ObjectType = objectType
	b.ac.ObjectID = objectID

	return b
}

// Check executes the access check and returns whether the access is granted.
// Returns true if access is granted, false otherwise, and any error that occurred.
func (b *AccessBuilder) Check(ctx context.Context) (bool, error) {
	return b.client.checkAccess(ctx, *b.ac)
}
