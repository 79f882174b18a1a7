// Original Licenses under Apache-2.0 by the openlane https://github.com/theopenlane
// SPDX-License-Identifier: Apache-2.0

package fga

import (
	"context"
)

// GrantBuilder provides a fluent interface for granting permissions.
// It allows chaining methods to construct a complete grant request.
type GrantBuilder struct {
	client    *Client
	subject   Entity
	relation  Relation
	object    Entity
	condition Condition
}

// Grant starts a new grant builder chain.
// Returns a new GrantBuilder instance.
func (c *Client) Grant() *GrantBuilder {
	return &GrantBuilder{
		client:  c,
		subject: Entity{Kind: "user", Identifier: ""},
	}
}

// User sets the user ID for the grant.
// Returns the GrantBuilder for method chaining.
func (b *GrantBuilder) User(userID string) *GrantBuilder {
	b.subject.Identifier = userID
	b.subject.Kind = Kind("user")

	return b
}

// As sets the user type for the grant.
// Returns the GrantBuilder for method chaining.
func (b *GrantBuilder) As(userType string) *GrantBuilder {
	b.subject.Kind = Kind(userType)
	return b
}

// ViaRelation turns the subject into a userset reference ("kind:id#relation")
// instead of a concrete user, e.g. granting to every member of a workspace.
func (b *GrantBuilder) ViaRelation(relation string) *GrantBuilder {
	b.subject.Relation = Relation(relation)
	return b
}

// When gates the grant on a named condition, evaluated with the given context.
func (b *GrantBuilder) When(conditionName string, context map[string]any) *GrantBuilder {
	b.condition = Condition{Name: conditionName, Context: context}
	return b
}

// Relation sets the relation/capability to grant.
// Returns the GrantBuilder for method chaining.
func (b *GrantBuilder) Relation(relation string) *GrantBuilder {
	b.relation = Relation(relation)
	return b
}

// To sets the object type and ID for the grant.
// Returns the GrantBuilder for method chaining.
func (b *GrantBuilder) To(objectType, objectID string) *GrantBuilder {
	b.object.Kind = Kind(objectType)
	b.object.Identifier = objectID

	return b
}

// Apply executes the grant operation.
// Returns an error if the grant operation fails.
func (b *GrantBuilder) Apply(ctx context.Context) error {
	key := TupleKey{
		Subject:   b.subject,
		Object:    b.object,
		Relation:  b.relation,
		Condition: b.condition,
	}

	return b.client.AddTuple(ctx, key)
}
