// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package fga

import (
	"context"

	"github.com/kopexa-grc/rebac/check"
	"github.com/kopexa-grc/rebac/errors"
	"github.com/kopexa-grc/rebac/store"
	"github.com/kopexa-grc/rebac/tuple"
	"github.com/rs/zerolog/log"
)

// Client is the admin façade over a tuple store: it pre-validates
// writes (spec §4.4) and delegates checks to the recursive evaluator in
// package check. It is safe for concurrent use.
type Client struct {
	store   store.Store
	checker *check.Checker

	maxDepth int
}

// Option configures a Client.
type Option func(*Client)

// WithMaxDepth overrides check.DefaultMaxDepth for every Check issued by this client.
func WithMaxDepth(depth int) Option {
	return func(c *Client) { c.maxDepth = depth }
}

// WithCheckerOptions passes additional options through to the underlying check.Checker.
func WithCheckerOptions(opts ...check.Option) Option {
	return func(c *Client) { c.checker = check.New(c.store, opts...) }
}

// NewClient constructs an admin façade over s.
func NewClient(s store.Store, opts ...Option) *Client {
	c := &Client{store: s, checker: check.New(s)}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddTuple pre-validates and upserts a tuple (spec §4.4):
//  1. the relation must be configured,
//  2. if directly_assignable_types is restricted, the subject reference must be listed,
//  3. userset subjects require allows_userset_subjects.
func (c *Client) AddTuple(ctx context.Context, key TupleKey) error {
	cfg, err := c.store.FindRelationConfig(ctx, string(key.Object.Kind), string(key.Relation))
	if err != nil {
		return err
	}

	if cfg == nil {
		return errors.NewRelationConfigNotFound(string(key.Object.Kind), string(key.Relation))
	}

	subjectRef := directSubjectRef(key.Subject)
	if !cfg.AllowsSubjectRef(subjectRef) {
		return errors.NewInvalidSubjectType(string(key.Object.Kind), string(key.Relation), string(subjectRef))
	}

	if key.Subject.Relation != "" && !cfg.AllowsUsersetSubjects {
		return errors.NewUsersetNotAllowed(string(key.Object.Kind), string(key.Relation), key.Subject.String())
	}

	t := key.toTuple()
	if err := c.store.InsertTuple(ctx, t); err != nil {
		log.Error().Err(err).Str("tuple", t.Key().ObjectType+":"+t.Key().ObjectID+"#"+t.Key().Relation).Msg("fga: insert tuple failed")
		return &WriteError{User: key.Subject.String(), Relation: string(key.Relation), Object: key.Object.String(), Operation: "write", Cause: err}
	}

	return nil
}

// RemoveTuple deletes a tuple, reporting whether a row was removed.
func (c *Client) RemoveTuple(ctx context.Context, key TupleKey) (bool, error) {
	return c.store.DeleteTuple(ctx, key.toTuple().Key())
}

// WriteRelationConfig passes through to the store.
func (c *Client) WriteRelationConfig(ctx context.Context, cfg tuple.RelationConfig) error {
	return c.store.UpsertRelationConfig(ctx, cfg)
}

// DeleteRelationConfig passes through to the store.
func (c *Client) DeleteRelationConfig(ctx context.Context, objectType, relation string) (bool, error) {
	return c.store.DeleteRelationConfig(ctx, objectType, relation)
}

// WriteConditionDefinition passes through to the store.
func (c *Client) WriteConditionDefinition(ctx context.Context, def tuple.ConditionDefinition) error {
	return c.store.UpsertConditionDefinition(ctx, def)
}

// DeleteConditionDefinition passes through to the store.
func (c *Client) DeleteConditionDefinition(ctx context.Context, name string) (bool, error) {
	return c.store.DeleteConditionDefinition(ctx, name)
}

func directSubjectRef(subject Entity) tuple.SubjectTypeRef {
	if subject.Identifier == tuple.Wildcard {
		return tuple.WildcardRef(string(subject.Kind))
	}

	return tuple.SubjectTypeRef(subject.Kind)
}
