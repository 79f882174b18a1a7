// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package check implements the recursive, depth-bounded resolver that
// composes direct assignment, usersets, relation inheritance, computed
// usersets, tuple-to-userset rewrites, intersection, exclusion, and
// conditional expressions into a single boolean decision.
package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/kopexa-grc/rebac/condition"
	"github.com/kopexa-grc/rebac/contextual"
	"github.com/kopexa-grc/rebac/ctxutil"
	rebacerrors "github.com/kopexa-grc/rebac/errors"
	"github.com/kopexa-grc/rebac/store"
	"github.com/kopexa-grc/rebac/tuple"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CorrelationID groups the debug trace of many related checks (such as
// the per-candidate fan-out behind fga.Client.ListObjects) under one
// identifier. A caller sets it on the context with ctxutil.With; Check
// logs it on every resolution step when present.
type CorrelationID string

// Checker resolves check requests against a store.Store.
type Checker struct {
	store      store.Store
	conditions *condition.Evaluator

	metrics *Metrics
	tracer  Tracer
	logger  zerolog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithMetrics attaches a prometheus-backed outcome/depth recorder.
func WithMetrics(m *Metrics) Option {
	return func(c *Checker) { c.metrics = m }
}

// WithTracer attaches a per-resolution-step hook.
func WithTracer(t Tracer) Option {
	return func(c *Checker) { c.tracer = t }
}

// WithLogger overrides the default package logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// New constructs a Checker backed by s.
func New(s store.Store, opts ...Option) *Checker {
	c := &Checker{
		store:      s,
		conditions: condition.New(s),
		logger:     log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check resolves req against the configured store, returning true iff
// the subject holds the relation on the object under req's context.
//
// Hard failures (missing condition definitions, malformed expressions,
// invalid stored data) are returned as errors; everything else the
// algorithm tolerates (missing relation configs, false conditions,
// exhausted depth) contributes to a negative boolean instead.
func (c *Checker) Check(ctx context.Context, req Request) (bool, error) {
	var s store.Store = c.store

	if len(req.ContextualTuples) > 0 {
		s = contextual.New(c.store, req.ContextualTuples)
	}

	// The overlay only adds tuples; condition definitions still come from
	// the underlying store, so the shared evaluator's compiled-program
	// cache applies on the contextual path too.
	allowed, err := c.resolve(ctx, s, c.conditions, req.root(), req.Context, req.maxDepth(), 0)
	if err != nil {
		return false, err
	}

	c.metrics.recordOutcome(allowed)

	return allowed, nil
}

// resolve is the recursive step: Steps A-E of the check algorithm.
func (c *Checker) resolve(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, maxDepth, depth int) (bool, error) {
	if depth > maxDepth {
		return false, nil
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.trace(ctx, n, depth)
	c.metrics.recordDepth(depth)

	cfg, err := s.FindRelationConfig(ctx, n.objectType, n.relation)
	if err != nil {
		return false, fmt.Errorf("check: load relation config %s.%s: %w", n.objectType, n.relation, err)
	}

	tentative, err := c.resolveSteps(ctx, s, conditions, n, reqContext, cfg, maxDepth, depth)
	if err != nil {
		return false, err
	}

	if !tentative {
		return false, nil
	}

	if cfg != nil && cfg.ExcludedBy != "" {
		excluded, err := c.resolve(ctx, s, conditions, n.withRelation(cfg.ExcludedBy), reqContext, maxDepth, depth+1)
		if err != nil {
			return false, err
		}

		if excluded {
			c.logger.Debug().
				Str("object_type", n.objectType).Str("object_id", n.objectID).
				Str("relation", n.relation).Str("excluded_by", cfg.ExcludedBy).
				Msg("check: tentative allow reversed by exclusion")

			return false, nil
		}
	}

	return true, nil
}

// resolveSteps runs Steps A-D in order, short-circuiting on the first truth.
// When the relation is an intersection, direct tuples only count through
// its "direct" operand, so Steps A-C do not grant on their own.
func (c *Checker) resolveSteps(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, cfg *tuple.RelationConfig, maxDepth, depth int) (bool, error) {
	if cfg == nil || !cfg.HasIntersection() {
		ok, err := c.stepsABC(ctx, s, conditions, n, reqContext, maxDepth, depth)
		if err != nil || ok {
			return ok, err
		}
	}

	if cfg == nil {
		return false, nil
	}

	return c.stepD(ctx, s, conditions, n, reqContext, cfg, maxDepth, depth)
}

// stepsABC evaluates direct tuple, wildcard tuple, and userset tuples: the
// rewrite-free core also used as the "direct" intersection operand.
func (c *Checker) stepsABC(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, maxDepth, depth int) (bool, error) {
	// Step A: direct tuple.
	direct, err := s.FindDirectTuple(ctx, n.objectType, n.objectID, n.relation, n.subjectType, n.subjectID)
	if err != nil {
		return false, fmt.Errorf("check: find direct tuple: %w", err)
	}

	if direct != nil {
		live, err := conditions.Evaluate(ctx, *direct, reqContext)
		if err != nil {
			return false, c.hardFailure(*direct, err)
		}

		if live {
			return true, nil
		}
	}

	// Step B: wildcard tuple.
	wildcard, err := s.FindDirectTuple(ctx, n.objectType, n.objectID, n.relation, n.subjectType, tuple.Wildcard)
	if err != nil {
		return false, fmt.Errorf("check: find wildcard tuple: %w", err)
	}

	if wildcard != nil {
		live, err := conditions.Evaluate(ctx, *wildcard, reqContext)
		if err != nil {
			return false, c.hardFailure(*wildcard, err)
		}

		if live {
			return true, nil
		}
	}

	// Step C: userset tuples.
	usersets, err := s.FindUsersetTuples(ctx, n.objectType, n.objectID, n.relation)
	if err != nil {
		return false, fmt.Errorf("check: find userset tuples: %w", err)
	}

	for _, t := range usersets {
		live, err := conditions.Evaluate(ctx, t, reqContext)
		if err != nil {
			return false, c.hardFailure(t, err)
		}

		if !live {
			continue
		}

		target := node{
			objectType:  t.SubjectType,
			objectID:    t.SubjectID,
			relation:    t.SubjectRelation,
			subjectType: n.subjectType,
			subjectID:   n.subjectID,
		}

		ok, err := c.resolve(ctx, s, conditions, target, reqContext, maxDepth, depth+1)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

func (c *Checker) hardFailure(t tuple.Tuple, err error) error {
	c.logger.Error().
		Err(err).
		Str("object_type", t.ObjectType).Str("object_id", t.ObjectID).
		Str("relation", t.Relation).Str("condition_name", t.Condition.Name).
		Msg("check: condition evaluation failed")

	if errors.Is(err, condition.ErrConditionNotFound) {
		return rebacerrors.NewConditionNotFound(t.Condition.Name)
	}

	return rebacerrors.NewConditionEvaluationError(t.Condition.Name, err)
}

func (c *Checker) trace(ctx context.Context, n node, depth int) {
	if c.tracer != nil {
		c.tracer.OnResolve(n.objectType, n.objectID, n.relation, n.subjectType, n.subjectID, depth)
	}

	event := c.logger.Debug().
		Str("object_type", n.objectType).Str("object_id", n.objectID).
		Str("relation", n.relation).
		Str("subject_type", n.subjectType).Str("subject_id", n.subjectID).
		Int("depth", depth)

	if id, ok := ctxutil.From[CorrelationID](ctx); ok {
		event = event.Str("correlation_id", string(id))
	}

	event.Msg("check: resolving")
}
