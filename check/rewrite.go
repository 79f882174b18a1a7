// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package check

import (
	"context"
	"fmt"

	"github.com/kopexa-grc/rebac/condition"
	"github.com/kopexa-grc/rebac/store"
	"github.com/kopexa-grc/rebac/tuple"
)

// stepD evaluates the relation configuration rewrites, in order:
// implied-by union, computed userset, tuple-to-userset, intersection.
func (c *Checker) stepD(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, cfg *tuple.RelationConfig, maxDepth, depth int) (bool, error) {
	// D.1: implied-by (union of sibling relations).
	for _, sibling := range cfg.ImpliedBy {
		ok, err := c.resolve(ctx, s, conditions, n.withRelation(sibling), reqContext, maxDepth, depth+1)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	// D.2: computed userset (this relation equals R' on the same object).
	if cfg.ComputedUserset != "" {
		ok, err := c.resolve(ctx, s, conditions, n.withRelation(cfg.ComputedUserset), reqContext, maxDepth, depth+1)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	// D.3: tuple-to-userset.
	for _, ttu := range cfg.TupleToUserset {
		ok, err := c.evalTupleToUserset(ctx, s, conditions, n, reqContext, ttu, maxDepth, depth)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	// D.4: intersection.
	if cfg.HasIntersection() {
		return c.evalIntersection(ctx, s, conditions, n, reqContext, cfg, maxDepth, depth)
	}

	return false, nil
}

// evalTupleToUserset enumerates tuples on (n.objectType, n.objectID,
// ttu.Tupleset) across all subjects and conditions, and for each live
// one recursively checks ttu.ComputedUserset on the tupleset tuple's
// target object. Any hit returns true.
func (c *Checker) evalTupleToUserset(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, ttu tuple.TupleToUserset, maxDepth, depth int) (bool, error) {
	tuplesetTuples, err := s.FindTuplesByRelation(ctx, n.objectType, n.objectID, ttu.Tupleset)
	if err != nil {
		return false, fmt.Errorf("check: find tupleset tuples %s.%s: %w", n.objectType, ttu.Tupleset, err)
	}

	for _, t := range tuplesetTuples {
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
			relation:    ttu.ComputedUserset,
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

// evalIntersection requires every operand to hold, short-circuiting on
// the first falsehood.
func (c *Checker) evalIntersection(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, cfg *tuple.RelationConfig, maxDepth, depth int) (bool, error) {
	for _, operand := range cfg.Intersection {
		ok, err := c.evalIntersectionOperand(ctx, s, conditions, n, reqContext, operand, maxDepth, depth)
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func (c *Checker) evalIntersectionOperand(ctx context.Context, s store.Store, conditions *condition.Evaluator, n node, reqContext map[string]any, operand tuple.IntersectionOperand, maxDepth, depth int) (bool, error) {
	switch operand.Kind {
	case tuple.IntersectionDirect:
		return c.stepsABC(ctx, s, conditions, n, reqContext, maxDepth, depth)
	case tuple.IntersectionComputedUserset:
		return c.resolve(ctx, s, conditions, n.withRelation(operand.ComputedUserset), reqContext, maxDepth, depth+1)
	case tuple.IntersectionTupleToUserset:
		return c.evalTupleToUserset(ctx, s, conditions, n, reqContext, operand.TupleToUserset, maxDepth, depth)
	default:
		return false, fmt.Errorf("check: unknown intersection operand kind %q", operand.Kind)
	}
}
