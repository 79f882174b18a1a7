// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package condition evaluates the named CEL expressions that gate a
// tuple's liveness. It holds no tuples and no relation semantics of its
// own; it answers exactly one question per call: "is this tuple live
// under this context?"
package condition

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/cel-go/cel"
	"github.com/kopexa-grc/rebac/store"
	"github.com/kopexa-grc/rebac/tuple"
)

// Evaluator compiles and evaluates condition definitions fetched from a
// store.Store, keeping a cache of compiled programs keyed by condition
// name. The cache belongs to the Evaluator instance and lives as long as
// it does; separate Evaluators do not share compiled programs.
type Evaluator struct {
	store store.Store

	mu    sync.RWMutex
	cache map[string]compiled
}

type compiled struct {
	expression string
	program    cel.Program
	parameters map[string]tuple.ParameterType
}

// New constructs a condition evaluator backed by s.
func New(s store.Store) *Evaluator {
	return &Evaluator{
		store: s,
		cache: make(map[string]compiled),
	}
}

// Evaluate reports whether t is live: true if t carries no condition,
// otherwise the result of compiling and running the named condition
// against the merge of requestContext and t.Condition.Context (tuple
// context wins on key collision).
//
// A reference to a variable absent from the merged context is treated
// as a denial, not an error: this matches spec behaviour where missing
// context yields false rather than failure. Any other compile or
// runtime problem is a hard failure (ErrConditionNotFound,
// ErrMalformedExpression, ErrConditionEvaluationError).
func (e *Evaluator) Evaluate(ctx context.Context, t tuple.Tuple, requestContext map[string]any) (bool, error) {
	if t.Condition.IsZero() {
		return true, nil
	}

	c, err := e.programFor(ctx, t.Condition.Name)
	if err != nil {
		return false, err
	}

	merged := mergeContext(requestContext, t.Condition.Context)
	coerce(merged, c.parameters)

	out, _, err := c.program.Eval(merged)
	if err != nil {
		if isMissingAttribute(err) {
			return false, nil
		}

		return false, fmt.Errorf("%w: condition %q: %w", ErrConditionEvaluationError, t.Condition.Name, err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: condition %q did not evaluate to a boolean", ErrConditionEvaluationError, t.Condition.Name)
	}

	return result, nil
}

func (e *Evaluator) programFor(ctx context.Context, name string) (compiled, error) {
	e.mu.RLock()
	c, hit := e.cache[name]
	e.mu.RUnlock()

	if hit {
		return c, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if c, hit := e.cache[name]; hit {
		return c, nil
	}

	def, err := e.store.FindConditionDefinition(ctx, name)
	if err != nil {
		return compiled{}, fmt.Errorf("condition: load definition %q: %w", name, err)
	}

	if def == nil {
		return compiled{}, fmt.Errorf("%w: %q", ErrConditionNotFound, name)
	}

	env, err := envFor(*def)
	if err != nil {
		return compiled{}, fmt.Errorf("%w: condition %q: %w", ErrMalformedExpression, name, err)
	}

	ast, issues := env.Compile(def.Expression)
	if issues != nil && issues.Err() != nil {
		return compiled{}, fmt.Errorf("%w: condition %q: %w", ErrMalformedExpression, name, issues.Err())
	}

	prg, err := env.Program(ast, cel.EvalOptions(cel.OptExhaustiveEval), cel.CostLimit(100000))
	if err != nil {
		return compiled{}, fmt.Errorf("%w: condition %q: %w", ErrMalformedExpression, name, err)
	}

	c = compiled{expression: def.Expression, program: prg, parameters: def.Parameters}
	e.cache[name] = c

	return c, nil
}

// coerce converts string-valued context entries declared as timestamp or
// duration parameters into the temporal types CEL's native adapter
// understands, matching values that arrive from JSON or wire transport
// rather than as already-typed Go values.
func coerce(merged map[string]any, parameters map[string]tuple.ParameterType) {
	for name, kind := range parameters {
		v, ok := merged[name]
		if !ok {
			continue
		}

		s, ok := v.(string)
		if !ok {
			continue
		}

		switch kind {
		case tuple.ParamTimestamp:
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				merged[name] = ts
			}
		case tuple.ParamDuration:
			if d, err := time.ParseDuration(s); err == nil {
				merged[name] = d
			}
		}
	}
}

func envFor(def tuple.ConditionDefinition) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(def.Parameters))
	for name := range def.Parameters {
		opts = append(opts, cel.Variable(name, cel.DynType))
	}

	return cel.NewEnv(opts...)
}

// mergeContext seeds from request, then overlays tuple context (tuple wins).
func mergeContext(requestContext, tupleContext map[string]any) map[string]any {
	merged := make(map[string]any, len(requestContext)+len(tupleContext))

	for k, v := range requestContext {
		merged[k] = v
	}

	for k, v := range tupleContext {
		merged[k] = v
	}

	return merged
}

func isMissingAttribute(err error) bool {
	return strings.Contains(err.Error(), "no such attribute")
}
