// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package condition_test

import (
	"testing"
	"time"

	"github.com/kopexa-grc/rebac/condition"
	"github.com/kopexa-grc/rebac/store/memory"
	"github.com/kopexa-grc/rebac/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func temporalAccessCondition() tuple.ConditionDefinition {
	return tuple.ConditionDefinition{
		Name:       "temporal_access",
		Expression: "current_time < grant_time + grant_duration",
		Parameters: map[string]tuple.ParameterType{
			"grant_time":     tuple.ParamTimestamp,
			"grant_duration": tuple.ParamDuration,
			"current_time":   tuple.ParamTimestamp,
		},
	}
}

func TestEvaluateNoConditionIsLive(t *testing.T) {
	ctx := t.Context()
	ev := condition.New(memory.New())

	live, err := ev.Evaluate(ctx, tuple.Tuple{ObjectType: "doc", ObjectID: "1", Relation: "viewer", SubjectType: "user", SubjectID: "alice"}, nil)
	require.NoError(t, err)
	assert.True(t, live)
}

func TestEvaluateConditionalExpiry(t *testing.T) {
	ctx := t.Context()
	s := memory.New()
	require.NoError(t, s.UpsertConditionDefinition(ctx, temporalAccessCondition()))

	ev := condition.New(s)

	grantTime := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	tk := tuple.Tuple{
		ObjectType: "doc", ObjectID: "1", Relation: "viewer",
		SubjectType: "user", SubjectID: "alice",
		Condition: tuple.Condition{
			Name: "temporal_access",
			Context: map[string]any{
				"grant_time":     grantTime,
				"grant_duration": time.Hour,
			},
		},
	}

	withinWindow := map[string]any{"current_time": grantTime.Add(10 * time.Minute)}
	live, err := ev.Evaluate(ctx, tk, withinWindow)
	require.NoError(t, err)
	assert.True(t, live)

	afterWindow := map[string]any{"current_time": grantTime.Add(2 * time.Hour)}
	live, err = ev.Evaluate(ctx, tk, afterWindow)
	require.NoError(t, err)
	assert.False(t, live)
}

func TestEvaluateMissingVariableIsDenialNotError(t *testing.T) {
	ctx := t.Context()
	s := memory.New()
	require.NoError(t, s.UpsertConditionDefinition(ctx, temporalAccessCondition()))

	ev := condition.New(s)

	tk := tuple.Tuple{
		ObjectType: "doc", ObjectID: "1", Relation: "viewer",
		SubjectType: "user", SubjectID: "alice",
		Condition: tuple.Condition{
			Name: "temporal_access",
			Context: map[string]any{
				"grant_time":     time.Now(),
				"grant_duration": time.Hour,
			},
		},
	}

	live, err := ev.Evaluate(ctx, tk, nil)
	require.NoError(t, err, "a missing context variable must deny, not error")
	assert.False(t, live)
}

func TestEvaluateUnknownConditionIsHardFailure(t *testing.T) {
	ctx := t.Context()
	ev := condition.New(memory.New())

	tk := tuple.Tuple{
		ObjectType: "doc", ObjectID: "1", Relation: "viewer",
		SubjectType: "user", SubjectID: "alice",
		Condition: tuple.Condition{Name: "does_not_exist"},
	}

	_, err := ev.Evaluate(ctx, tk, nil)
	require.ErrorIs(t, err, condition.ErrConditionNotFound)
}

func TestEvaluateMalformedExpressionIsHardFailure(t *testing.T) {
	ctx := t.Context()
	s := memory.New()
	require.NoError(t, s.UpsertConditionDefinition(ctx, tuple.ConditionDefinition{
		Name:       "broken",
		Expression: "not ) valid (",
	}))

	ev := condition.New(s)

	tk := tuple.Tuple{
		ObjectType: "doc", ObjectID: "1", Relation: "viewer",
		SubjectType: "user", SubjectID: "alice",
		Condition: tuple.Condition{Name: "broken"},
	}

	_, err := ev.Evaluate(ctx, tk, nil)
	require.ErrorIs(t, err, condition.ErrMalformedExpression)
}

func TestTupleContextOverlaysRequestContext(t *testing.T) {
	ctx := t.Context()
	s := memory.New()
	require.NoError(t, s.UpsertConditionDefinition(ctx, tuple.ConditionDefinition{
		Name:       "matches",
		Expression: "value == 'tuple'",
		Parameters: map[string]tuple.ParameterType{"value": tuple.ParamString},
	}))

	ev := condition.New(s)

	tk := tuple.Tuple{
		ObjectType: "doc", ObjectID: "1", Relation: "viewer",
		SubjectType: "user", SubjectID: "alice",
		Condition: tuple.Condition{Name: "matches", Context: map[string]any{"value": "tuple"}},
	}

	live, err := ev.Evaluate(ctx, tk, map[string]any{"value": "request"})
	require.NoError(t, err)
	assert.True(t, live, "tuple context must win over request context on key collision")
}
