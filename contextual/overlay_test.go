// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package contextual_test

import (
	"testing"

	"github.com/kopexa-grc/rebac/contextual"
	"github.com/kopexa-grc/rebac/store/memory"
	"github.com/kopexa-grc/rebac/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDirectTupleSeesContextualBeforeStored(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	stored := tuple.Tuple{ObjectType: "doc", ObjectID: "1", Relation: "viewer", SubjectType: "user", SubjectID: "bob"}
	require.NoError(t, s.InsertTuple(ctx, stored))

	ephemeral := tuple.Tuple{ObjectType: "doc", ObjectID: "1", Relation: "viewer", SubjectType: "user", SubjectID: "anne"}
	o := contextual.New(s, []tuple.Tuple{ephemeral})

	got, err := o.FindDirectTuple(ctx, "doc", "1", "viewer", "user", "anne")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ephemeral, *got)

	gotStored, err := o.FindDirectTuple(ctx, "doc", "1", "viewer", "user", "bob")
	require.NoError(t, err)
	require.NotNil(t, gotStored)
	assert.Equal(t, stored, *gotStored)
}

func TestOverlayNeverMutatesUnderlyingStore(t *testing.T) {
	ctx := t.Context()
	s := memory.New()

	ephemeral := tuple.Tuple{ObjectType: "org", ObjectID: "A", Relation: "user_in_context", SubjectType: "user", SubjectID: "anne"}
	o := contextual.New(s, []tuple.Tuple{ephemeral})

	got, err := o.FindDirectTuple(ctx, "org", "A", "user_in_context", "user", "anne")
	require.NoError(t, err)
	require.NotNil(t, got)

	direct, err := s.FindDirectTuple(ctx, "org", "A", "user_in_context", "user", "anne")
	require.NoError(t, err)
	assert.Nil(t, direct, "contextual tuples must never leak into the wrapped store")
}

func TestEmptyOverlayIsTransparent(t *testing.T) {
	ctx := t.Context()
	s := memory.New()
	require.NoError(t, s.InsertTuple(ctx, tuple.Tuple{ObjectType: "doc", ObjectID: "1", Relation: "viewer", SubjectType: "user", SubjectID: "bob"}))

	o := contextual.New(s, nil)

	got, err := o.FindDirectTuple(ctx, "doc", "1", "viewer", "user", "bob")
	require.NoError(t, err)
	require.NotNil(t, got)
}
