// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package storemock is a mockgen-style mock of store.Store, hand-maintained
// in the shape `mockgen -destination=storemock.go -package=storemock
// github.com/kopexa-grc/rebac/store Store` would produce, for tests that
// need to inject store failures the in-memory adapter cannot reproduce
// (connection errors, malformed stored data) without a real database.
package storemock

import (
	"context"
	"reflect"

	"github.com/kopexa-grc/rebac/tuple"
	"go.uber.org/mock/gomock"
)

// MockStore is a mock of the store.Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

func (m *MockStore) FindDirectTuple(ctx context.Context, objectType, objectID, relation, subjectType, subjectID string) (*tuple.Tuple, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "FindDirectTuple", ctx, objectType, objectID, relation, subjectType, subjectID)
	ret0, _ := ret[0].(*tuple.Tuple)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) FindDirectTuple(ctx, objectType, objectID, relation, subjectType, subjectID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindDirectTuple",
		reflect.TypeOf((*MockStore)(nil).FindDirectTuple), ctx, objectType, objectID, relation, subjectType, subjectID)
}

func (m *MockStore) FindUsersetTuples(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "FindUsersetTuples", ctx, objectType, objectID, relation)
	ret0, _ := ret[0].([]tuple.Tuple)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) FindUsersetTuples(ctx, objectType, objectID, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindUsersetTuples",
		reflect.TypeOf((*MockStore)(nil).FindUsersetTuples), ctx, objectType, objectID, relation)
}

func (m *MockStore) FindTuplesByRelation(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "FindTuplesByRelation", ctx, objectType, objectID, relation)
	ret0, _ := ret[0].([]tuple.Tuple)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) FindTuplesByRelation(ctx, objectType, objectID, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindTuplesByRelation",
		reflect.TypeOf((*MockStore)(nil).FindTuplesByRelation), ctx, objectType, objectID, relation)
}

func (m *MockStore) FindRelationConfig(ctx context.Context, objectType, relation string) (*tuple.RelationConfig, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "FindRelationConfig", ctx, objectType, relation)
	ret0, _ := ret[0].(*tuple.RelationConfig)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) FindRelationConfig(ctx, objectType, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindRelationConfig",
		reflect.TypeOf((*MockStore)(nil).FindRelationConfig), ctx, objectType, relation)
}

func (m *MockStore) FindConditionDefinition(ctx context.Context, name string) (*tuple.ConditionDefinition, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "FindConditionDefinition", ctx, name)
	ret0, _ := ret[0].(*tuple.ConditionDefinition)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) FindConditionDefinition(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindConditionDefinition",
		reflect.TypeOf((*MockStore)(nil).FindConditionDefinition), ctx, name)
}

func (m *MockStore) ListCandidateObjectIDs(ctx context.Context, objectType string) ([]string, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "ListCandidateObjectIDs", ctx, objectType)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) ListCandidateObjectIDs(ctx, objectType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCandidateObjectIDs",
		reflect.TypeOf((*MockStore)(nil).ListCandidateObjectIDs), ctx, objectType)
}

func (m *MockStore) ListDirectSubjects(ctx context.Context, objectType, objectID, relation string) ([]tuple.SubjectRef, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "ListDirectSubjects", ctx, objectType, objectID, relation)
	ret0, _ := ret[0].([]tuple.SubjectRef)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) ListDirectSubjects(ctx, objectType, objectID, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListDirectSubjects",
		reflect.TypeOf((*MockStore)(nil).ListDirectSubjects), ctx, objectType, objectID, relation)
}

func (m *MockStore) InsertTuple(ctx context.Context, t tuple.Tuple) error {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "InsertTuple", ctx, t)
	ret0, _ := ret[0].(error)

	return ret0
}

func (mr *MockStoreMockRecorder) InsertTuple(ctx, t any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertTuple",
		reflect.TypeOf((*MockStore)(nil).InsertTuple), ctx, t)
}

func (m *MockStore) DeleteTuple(ctx context.Context, key tuple.Key) (bool, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "DeleteTuple", ctx, key)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) DeleteTuple(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTuple",
		reflect.TypeOf((*MockStore)(nil).DeleteTuple), ctx, key)
}

func (m *MockStore) UpsertRelationConfig(ctx context.Context, cfg tuple.RelationConfig) error {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "UpsertRelationConfig", ctx, cfg)
	ret0, _ := ret[0].(error)

	return ret0
}

func (mr *MockStoreMockRecorder) UpsertRelationConfig(ctx, cfg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertRelationConfig",
		reflect.TypeOf((*MockStore)(nil).UpsertRelationConfig), ctx, cfg)
}

func (m *MockStore) DeleteRelationConfig(ctx context.Context, objectType, relation string) (bool, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "DeleteRelationConfig", ctx, objectType, relation)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) DeleteRelationConfig(ctx, objectType, relation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRelationConfig",
		reflect.TypeOf((*MockStore)(nil).DeleteRelationConfig), ctx, objectType, relation)
}

func (m *MockStore) UpsertConditionDefinition(ctx context.Context, def tuple.ConditionDefinition) error {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "UpsertConditionDefinition", ctx, def)
	ret0, _ := ret[0].(error)

	return ret0
}

func (mr *MockStoreMockRecorder) UpsertConditionDefinition(ctx, def any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertConditionDefinition",
		reflect.TypeOf((*MockStore)(nil).UpsertConditionDefinition), ctx, def)
}

func (m *MockStore) DeleteConditionDefinition(ctx context.Context, name string) (bool, error) {
	m.ctrl.T.Helper()

	ret := m.ctrl.Call(m, "DeleteConditionDefinition", ctx, name)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)

	return ret0, ret1
}

func (mr *MockStoreMockRecorder) DeleteConditionDefinition(ctx, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteConditionDefinition",
		reflect.TypeOf((*MockStore)(nil).DeleteConditionDefinition), ctx, name)
}
