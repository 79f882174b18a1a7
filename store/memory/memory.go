// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package memory is the reference in-memory store.Store adapter: a
// sync.RWMutex-guarded set of maps. It is the default backing store for
// tests and the CLI; store/postgres is the persisted-shape reference
// adapter for durable deployments.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kopexa-grc/rebac/tuple"
)

// Store is a concurrency-safe, process-local store.Store implementation.
type Store struct {
	mu sync.RWMutex

	tuples map[tuple.Key]storedTuple
	// byObject indexes tuple keys by (object_type, object_id, relation) for
	// the enumeration reads (userset, by-relation, direct-subjects).
	byObject map[objectRelation]map[tuple.Key]struct{}
	// byObjectType indexes distinct object ids per object type for ListCandidateObjectIDs.
	byObjectType map[string]map[string]struct{}

	configs    map[relationID]tuple.RelationConfig
	conditions map[string]tuple.ConditionDefinition
}

type objectRelation struct {
	objectType string
	objectID   string
	relation   string
}

type relationID struct {
	objectType string
	relation   string
}

type storedTuple struct {
	id uuid.UUID
	t  tuple.Tuple
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		tuples:       make(map[tuple.Key]storedTuple),
		byObject:     make(map[objectRelation]map[tuple.Key]struct{}),
		byObjectType: make(map[string]map[string]struct{}),
		configs:      make(map[relationID]tuple.RelationConfig),
		conditions:   make(map[string]tuple.ConditionDefinition),
	}
}

func orOf(t tuple.Tuple) objectRelation {
	return objectRelation{objectType: t.ObjectType, objectID: t.ObjectID, relation: t.Relation}
}

// FindDirectTuple implements store.Store.
func (s *Store) FindDirectTuple(_ context.Context, objectType, objectID, relation, subjectType, subjectID string) (*tuple.Tuple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := tuple.Key{
		ObjectType: objectType, ObjectID: objectID, Relation: relation,
		SubjectType: subjectType, SubjectID: subjectID,
	}

	st, ok := s.tuples[key]
	if !ok {
		return nil, nil
	}

	t := st.t

	return &t, nil
}

// FindUsersetTuples implements store.Store.
func (s *Store) FindUsersetTuples(_ context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []tuple.Tuple

	for key := range s.byObject[objectRelation{objectType, objectID, relation}] {
		st := s.tuples[key]
		if st.t.IsUserset() {
			out = append(out, st.t)
		}
	}

	return out, nil
}

// FindTuplesByRelation implements store.Store.
func (s *Store) FindTuplesByRelation(_ context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []tuple.Tuple

	for key := range s.byObject[objectRelation{objectType, objectID, relation}] {
		out = append(out, s.tuples[key].t)
	}

	return out, nil
}

// FindRelationConfig implements store.Store.
func (s *Store) FindRelationConfig(_ context.Context, objectType, relation string) (*tuple.RelationConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[relationID{objectType, relation}]
	if !ok {
		return nil, nil
	}

	return &cfg, nil
}

// FindConditionDefinition implements store.Store.
func (s *Store) FindConditionDefinition(_ context.Context, name string) (*tuple.ConditionDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.conditions[name]
	if !ok {
		return nil, nil
	}

	return &def, nil
}

// ListCandidateObjectIDs implements store.Store.
func (s *Store) ListCandidateObjectIDs(_ context.Context, objectType string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.byObjectType[objectType]))
	for id := range s.byObjectType[objectType] {
		ids = append(ids, id)
	}

	return ids, nil
}

// ListDirectSubjects implements store.Store.
func (s *Store) ListDirectSubjects(_ context.Context, objectType, objectID, relation string) ([]tuple.SubjectRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []tuple.SubjectRef

	for key := range s.byObject[objectRelation{objectType, objectID, relation}] {
		t := s.tuples[key].t
		out = append(out, tuple.SubjectRef{
			SubjectType:     t.SubjectType,
			SubjectID:       t.SubjectID,
			SubjectRelation: t.SubjectRelation,
		})
	}

	return out, nil
}

// InsertTuple implements store.Store.
func (s *Store) InsertTuple(_ context.Context, t tuple.Tuple) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := t.Key()
	if existing, ok := s.tuples[key]; ok {
		s.tuples[key] = storedTuple{id: existing.id, t: t}
		return nil
	}

	s.tuples[key] = storedTuple{id: uuid.New(), t: t}

	or := orOf(t)
	if s.byObject[or] == nil {
		s.byObject[or] = make(map[tuple.Key]struct{})
	}

	s.byObject[or][key] = struct{}{}

	if s.byObjectType[t.ObjectType] == nil {
		s.byObjectType[t.ObjectType] = make(map[string]struct{})
	}

	s.byObjectType[t.ObjectType][t.ObjectID] = struct{}{}

	return nil
}

// DeleteTuple implements store.Store.
func (s *Store) DeleteTuple(_ context.Context, key tuple.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tuples[key]; !ok {
		return false, nil
	}

	delete(s.tuples, key)

	or := objectRelation{objectType: key.ObjectType, objectID: key.ObjectID, relation: key.Relation}
	delete(s.byObject[or], key)

	if len(s.byObject[or]) == 0 {
		delete(s.byObject, or)
	}

	return true, nil
}

// UpsertRelationConfig implements store.Store.
func (s *Store) UpsertRelationConfig(_ context.Context, cfg tuple.RelationConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.configs[relationID{cfg.ObjectType, cfg.Relation}] = cfg

	return nil
}

// DeleteRelationConfig implements store.Store.
func (s *Store) DeleteRelationConfig(_ context.Context, objectType, relation string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := relationID{objectType, relation}
	if _, ok := s.configs[id]; !ok {
		return false, nil
	}

	delete(s.configs, id)

	return true, nil
}

// UpsertConditionDefinition implements store.Store.
func (s *Store) UpsertConditionDefinition(_ context.Context, def tuple.ConditionDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conditions[def.Name] = def

	return nil
}

// DeleteConditionDefinition implements store.Store.
func (s *Store) DeleteConditionDefinition(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conditions[name]; !ok {
		return false, nil
	}

	delete(s.conditions, name)

	return true, nil
}
