// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package postgres is the persisted-shape reference adapter for durable
// deployments: it implements store.Store over a *sql.DB using the
// lib/pq driver, with the natural tuple key as the table's primary key
// so writes are upserts by construction.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/kopexa-grc/rebac/errors"
	"github.com/kopexa-grc/rebac/tuple"
)

// Store implements store.Store over a PostgreSQL database.
type Store struct {
	db *sql.DB
}

// New wraps an already-open database handle. Run schema.sql against the
// target database before first use.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens a new connection pool via lib/pq and wraps it.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	return New(db), nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) FindDirectTuple(ctx context.Context, objectType, objectID, relation, subjectType, subjectID string) (*tuple.Tuple, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT object_type, object_id, relation, subject_type, subject_id, subject_relation, condition_name, condition_context
		FROM rebac_tuples
		WHERE object_type = $1 AND object_id = $2 AND relation = $3 AND subject_type = $4 AND subject_id = $5 AND subject_relation = ''`,
		objectType, objectID, relation, subjectType, subjectID)

	t, err := scanTuple(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, errors.NewInvalidStoredData(objectType, relation, err)
	}

	return t, nil
}

func (s *Store) FindUsersetTuples(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT object_type, object_id, relation, subject_type, subject_id, subject_relation, condition_name, condition_context
		FROM rebac_tuples
		WHERE object_type = $1 AND object_id = $2 AND relation = $3 AND subject_relation <> ''`,
		objectType, objectID, relation)
	if err != nil {
		return nil, fmt.Errorf("postgres: find userset tuples: %w", err)
	}
	defer rows.Close()

	return scanTuples(rows, objectType, relation)
}

func (s *Store) FindTuplesByRelation(ctx context.Context, objectType, objectID, relation string) ([]tuple.Tuple, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT object_type, object_id, relation, subject_type, subject_id, subject_relation, condition_name, condition_context
		FROM rebac_tuples
		WHERE object_type = $1 AND object_id = $2 AND relation = $3`,
		objectType, objectID, relation)
	if err != nil {
		return nil, fmt.Errorf("postgres: find tuples by relation: %w", err)
	}
	defer rows.Close()

	return scanTuples(rows, objectType, relation)
}

func (s *Store) ListCandidateObjectIDs(ctx context.Context, objectType string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT object_id FROM rebac_tuples WHERE object_type = $1`, objectType)
	if err != nil {
		return nil, fmt.Errorf("postgres: list candidate object ids: %w", err)
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres: scan candidate object id: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) ListDirectSubjects(ctx context.Context, objectType, objectID, relation string) ([]tuple.SubjectRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject_type, subject_id, subject_relation FROM rebac_tuples
		WHERE object_type = $1 AND object_id = $2 AND relation = $3`,
		objectType, objectID, relation)
	if err != nil {
		return nil, fmt.Errorf("postgres: list direct subjects: %w", err)
	}
	defer rows.Close()

	var refs []tuple.SubjectRef

	for rows.Next() {
		var ref tuple.SubjectRef
		if err := rows.Scan(&ref.SubjectType, &ref.SubjectID, &ref.SubjectRelation); err != nil {
			return nil, fmt.Errorf("postgres: scan subject ref: %w", err)
		}

		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

func (s *Store) InsertTuple(ctx context.Context, t tuple.Tuple) error {
	var conditionContext []byte

	if !t.Condition.IsZero() {
		b, err := json.Marshal(t.Condition.Context)
		if err != nil {
			return fmt.Errorf("postgres: marshal condition context: %w", err)
		}

		conditionContext = b
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rebac_tuples (object_type, object_id, relation, subject_type, subject_id, subject_relation, condition_name, condition_context)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (object_type, object_id, relation, subject_type, subject_id, subject_relation)
		DO UPDATE SET condition_name = EXCLUDED.condition_name, condition_context = EXCLUDED.condition_context`,
		t.ObjectType, t.ObjectID, t.Relation, t.SubjectType, t.SubjectID, t.SubjectRelation, t.Condition.Name, conditionContext)
	if err != nil {
		return fmt.Errorf("postgres: insert tuple: %w", err)
	}

	return nil
}

func (s *Store) DeleteTuple(ctx context.Context, key tuple.Key) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM rebac_tuples
		WHERE object_type = $1 AND object_id = $2 AND relation = $3 AND subject_type = $4 AND subject_id = $5 AND subject_relation = $6`,
		key.ObjectType, key.ObjectID, key.Relation, key.SubjectType, key.SubjectID, key.SubjectRelation)
	if err != nil {
		return false, fmt.Errorf("postgres: delete tuple: %w", err)
	}

	return rowsAffected(res)
}

func (s *Store) FindRelationConfig(ctx context.Context, objectType, relation string) (*tuple.RelationConfig, error) {
	var raw []byte

	err := s.db.QueryRowContext(ctx, `SELECT config FROM rebac_relation_configs WHERE object_type = $1 AND relation = $2`, objectType, relation).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("postgres: find relation config: %w", err)
	}

	var cfg tuple.RelationConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.NewInvalidStoredData(objectType, relation, err)
	}

	return &cfg, nil
}

func (s *Store) UpsertRelationConfig(ctx context.Context, cfg tuple.RelationConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("postgres: marshal relation config: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rebac_relation_configs (object_type, relation, config)
		VALUES ($1, $2, $3)
		ON CONFLICT (object_type, relation) DO UPDATE SET config = EXCLUDED.config`,
		cfg.ObjectType, cfg.Relation, raw)
	if err != nil {
		return fmt.Errorf("postgres: upsert relation config: %w", err)
	}

	return nil
}

func (s *Store) DeleteRelationConfig(ctx context.Context, objectType, relation string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rebac_relation_configs WHERE object_type = $1 AND relation = $2`, objectType, relation)
	if err != nil {
		return false, fmt.Errorf("postgres: delete relation config: %w", err)
	}

	return rowsAffected(res)
}

func (s *Store) FindConditionDefinition(ctx context.Context, name string) (*tuple.ConditionDefinition, error) {
	var (
		def        tuple.ConditionDefinition
		parameters []byte
	)

	err := s.db.QueryRowContext(ctx, `SELECT name, expression, parameters FROM rebac_condition_definitions WHERE name = $1`, name).
		Scan(&def.Name, &def.Expression, &parameters)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("postgres: find condition definition: %w", err)
	}

	if err := json.Unmarshal(parameters, &def.Parameters); err != nil {
		return nil, errors.NewInvalidStoredData("", name, err)
	}

	return &def, nil
}

func (s *Store) UpsertConditionDefinition(ctx context.Context, def tuple.ConditionDefinition) error {
	raw, err := json.Marshal(def.Parameters)
	if err != nil {
		return fmt.Errorf("postgres: marshal condition parameters: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rebac_condition_definitions (name, expression, parameters)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET expression = EXCLUDED.expression, parameters = EXCLUDED.parameters`,
		def.Name, def.Expression, raw)
	if err != nil {
		return fmt.Errorf("postgres: upsert condition definition: %w", err)
	}

	return nil
}

func (s *Store) DeleteConditionDefinition(ctx context.Context, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rebac_condition_definitions WHERE name = $1`, name)
	if err != nil {
		return false, fmt.Errorf("postgres: delete condition definition: %w", err)
	}

	return rowsAffected(res)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanTuple(row scannable) (*tuple.Tuple, error) {
	var (
		t                tuple.Tuple
		conditionContext []byte
	)

	if err := row.Scan(&t.ObjectType, &t.ObjectID, &t.Relation, &t.SubjectType, &t.SubjectID, &t.SubjectRelation, &t.Condition.Name, &conditionContext); err != nil {
		return nil, err
	}

	if t.Condition.Name != "" && len(conditionContext) > 0 {
		if err := json.Unmarshal(conditionContext, &t.Condition.Context); err != nil {
			return nil, err
		}
	}

	return &t, nil
}

func scanTuples(rows *sql.Rows, objectType, relation string) ([]tuple.Tuple, error) {
	var tuples []tuple.Tuple

	for rows.Next() {
		t, err := scanTuple(rows)
		if err != nil {
			return nil, errors.NewInvalidStoredData(objectType, relation, err)
		}

		tuples = append(tuples, *t)
	}

	return tuples, rows.Err()
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("postgres: rows affected: %w", err)
	}

	return n > 0, nil
}
