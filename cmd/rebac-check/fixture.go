// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kopexa-grc/rebac/store/memory"
	"github.com/kopexa-grc/rebac/tuple"
)

// fixture is a JSON or YAML snapshot loaded into a fresh in-memory store: the
// shape a test harness or a `rebac-check` user hand-writes to describe a
// small authorization model without standing up a database.
type fixture struct {
	RelationConfigs      []tuple.RelationConfig      `json:"relation_configs"`
	ConditionDefinitions []tuple.ConditionDefinition `json:"condition_definitions"`
	Tuples               []tuple.Tuple               `json:"tuples"`
}

func loadFixture(path string) (*memory.Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var f fixture

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse fixture: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse fixture: %w", err)
		}
	}

	ctx := context.Background()
	s := memory.New()

	for _, cfg := range f.RelationConfigs {
		if err := s.UpsertRelationConfig(ctx, cfg); err != nil {
			return nil, fmt.Errorf("load relation config %s.%s: %w", cfg.ObjectType, cfg.Relation, err)
		}
	}

	for _, def := range f.ConditionDefinitions {
		if err := s.UpsertConditionDefinition(ctx, def); err != nil {
			return nil, fmt.Errorf("load condition definition %s: %w", def.Name, err)
		}
	}

	for _, t := range f.Tuples {
		if err := s.InsertTuple(ctx, t); err != nil {
			return nil, fmt.Errorf("load tuple %s:%s#%s: %w", t.ObjectType, t.ObjectID, t.Relation, err)
		}
	}

	return s, nil
}
