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

	unmarshal := json.Unmarshal
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		unmarshal = yaml.Unmarshal
	}

	if err := unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
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
