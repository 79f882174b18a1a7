// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kopexa-grc/rebac/check"
	"github.com/kopexa-grc/rebac/ptr"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture.json> <object> <relation> <subject>",
	Short: "Check whether subject holds relation on object",
	Long: `Entities are given as "type:id" (e.g. "doc:1", "user:alice").

Example:

  rebac-check check fixture.json doc:1 viewer user:alice`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadFixture(args[0])
		if err != nil {
			return err
		}

		object, err := parseEntityArg(args[1])
		if err != nil {
			return err
		}

		relation := args[2]

		subject, err := parseEntityArg(args[3])
		if err != nil {
			return err
		}

		reqContext, err := contextFlag(cmd)
		if err != nil {
			return err
		}

		allowed, err := check.New(store).Check(cmd.Context(), check.Request{
			ObjectType:  string(object.Kind),
			ObjectID:    object.Identifier,
			Relation:    relation,
			SubjectType: string(subject.Kind),
			SubjectID:   subject.Identifier,
			Context:     reqContext,
			MaxDepth:    ptr.Deref(maxDepthFlag(cmd), 0),
		})
		if err != nil {
			return err
		}

		fmt.Println(allowed)

		if !allowed {
			os.Exit(1)
		}

		return nil
	},
}

func init() {
	checkCmd.Flags().String("context", "", "JSON object of request context values")
	checkCmd.Flags().Int("max-depth", 0, "override the recursion depth bound (default check.DefaultMaxDepth)")
}

// maxDepthFlag returns the --max-depth override, or nil if the caller left
// it unset (distinct from explicitly passing 0, which check.Request also
// treats as "use the default").
func maxDepthFlag(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("max-depth") {
		return nil
	}

	v, _ := cmd.Flags().GetInt("max-depth")

	return &v
}

func contextFlag(cmd *cobra.Command) (map[string]any, error) {
	raw, err := cmd.Flags().GetString("context")
	if err != nil || raw == "" {
		return nil, nil
	}

	var ctx map[string]any
	if err := json.Unmarshal([]byte(raw), &ctx); err != nil {
		return nil, fmt.Errorf("parse --context: %w", err)
	}

	return ctx, nil
}
