// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package fga

import (
	"context"
	"sync"

	"github.com/kopexa-grc/rebac/check"
	"github.com/kopexa-grc/rebac/ctxutil"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// defaultListConcurrency bounds the number of in-flight per-candidate
// checks a ListObjects call fans out.
const defaultListConcurrency = 8

// CorrelationID identifies one ListObjects fan-out across its per-candidate
// checks. It is an alias of check.CorrelationID so the evaluator's own
// per-step debug trace picks up the same value from the context.
type CorrelationID = check.CorrelationID

// ListObjects returns every objectID of objectType the subject holds
// relation on. It enumerates candidates with Store.ListCandidateObjectIDs
// and re-checks each one individually (the store's candidate list is a
// pre-filter, not a correctness guarantee, so every hit is re-verified
// through the same recursive evaluator Check uses).
func (c *Client) ListObjects(ctx context.Context, objectType, relation, subjectType, subjectID string) ([]string, error) {
	correlationID := CorrelationID(ulid.Make().String())
	ctx = ctxutil.With(ctx, correlationID)

	candidates, err := c.store.ListCandidateObjectIDs(ctx, objectType)
	if err != nil {
		return nil, err
	}

	// Store adapters document ListCandidateObjectIDs as a pre-filter; dedup
	// defensively rather than trusting every adapter to return a set.
	candidates = lo.Uniq(candidates)

	log.Debug().Str("correlation_id", string(correlationID)).
		Str("object_type", objectType).Str("relation", relation).
		Int("candidates", len(candidates)).Msg("fga: list_objects fan-out")

	var (
		mu      sync.Mutex
		allowed []string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(defaultListConcurrency)

	for _, objectID := range candidates {
		objectID := objectID

		group.Go(func() error {
			ok, err := c.checkAccess(groupCtx, AccessCheck{
				ObjectType: objectType, ObjectID: objectID, Relation: relation,
				SubjectType: subjectType, SubjectID: subjectID,
			})
			if err != nil {
				return err
			}

			if ok {
				mu.Lock()
				allowed = append(allowed, objectID)
				mu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return allowed, nil
}

// ListSubjects returns every direct subject reference recorded on
// (objectType, objectID, relation). Unlike ListObjects this does not
// re-derive membership through rewrites or conditions: it is a literal
// reverse listing of what was written, matching the store's own
// ListDirectSubjects contract.
func (c *Client) ListSubjects(ctx context.Context, objectType, objectID, relation string) ([]Entity, error) {
	refs, err := c.store.ListDirectSubjects(ctx, objectType, objectID, relation)
	if err != nil {
		return nil, err
	}

	subjects := make([]Entity, 0, len(refs))
	for _, ref := range refs {
		subjects = append(subjects, Entity{
			Kind:       Kind(ref.SubjectType),
			Identifier: ref.SubjectID,
			Relation:   Relation(ref.SubjectRelation),
		})
	}

	return subjects, nil
}
