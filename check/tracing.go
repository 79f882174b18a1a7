// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package check

import (
	"context"

	"github.com/opentracing/opentracing-go"
)

// OpenTracingTracer adapts the Tracer hook to opentracing spans, one per
// recursive resolution step, mirroring the span-per-handler pattern the
// teacher's HTTP layer uses around request dispatch.
type OpenTracingTracer struct {
	ctx context.Context
}

// NewOpenTracingTracer builds a Tracer that starts a child span from ctx
// for every node Check resolves.
func NewOpenTracingTracer(ctx context.Context) *OpenTracingTracer {
	return &OpenTracingTracer{ctx: ctx}
}

// OnResolve starts and immediately finishes a leaf span tagged with the
// node being resolved; depth-bounded recursion means spans are short-lived
// and numerous rather than nested, so nesting them would not add signal.
func (t *OpenTracingTracer) OnResolve(objectType, objectID, relation, subjectType, subjectID string, depth int) {
	span, _ := opentracing.StartSpanFromContext(t.ctx, "check.resolve")
	defer span.Finish()

	span.SetTag("object_type", objectType)
	span.SetTag("object_id", objectID)
	span.SetTag("relation", relation)
	span.SetTag("subject_type", subjectType)
	span.SetTag("subject_id", subjectID)
	span.SetTag("depth", depth)
}
