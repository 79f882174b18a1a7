// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	kerrors "github.com/kopexa-grc/rebac/errors"
	"github.com/kopexa-grc/rebac/fga"
	"github.com/kopexa-grc/rebac/khttp"
	"github.com/kopexa-grc/rebac/khttp/parser"
)

func mountRoutes(r chi.Router, client *fga.Client, apiKey string) {
	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(apiKey))

		r.Post("/v1/check", checkHandler(client))
		r.Post("/v1/list-objects", listObjectsHandler(client))
		r.Post("/v1/tuples", writeTupleHandler(client))
		r.Delete("/v1/tuples", deleteTupleHandler(client))
	})
}

type checkRequestBody struct {
	Object   string         `json:"object"`
	Relation string         `json:"relation"`
	Subject  string         `json:"subject"`
	Context  map[string]any `json:"context,omitempty"`
}

func checkHandler(client *fga.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		khttp.Handle("check", w, r, func(ctx context.Context) error {
			var body checkRequestBody
			if err := khttp.ReadJSON(r, &body); err != nil {
				return kerrors.NewBadRequest("malformed request body")
			}

			object, err := parseEntity(body.Object)
			if err != nil {
				return err
			}

			subject, err := parseEntity(body.Subject)
			if err != nil {
				return err
			}

			allowed, err := client.CheckAccess(ctx, fga.AccessCheck{
				ObjectType:  string(object.Kind),
				ObjectID:    object.Identifier,
				Relation:    body.Relation,
				SubjectType: string(subject.Kind),
				SubjectID:   subject.Identifier,
				Context:     body.Context,
			})
			if err != nil {
				return err
			}

			return khttp.WriteJSON(w, http.StatusOK, map[string]bool{"allowed": allowed})
		})
	}
}

type listObjectsRequestBody struct {
	ObjectType string `json:"object_type"`
	Relation   string `json:"relation"`
	Subject    string `json:"subject"`
}

func listObjectsHandler(client *fga.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		khttp.Handle("list_objects", w, r, func(ctx context.Context) error {
			var body listObjectsRequestBody
			if err := khttp.ReadJSON(r, &body); err != nil {
				return kerrors.NewBadRequest("malformed request body")
			}

			subject, err := parseEntity(body.Subject)
			if err != nil {
				return err
			}

			limit := parser.ParseQueryInt(r, "limit", 0)

			objects, err := client.ListObjects(ctx, body.ObjectType, body.Relation, string(subject.Kind), subject.Identifier)
			if err != nil {
				return err
			}

			if limit > 0 && len(objects) > limit {
				objects = objects[:limit]
			}

			return khttp.WriteJSON(w, http.StatusOK, map[string][]string{"objects": objects})
		})
	}
}

type tupleRequestBody struct {
	Object         string         `json:"object"`
	Relation       string         `json:"relation"`
	Subject        string         `json:"subject"`
	ConditionName  string         `json:"condition_name,omitempty"`
	ConditionValue map[string]any `json:"condition_context,omitempty"`
}

func writeTupleHandler(client *fga.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		khttp.Handle("write_tuple", w, r, func(ctx context.Context) error {
			key, err := parseTupleRequestBody(r)
			if err != nil {
				return err
			}

			if err := client.AddTuple(ctx, key); err != nil {
				return err
			}

			return khttp.WriteNoContent(w)
		})
	}
}

func deleteTupleHandler(client *fga.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		khttp.Handle("delete_tuple", w, r, func(ctx context.Context) error {
			key, err := parseTupleRequestBody(r)
			if err != nil {
				return err
			}

			removed, err := client.RemoveTuple(ctx, key)
			if err != nil {
				return err
			}

			return khttp.WriteJSON(w, http.StatusOK, map[string]bool{"removed": removed})
		})
	}
}

func parseTupleRequestBody(r *http.Request) (fga.TupleKey, error) {
	var body tupleRequestBody
	if err := khttp.ReadJSON(r, &body); err != nil {
		return fga.TupleKey{}, kerrors.NewBadRequest("malformed request body")
	}

	object, err := parseEntity(body.Object)
	if err != nil {
		return fga.TupleKey{}, err
	}

	subject, err := parseEntity(body.Subject)
	if err != nil {
		return fga.TupleKey{}, err
	}

	return fga.TupleKey{
		Object:   object,
		Relation: fga.Relation(body.Relation),
		Subject:  subject,
		Condition: fga.Condition{
			Name:    body.ConditionName,
			Context: body.ConditionValue,
		},
	}, nil
}

