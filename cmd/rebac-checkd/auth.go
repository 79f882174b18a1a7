// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"net/http"
	"strings"

	"github.com/kopexa-grc/rebac/iam/auth"
)

// bearerAuth rejects requests missing the configured API key and otherwise
// marks the caller as a system actor (this daemon has no user accounts of
// its own, only service-to-service callers). A blank key disables the check
// entirely, matching the CLI's no-auth-by-default local use.
func bearerAuth(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if got == "" || got != key {
				http.Error(w, auth.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
				return
			}

			ctx := auth.WithActor(r.Context(), &auth.Actor{ID: "caller", Type: auth.ActorTypeSystem})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
