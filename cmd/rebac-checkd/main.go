// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Command rebac-checkd serves the check evaluator over HTTP: a thin
// network front for fga.Client, backed by a JSON or YAML fixture loaded
// at startup. It exists for integration testing and local exploration;
// production embedders are expected to import package fga directly.
package main

import (
	"net/http"
	"time"

	"github.com/kopexa-grc/rebac/fga"
	"github.com/kopexa-grc/rebac/graceful"
	"github.com/kopexa-grc/rebac/khttp/router"
	"github.com/kopexa-grc/rebac/khttp/server"
	"github.com/kopexa-grc/rebac/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	logger.CliLogger()

	var (
		addr         = pflag.String("addr", ":8080", "listen address")
		internalAddr = pflag.String("internal-addr", ":9090", "listen address for /metrics and pprof (keep off the public internet)")
		fixture      = pflag.String("fixture", "", "path to a JSON or YAML fixture (required)")
		apiKey       = pflag.String("api-key", "", "if set, required as a Bearer token on every request")
		maxDepth     = pflag.Int("max-depth", 0, "override the recursion depth bound")
		shutdownTO   = pflag.Duration("shutdown-timeout", 15*time.Second, "graceful shutdown timeout")
	)
	pflag.Parse()

	if *fixture == "" {
		log.Fatal().Msg("rebac-checkd: --fixture is required")
	}

	store, err := loadFixture(*fixture)
	if err != nil {
		log.Fatal().Err(err).Msg("rebac-checkd: load fixture")
	}

	var opts []fga.Option
	if *maxDepth > 0 {
		opts = append(opts, fga.WithMaxDepth(*maxDepth))
	}

	client := fga.NewClient(store, opts...)

	r := router.New()
	mountRoutes(r, client, *apiKey)

	srv := server.CreateHTTPServer(*addr, r)
	obsSrv := server.CreateHTTPServer(*internalAddr, router.NewObservabilityRouter())

	closer := graceful.NewCloser()
	closer.Register("http", graceful.HTTPServerShutdown(srv), *shutdownTO)
	closer.Register("http-internal", graceful.HTTPServerShutdown(obsSrv), *shutdownTO)
	_, ready := closer.DetectShutdown()
	<-ready

	go func() {
		log.Info().Str("addr", *internalAddr).Msg("rebac-checkd: serving metrics and pprof")

		if err := obsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("rebac-checkd: internal server failed")
		}
	}()

	log.Info().Str("addr", *addr).Msg("rebac-checkd: listening")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("rebac-checkd: serve")
	}
}
