// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Command server runs the Moodify HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/moodifyme/moodify/internal/api"
	"github.com/moodifyme/moodify/internal/auth"
	"github.com/moodifyme/moodify/internal/catalog/books"
	"github.com/moodifyme/moodify/internal/catalog/spotify"
	"github.com/moodifyme/moodify/internal/catalog/tmdb"
	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/emotion"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/models"
	"github.com/moodifyme/moodify/internal/recommend"
	"github.com/moodifyme/moodify/internal/store"
	"github.com/moodifyme/moodify/internal/supervisor"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.WithComponent("main")

	db, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("closing store")
		}
	}()

	users := store.NewUserStore(db)
	moods := store.NewMoodStore(db)

	authSvc, err := auth.NewService(users, cfg.Security)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	textClassifier, faceClassifier, err := emotion.NewFromConfig(cfg.Emotion)
	if err != nil {
		return fmt.Errorf("init emotion classifiers: %w", err)
	}

	spotifyClient := spotify.NewClient(cfg.Spotify)
	tmdbClient := tmdb.NewClient(cfg.TMDB)
	booksClient := books.NewClient(cfg.Books)

	if !cfg.Spotify.Enabled() {
		logger.Warn().Msg("spotify credentials missing, music recommendations disabled")
	}
	if !cfg.TMDB.Enabled() {
		logger.Warn().Msg("tmdb api key missing, serving static movie and series catalogs")
	}

	engine := recommend.NewEngine(cfg.Recommend, spotifyClient, tmdbClient, booksClient)

	handler := api.NewHandler(engine, authSvc, textClassifier, faceClassifier, moods, tmdbClient, models.ProviderStatus{
		Spotify: cfg.Spotify.Enabled(),
		TMDB:    cfg.TMDB.Enabled(),
		Books:   cfg.Books.APIKey != "",
	})
	router := api.NewRouter(handler, cfg.Security, authSvc)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	if cfg.Server.ShutdownTimeout > 0 {
		treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	tree.Add(supervisor.NewHTTPServerService(server, treeConfig.ShutdownTimeout))
	if !cfg.Store.InMemory {
		tree.Add(supervisor.NewStoreGCService(func() error {
			return store.RunGC(db)
		}, cfg.Store.GCInterval))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("addr", server.Addr).
		Str("environment", cfg.Server.Environment).
		Msg("starting moodify server")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info().Msg("server stopped")
	return nil
}
