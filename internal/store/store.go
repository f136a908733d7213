// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package store persists users and mood history in an embedded Badger
// database. Keys are namespaced by prefix so one database serves both
// collections.
package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/logging"
)

// Open opens the Badger database described by cfg. In-memory mode is used
// by tests and by deployments that don't need persistence.
func Open(cfg config.StoreConfig) (*badger.DB, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil // Badger's own logging is noisy; zerolog covers the store.

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return db, nil
}

// RunGC runs one value-log garbage collection pass. Badger returns
// ErrNoRewrite when there was nothing to collect; that is not an error
// for callers.
func RunGC(db *badger.DB) error {
	err := db.RunValueLogGC(0.5)
	if errors.Is(err, badger.ErrNoRewrite) {
		return nil
	}
	if err != nil {
		logger := logging.WithComponent("store")
		logger.Warn().Err(err).Msg("value log gc failed")
		return fmt.Errorf("badger gc: %w", err)
	}
	return nil
}
