// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package supervisor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodifyme/moodify/internal/logging"
)

// GCFunc runs one garbage collection pass over the store.
type GCFunc func() error

// StoreGCService periodically runs Badger value-log garbage collection.
// GC failures are logged and retried on the next tick; they never crash
// the service.
type StoreGCService struct {
	gc       GCFunc
	interval time.Duration
	logger   zerolog.Logger
}

// NewStoreGCService builds the GC loop. A non-positive interval defaults
// to ten minutes.
func NewStoreGCService(gc GCFunc, interval time.Duration) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{
		gc:       gc,
		interval: interval,
		logger:   logging.WithComponent("store-gc"),
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.gc(); err != nil {
				s.logger.Warn().Err(err).Msg("store gc pass failed")
			}
		}
	}
}

// String identifies the service in supervisor logs.
func (s *StoreGCService) String() string {
	return "store-gc"
}
