// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package recommend

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodifyme/moodify/internal/catalog/books"
	"github.com/moodifyme/moodify/internal/catalog/spotify"
	"github.com/moodifyme/moodify/internal/catalog/tmdb"
	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/metrics"
	"github.com/moodifyme/moodify/internal/models"
)

// Engine builds recommendation lists for an emotion. It is safe for
// concurrent use; the random source is guarded by its own mutex so page
// and genre selection stay race-free under parallel requests.
type Engine struct {
	cfg     config.RecommendConfig
	spotify spotify.Client
	tmdb    tmdb.Client
	books   books.Client
	sleep   Sleeper
	logger  zerolog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option customizes Engine construction.
type Option func(*Engine)

// WithSeed fixes the random source seed. Used by tests for deterministic
// page and genre selection.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSleeper replaces the inter-request pause. Tests inject a no-op.
func WithSleeper(s Sleeper) Option {
	return func(e *Engine) {
		e.sleep = s
	}
}

// NewEngine creates a recommendation engine over the three catalog clients.
func NewEngine(cfg config.RecommendConfig, spotifyClient spotify.Client, tmdbClient tmdb.Client, booksClient books.Client, opts ...Option) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:     cfg,
		spotify: spotifyClient,
		tmdb:    tmdbClient,
		books:   booksClient,
		sleep:   SleepWithContext,
		logger:  logging.WithComponent("recommend"),
		rng:     rand.New(rand.NewSource(seed)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// intn returns a random int in [0, n) under the rng mutex.
func (e *Engine) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

// shuffle permutes n elements under the rng mutex.
func (e *Engine) shuffle(n int, swap func(i, j int)) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.rng.Shuffle(n, swap)
}

// Music returns up to the configured target of tracks for an emotion,
// most popular first before the final shuffle. When genre-seeded
// recommendations fail or come back empty, a free-text search for the
// emotion itself is used instead.
func (e *Engine) Music(ctx context.Context, emotion Emotion) ([]models.MusicItem, error) {
	genres := MusicGenres(emotion)

	items, err := e.spotify.Recommendations(ctx, genres, e.cfg.MusicTarget)
	if err != nil || len(items) == 0 {
		if err != nil {
			e.logger.Warn().Err(err).Str("emotion", string(emotion)).Msg("genre recommendations failed, falling back to search")
		}
		items, err = e.spotify.Search(ctx, string(emotion), e.cfg.MusicTarget)
		if err != nil {
			metrics.RecordRecommendation("music", "fallback", 0)
			return nil, err
		}
	}

	items = rankMusic(items, e.cfg.MusicTarget, e.shuffle)
	metrics.RecordRecommendation("music", "live", len(items))
	return items, nil
}

// Movies returns up to the configured target of movies for an emotion.
// Without TMDB credentials the static catalog is returned as-is.
func (e *Engine) Movies(ctx context.Context, emotion Emotion) []models.ScreenItem {
	return e.screen(ctx, emotion, tmdb.KindMovie, MovieGenres(emotion), DefaultMovies, "movies")
}

// Series returns up to the configured target of web series for an emotion.
// Without TMDB credentials the static catalog is returned as-is.
func (e *Engine) Series(ctx context.Context, emotion Emotion) []models.ScreenItem {
	return e.screen(ctx, emotion, tmdb.KindTV, SeriesGenres(emotion), DefaultSeries, "webseries")
}

func (e *Engine) screen(ctx context.Context, emotion Emotion, kind tmdb.Kind, genreIDs []int, defaults func() []models.ScreenItem, mediaType string) []models.ScreenItem {
	if !e.tmdb.Enabled() {
		items := defaults()
		metrics.RecordRecommendation(mediaType, "fallback", len(items))
		return items
	}

	agg := &screenAggregator{
		client:   e.tmdb,
		kind:     kind,
		target:   e.cfg.ScreenTarget,
		delay:    e.cfg.RequestDelay,
		sleep:    e.sleep,
		intn:     e.intn,
		defaults: defaults,
		logger:   e.logger,
	}

	items := agg.collect(ctx, genreIDs)
	items = rankScreen(items, e.cfg.ScreenTarget, e.shuffle)

	metrics.RecordRecommendation(mediaType, "live", len(items))

	e.logger.Debug().
		Str("emotion", string(emotion)).
		Str("kind", string(kind)).
		Int("items", len(items)).
		Msg("screen recommendations built")

	return items
}

// Books returns up to the configured target of books for an emotion,
// best-rated first. Book lists are not shuffled.
func (e *Engine) Books(ctx context.Context, emotion Emotion) ([]models.BookItem, error) {
	items, err := e.books.Search(ctx, string(emotion), e.cfg.BookTarget)
	if err != nil {
		metrics.RecordRecommendation("books", "fallback", 0)
		return nil, err
	}

	items = rankBooks(items, e.cfg.BookTarget)
	metrics.RecordRecommendation("books", "live", len(items))
	return items, nil
}

// All builds the combined recommendation payload with one concurrent
// fan-out per media type. A failing provider degrades its own list to
// empty (music, books) or the static catalog (movies, series); the call
// itself never fails. Movies and series are capped at the combined-screen
// limit.
func (e *Engine) All(ctx context.Context, emotion Emotion) models.Recommendations {
	var out models.Recommendations
	var wg sync.WaitGroup

	wg.Add(4)

	go func() {
		defer wg.Done()
		items, err := e.Music(ctx, emotion)
		if err != nil {
			e.logger.Warn().Err(err).Msg("music recommendations unavailable")
			items = []models.MusicItem{}
		}
		out.Music = items
	}()

	go func() {
		defer wg.Done()
		out.Movies = capScreen(e.Movies(ctx, emotion), e.cfg.CombinedScreen)
	}()

	go func() {
		defer wg.Done()
		out.WebSeries = capScreen(e.Series(ctx, emotion), e.cfg.CombinedScreen)
	}()

	go func() {
		defer wg.Done()
		items, err := e.Books(ctx, emotion)
		if err != nil {
			e.logger.Warn().Err(err).Msg("book recommendations unavailable")
			items = []models.BookItem{}
		}
		out.Books = items
	}()

	wg.Wait()

	if out.Music == nil {
		out.Music = []models.MusicItem{}
	}
	if out.Books == nil {
		out.Books = []models.BookItem{}
	}

	return out
}

func capScreen(items []models.ScreenItem, max int) []models.ScreenItem {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
