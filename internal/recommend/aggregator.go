// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodifyme/moodify/internal/catalog/tmdb"
	"github.com/moodifyme/moodify/internal/models"
)

// maxDiscoverPages caps how deep into the discover listing the aggregator
// reaches, regardless of how many pages the upstream reports.
const maxDiscoverPages = 5

// maxExtraPages bounds the number of additional discover pages fetched
// beyond page one for the primary genre.
const maxExtraPages = 3

// defaultsFloor is the minimum number of live results; below it the static
// catalog is merged in.
const defaultsFloor = 10

// Sleeper pauses between consecutive upstream calls. Injected so tests run
// without real delays. It returns early when the context is canceled.
type Sleeper func(ctx context.Context, d time.Duration)

// SleepWithContext is the production Sleeper.
func SleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// screenAggregator collects movie or TV candidates for one request.
//
// The upstream is paced with a fixed delay between consecutive calls. This
// mirrors the polite-crawler behavior the providers expect from this access
// pattern; it is a plain pause, not a token bucket.
type screenAggregator struct {
	client   tmdb.Client
	kind     tmdb.Kind
	target   int
	delay    time.Duration
	sleep    Sleeper
	intn     func(n int) int
	defaults func() []models.ScreenItem
	logger   zerolog.Logger
}

// collect gathers up to target unique-title items for the given genre list.
//
// Order of sources: page one of a randomly chosen primary genre, up to three
// random deeper pages of that genre, page one of a secondary genre, then the
// popular listing. If the primary fetch fails outright the static catalog is
// returned. If fewer than ten live items were collected the static catalog
// is merged in.
func (a *screenAggregator) collect(ctx context.Context, genreIDs []int) []models.ScreenItem {
	if len(genreIDs) == 0 {
		return a.defaults()
	}

	primary := genreIDs[a.intn(len(genreIDs))]

	collected := make([]models.ScreenItem, 0, a.target)
	seen := make(map[string]bool)

	items, totalPages, err := a.client.Discover(ctx, a.kind, primary, 1)
	if err != nil {
		a.logger.Warn().Err(err).Int("genre", primary).Msg("discover failed, using fallback catalog")
		return a.defaults()
	}
	collected = a.admit(collected, seen, items)

	if totalPages > maxDiscoverPages {
		totalPages = maxDiscoverPages
	}

	if len(collected) < a.target && totalPages > 1 {
		for _, page := range a.pickExtraPages(totalPages) {
			if len(collected) >= a.target {
				break
			}
			a.sleep(ctx, a.delay)

			items, _, err := a.client.Discover(ctx, a.kind, primary, page)
			if err != nil {
				a.logger.Warn().Err(err).Int("page", page).Msg("discover page failed, skipping")
				continue
			}
			collected = a.admit(collected, seen, items)
		}
	}

	if len(collected) < a.target {
		secondary := a.pickSecondaryGenre(genreIDs, primary)
		a.sleep(ctx, a.delay)

		items, _, err := a.client.Discover(ctx, a.kind, secondary, 1)
		if err != nil {
			a.logger.Warn().Err(err).Int("genre", secondary).Msg("secondary discover failed, skipping")
		} else {
			collected = a.admit(collected, seen, items)
		}
	}

	if len(collected) < a.target {
		a.sleep(ctx, a.delay)

		items, err := a.client.Popular(ctx, a.kind)
		if err != nil {
			a.logger.Warn().Err(err).Msg("popular listing failed, skipping")
		} else {
			collected = a.admit(collected, seen, items)
		}
	}

	if len(collected) < defaultsFloor {
		collected = a.admit(collected, seen, a.defaults())
	}

	return collected
}

// admit appends items up to the target, skipping duplicate titles.
// Titles are compared exactly; the first occurrence wins.
func (a *screenAggregator) admit(collected []models.ScreenItem, seen map[string]bool, items []models.ScreenItem) []models.ScreenItem {
	for _, item := range items {
		if len(collected) >= a.target {
			break
		}
		if item.Title == "" || seen[item.Title] {
			continue
		}
		seen[item.Title] = true
		collected = append(collected, item)
	}
	return collected
}

// pickExtraPages chooses up to maxExtraPages distinct random pages from
// [2, totalPages].
func (a *screenAggregator) pickExtraPages(totalPages int) []int {
	if totalPages <= 2 {
		return []int{2}
	}

	candidates := make([]int, 0, totalPages-1)
	for page := 2; page <= totalPages; page++ {
		candidates = append(candidates, page)
	}

	// Partial Fisher-Yates: the first n entries end up randomly chosen.
	n := maxExtraPages
	if n > len(candidates) {
		n = len(candidates)
	}
	for i := 0; i < n; i++ {
		j := i + a.intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	return candidates[:n]
}

// pickSecondaryGenre returns a random genre different from the primary
// whenever the list has one.
func (a *screenAggregator) pickSecondaryGenre(genreIDs []int, primary int) int {
	others := make([]int, 0, len(genreIDs))
	for _, id := range genreIDs {
		if id != primary {
			others = append(others, id)
		}
	}
	if len(others) == 0 {
		return primary
	}
	return others[a.intn(len(others))]
}
