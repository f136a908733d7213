// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package recommend

import (
	"sort"

	"github.com/moodifyme/moodify/internal/models"
)

// rankScreen sorts items by rating descending (stable, so collection order
// breaks ties), truncates to max, then shuffles so clients don't always see
// the same top entries first. Ratings are dropped during serialization.
func rankScreen(items []models.ScreenItem, max int, shuffle func(n int, swap func(i, j int))) []models.ScreenItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rating > items[j].Rating
	})

	if len(items) > max {
		items = items[:max]
	}

	shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	return items
}

// rankMusic sorts tracks by popularity descending, truncates to max, then
// shuffles.
func rankMusic(items []models.MusicItem, max int, shuffle func(n int, swap func(i, j int))) []models.MusicItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Popularity > items[j].Popularity
	})

	if len(items) > max {
		items = items[:max]
	}

	shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	return items
}

// rankBooks sorts books by rating descending and truncates to max. Book
// lists are deliberately not shuffled; clients receive them best-first.
func rankBooks(items []models.BookItem, max int) []models.BookItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rating > items[j].Rating
	})

	if len(items) > max {
		items = items[:max]
	}

	return items
}
