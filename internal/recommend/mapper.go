// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package recommend builds mood-based recommendation lists. The Engine maps
// an emotion to provider queries, aggregates candidates from the upstream
// catalogs, ranks them, and falls back to static catalogs when a provider
// is unavailable.
package recommend

import "strings"

// Emotion is a canonical lower-case emotion label, e.g. "happy" or "bored".
type Emotion string

// Normalize lower-cases and trims a raw emotion label.
func Normalize(raw string) Emotion {
	return Emotion(strings.ToLower(strings.TrimSpace(raw)))
}

// musicGenres maps each emotion to three Spotify genre seeds.
var musicGenres = map[Emotion][]string{
	"happy":      {"pop", "happy", "dance"},
	"sad":        {"sad", "indie", "acoustic"},
	"angry":      {"metal", "rock", "punk"},
	"relaxed":    {"chill", "ambient", "study"},
	"energetic":  {"edm", "dance", "workout"},
	"nostalgic":  {"folk", "indie", "70s"},
	"anxious":    {"ambient", "classical", "piano"},
	"hopeful":    {"inspirational", "gospel", "pop"},
	"proud":      {"hip-hop", "r-n-b", "soul"},
	"lonely":     {"sad", "acoustic", "singer-songwriter"},
	"neutral":    {"pop", "alternative", "indie"},
	"amused":     {"comedy", "funk", "disco"},
	"frustrated": {"grunge", "alt-rock", "emo"},
	"romantic":   {"romance", "r-n-b", "love"},
	"surprised":  {"electronic", "edm", "electro"},
	"confused":   {"jazz", "experimental", "ambient"},
	"excited":    {"party", "dance", "edm"},
	"shy":        {"acoustic", "indie-pop", "folk"},
	"bored":      {"electronic", "dance", "house"},
	"playful":    {"funk", "disco", "party"},
}

// movieGenreIDs maps each emotion to three TMDB movie genre IDs.
var movieGenreIDs = map[Emotion][]int{
	"happy":      {35, 16, 10402},
	"sad":        {18, 10749, 10752},
	"angry":      {28, 53, 27},
	"relaxed":    {99, 12, 10751},
	"energetic":  {28, 12, 10402},
	"nostalgic":  {36, 10751, 37},
	"anxious":    {27, 9648, 53},
	"hopeful":    {18, 12, 10751},
	"proud":      {36, 10752, 12},
	"lonely":     {18, 10749, 99},
	"neutral":    {18, 12, 35},
	"amused":     {35, 16, 10751},
	"frustrated": {80, 18, 53},
	"romantic":   {10749, 35, 18},
	"surprised":  {9648, 53, 878},
	"confused":   {9648, 878, 53},
	"excited":    {28, 12, 878},
	"shy":        {18, 10749, 10751},
	"bored":      {28, 12, 53},
	"playful":    {35, 16, 10751},
}

// seriesGenreIDs maps each emotion to three TMDB TV genre IDs.
var seriesGenreIDs = map[Emotion][]int{
	"happy":      {35, 16, 10762},
	"sad":        {18, 10766, 10768},
	"angry":      {10759, 80, 10768},
	"relaxed":    {99, 10767, 10751},
	"energetic":  {10759, 10764, 35},
	"nostalgic":  {18, 10751, 37},
	"anxious":    {9648, 80, 10765},
	"hopeful":    {18, 10751, 10759},
	"proud":      {10768, 99, 10759},
	"lonely":     {18, 10766, 10749},
	"neutral":    {18, 35, 10759},
	"amused":     {35, 16, 10764},
	"frustrated": {18, 80, 10768},
	"romantic":   {10766, 35, 18},
	"surprised":  {9648, 10765, 10759},
	"confused":   {9648, 10765, 18},
	"excited":    {10759, 10765, 10764},
	"shy":        {18, 10766, 10751},
	"bored":      {10759, 10765, 10764},
	"playful":    {35, 16, 10762},
}

// MusicGenres returns the Spotify genre seeds for an emotion.
// Unknown emotions fall back to pop.
func MusicGenres(e Emotion) []string {
	if genres, ok := musicGenres[e]; ok {
		return genres
	}
	return []string{"pop"}
}

// MovieGenres returns the TMDB movie genre IDs for an emotion.
// Unknown emotions fall back to comedy, drama, and action.
func MovieGenres(e Emotion) []int {
	if ids, ok := movieGenreIDs[e]; ok {
		return ids
	}
	return []int{35, 18, 28}
}

// SeriesGenres returns the TMDB TV genre IDs for an emotion.
// Unknown emotions fall back to comedy, drama, and action-adventure.
func SeriesGenres(e Emotion) []int {
	if ids, ok := seriesGenreIDs[e]; ok {
		return ids
	}
	return []int{35, 18, 10759}
}

// KnownEmotions returns the canonical emotion labels, for validation and
// documentation surfaces.
func KnownEmotions() []Emotion {
	emotions := make([]Emotion, 0, len(musicGenres))
	for e := range musicGenres {
		emotions = append(emotions, e)
	}
	return emotions
}
