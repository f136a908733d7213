// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package models

// ScreenItem is a movie or web series recommendation.
//
// Rating is used internally for ranking and is stripped from responses;
// clients receive the list pre-ranked.
type ScreenItem struct {
	Title       string  `json:"title"`
	Year        string  `json:"year"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	ExternalURL string  `json:"external_url"`
	TrailerURL  string  `json:"youtube_trailer_url"`
	Rating      float64 `json:"-"`
}

// MusicItem is a song recommendation.
//
// Language is "hindi" when the track name or artist contains Devanagari
// script, otherwise "english". Popularity drives ranking and is not
// serialized.
type MusicItem struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	URL        string `json:"url"`
	ImageURL   string `json:"image_url"`
	Language   string `json:"language"`
	Popularity int    `json:"-"`
}

// BookItem is a book recommendation, serialized under the "stories" key of
// the combined payload. Rating orders the list but is stripped from the
// response; unlike screen items the order stays rating-sorted.
type BookItem struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	PosterURL   string  `json:"poster_url"`
	ExternalURL string  `json:"external_url"`
	Rating      float64 `json:"-"`
}

// Recommendations is the combined payload returned by the full fan-out
// endpoint. A provider failure leaves its list empty rather than failing
// the whole response.
type Recommendations struct {
	Music     []MusicItem  `json:"music"`
	Movies    []ScreenItem `json:"movies"`
	WebSeries []ScreenItem `json:"webseries"`
	Books     []BookItem   `json:"stories"`
}
