// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/moodifyme/moodify/internal/config"
)

func testConfig(baseURL string) config.TMDBConfig {
	return config.TMDBConfig{
		APIKey:     "test-key",
		APIBaseURL: baseURL,
		ImageBase:  "https://image.tmdb.org/t/p/w500",
		Timeout:    5 * time.Second,
	}
}

func TestDiscoverMapsItems(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"total_pages": 12,
			"results": [
				{"id": 27205, "title": "Inception", "release_date": "2010-07-15",
				 "overview": "A thief enters dreams.", "poster_path": "/incep.jpg", "vote_average": 8.4},
				{"id": 0, "title": "No ID", "poster_path": "/x.jpg"},
				{"id": 99, "title": "No Poster", "poster_path": ""}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	items, totalPages, err := client.Discover(context.Background(), KindMovie, 28, 1)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if gotPath != "/discover/movie" {
		t.Errorf("path = %q, want /discover/movie", gotPath)
	}
	if got := gotQuery["with_genres"]; len(got) != 1 || got[0] != "28" {
		t.Errorf("with_genres = %v, want [28]", got)
	}
	if got := gotQuery["include_adult"]; len(got) != 1 || got[0] != "false" {
		t.Errorf("include_adult = %v, want [false]", got)
	}
	if got := gotQuery["sort_by"]; len(got) != 1 || got[0] != "popularity.desc" {
		t.Errorf("sort_by = %v, want [popularity.desc]", got)
	}

	if totalPages != 12 {
		t.Errorf("totalPages = %d, want 12", totalPages)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1 (entries without id or poster skipped)", len(items))
	}

	item := items[0]
	if item.Title != "Inception" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.Year != "2010" {
		t.Errorf("Year = %q, want 2010", item.Year)
	}
	if item.PosterURL != "https://image.tmdb.org/t/p/w500/incep.jpg" {
		t.Errorf("PosterURL = %q", item.PosterURL)
	}
	if item.ExternalURL != "https://www.themoviedb.org/movie/27205" {
		t.Errorf("ExternalURL = %q", item.ExternalURL)
	}
	if !strings.Contains(item.TrailerURL, "search_query=Inception+2010+trailer") {
		t.Errorf("TrailerURL = %q", item.TrailerURL)
	}
	if item.Rating != 8.4 {
		t.Errorf("Rating = %v, want 8.4", item.Rating)
	}
}

func TestDiscoverTVUsesFirstAirDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"results": [
				{"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20",
				 "overview": "Chemistry teacher breaks bad.", "poster_path": "/bb.jpg", "vote_average": 8.9}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	items, _, err := client.Discover(context.Background(), KindTV, 18, 1)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Title != "Breaking Bad" {
		t.Errorf("Title = %q", items[0].Title)
	}
	if items[0].Year != "2008" {
		t.Errorf("Year = %q, want 2008", items[0].Year)
	}
	if items[0].ExternalURL != "https://www.themoviedb.org/tv/1396" {
		t.Errorf("ExternalURL = %q", items[0].ExternalURL)
	}
}

func TestPopular(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"page":1,"total_pages":3,"results":[
			{"id": 1, "title": "Top Movie", "release_date": "2024-02-01", "poster_path": "/t.jpg", "vote_average": 7.0}
		]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	items, err := client.Popular(context.Background(), KindMovie)
	if err != nil {
		t.Fatalf("Popular() error = %v", err)
	}
	if gotPath != "/movie/popular" {
		t.Errorf("path = %q, want /movie/popular", gotPath)
	}
	if len(items) != 1 || items[0].Title != "Top Movie" {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestDiscoverNotConfigured(t *testing.T) {
	client := NewClient(config.TMDBConfig{APIBaseURL: "http://unused", Timeout: time.Second})

	if client.Enabled() {
		t.Error("Enabled() = true without api key")
	}
	if _, _, err := client.Discover(context.Background(), KindMovie, 28, 1); err != ErrNotConfigured {
		t.Errorf("Discover() error = %v, want ErrNotConfigured", err)
	}
}

func TestDiscoverUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, _, err := client.Discover(context.Background(), KindMovie, 28, 1)
	if err == nil {
		t.Fatal("Discover() = nil error, want upstream failure")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error %q does not mention status", err)
	}
}
