// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moodifyme/moodify/internal/config"
)

func TestSearchMapsVolumes(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items": [
			{"volumeInfo": {
				"title": "The Alchemist",
				"authors": ["Paulo Coelho"],
				"description": "A shepherd's journey.",
				"averageRating": 4.5,
				"previewLink": "https://books.example/preview",
				"infoLink": "https://books.example/info",
				"imageLinks": {"thumbnail": "https://books.example/thumb.jpg"}
			}},
			{"volumeInfo": {
				"title": "No Thumbnail",
				"authors": ["Anon"],
				"imageLinks": {}
			}},
			{"volumeInfo": {
				"title": "Info Link Only",
				"authors": ["A", "B"],
				"infoLink": "https://books.example/info-only",
				"imageLinks": {"thumbnail": "https://books.example/t2.jpg"}
			}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(config.BooksConfig{
		APIKey:     "bk",
		APIBaseURL: server.URL,
		Timeout:    5 * time.Second,
	})

	items, err := client.Search(context.Background(), "hopeful", 30)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if got := gotQuery["q"]; len(got) != 1 || got[0] != "hopeful" {
		t.Errorf("q = %v", got)
	}
	if got := gotQuery["maxResults"]; len(got) != 1 || got[0] != "30" {
		t.Errorf("maxResults = %v", got)
	}
	if got := gotQuery["key"]; len(got) != 1 || got[0] != "bk" {
		t.Errorf("key = %v", got)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (volume without thumbnail skipped)", len(items))
	}

	first := items[0]
	if first.Title != "The Alchemist" || first.Author != "Paulo Coelho" {
		t.Errorf("unexpected first item %+v", first)
	}
	if first.ExternalURL != "https://books.example/preview" {
		t.Errorf("ExternalURL = %q, want preview link", first.ExternalURL)
	}
	if first.Rating != 4.5 {
		t.Errorf("Rating = %v", first.Rating)
	}

	// previewLink absent falls back to infoLink; authors join with comma.
	second := items[1]
	if second.ExternalURL != "https://books.example/info-only" {
		t.Errorf("ExternalURL = %q, want info link", second.ExternalURL)
	}
	if second.Author != "A, B" {
		t.Errorf("Author = %q", second.Author)
	}
}

func TestSearchOmitsEmptyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["key"]; ok {
			t.Error("key parameter sent without configured api key")
		}
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(config.BooksConfig{APIBaseURL: server.URL, Timeout: 5 * time.Second})

	items, err := client.Search(context.Background(), "sad", 30)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.BooksConfig{APIBaseURL: server.URL, Timeout: 5 * time.Second})

	if _, err := client.Search(context.Background(), "angry", 30); err == nil {
		t.Fatal("Search() = nil error, want upstream failure")
	}
}
