// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package spotify implements the Spotify Web API client used for music
// recommendations. Authentication uses the client-credentials flow; the
// oauth2 TokenSource caches the access token and refreshes it under its
// own lock when it expires.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/moodifyme/moodify/internal/catalog"
	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/metrics"
	"github.com/moodifyme/moodify/internal/models"
)

// placeholderImage is used when a track's album carries no artwork.
const placeholderImage = "https://via.placeholder.com/300x300?text=No+Image"

// ErrNotConfigured is returned when Spotify credentials are missing.
var ErrNotConfigured = fmt.Errorf("spotify credentials are not configured")

// Client is the Spotify API surface the recommendation engine depends on.
type Client interface {
	// Recommendations returns tracks seeded by the given genres.
	Recommendations(ctx context.Context, genres []string, limit int) ([]models.MusicItem, error)

	// Search returns tracks matching a free-text query.
	Search(ctx context.Context, query string, limit int) ([]models.MusicItem, error)

	// Enabled reports whether the client has credentials to make calls.
	Enabled() bool
}

// HTTPClient is the production Spotify client.
type HTTPClient struct {
	cfg        config.SpotifyConfig
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[interface{}]
	logger     zerolog.Logger
}

// NewClient creates a Spotify client with circuit breaker protection.
// The returned client owns an oauth2 transport that injects and refreshes
// the client-credentials access token.
func NewClient(cfg config.SpotifyConfig) *HTTPClient {
	client := &HTTPClient{
		cfg:    cfg,
		cb:     catalog.NewBreaker("spotify-api"),
		logger: logging.WithComponent("spotify"),
	}

	if cfg.Enabled() {
		ccfg := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}

		// Token requests go through a bounded base client.
		base := &http.Client{Timeout: cfg.Timeout}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

		client.httpClient = ccfg.Client(ctx)
		client.httpClient.Timeout = cfg.Timeout
	}

	return client
}

// Enabled reports whether Spotify credentials are configured.
func (c *HTTPClient) Enabled() bool {
	return c.cfg.Enabled()
}

// Wire shapes for the recommendations and search endpoints.
type trackList struct {
	Tracks []wireTrack `json:"tracks"`
}

type searchResponse struct {
	Tracks struct {
		Items []wireTrack `json:"items"`
	} `json:"tracks"`
}

type wireTrack struct {
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name   string `json:"name"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Popularity int `json:"popularity"`
}

// Recommendations returns tracks seeded by the given genres.
func (c *HTTPClient) Recommendations(ctx context.Context, genres []string, limit int) ([]models.MusicItem, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("seed_genres", strings.Join(genres, ","))
	params.Set("limit", strconv.Itoa(limit))

	tracks, err := c.fetchTracks(ctx, "recommendations", "/recommendations", params)
	if err != nil {
		return nil, err
	}
	return mapTracks(tracks), nil
}

// Search returns tracks matching a free-text query.
func (c *HTTPClient) Search(ctx context.Context, query string, limit int) ([]models.MusicItem, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	result, err := catalog.CastResult[searchResponse](c.cb.Execute(func() (interface{}, error) {
		start := time.Now()
		var out searchResponse
		err := c.doGet(ctx, "/search", params, &out)
		metrics.RecordProviderRequest("spotify", "search", time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}))
	if err != nil {
		return nil, err
	}
	return mapTracks(result.Tracks.Items), nil
}

func (c *HTTPClient) fetchTracks(ctx context.Context, operation, path string, params url.Values) ([]wireTrack, error) {
	result, err := catalog.CastResult[trackList](c.cb.Execute(func() (interface{}, error) {
		start := time.Now()
		var out trackList
		err := c.doGet(ctx, path, params, &out)
		metrics.RecordProviderRequest("spotify", operation, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}))
	if err != nil {
		return nil, err
	}
	return result.Tracks, nil
}

func (c *HTTPClient) doGet(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.cfg.APIBaseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return catalog.StatusError("spotify", resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode spotify response: %w", err)
	}

	return nil
}

// mapTracks converts wire tracks into MusicItems.
func mapTracks(tracks []wireTrack) []models.MusicItem {
	items := make([]models.MusicItem, 0, len(tracks))
	for _, t := range tracks {
		if t.Name == "" {
			continue
		}

		artists := make([]string, 0, len(t.Artists))
		for _, a := range t.Artists {
			artists = append(artists, a.Name)
		}
		artist := strings.Join(artists, ", ")

		imageURL := placeholderImage
		if len(t.Album.Images) > 0 && t.Album.Images[0].URL != "" {
			imageURL = t.Album.Images[0].URL
		}

		items = append(items, models.MusicItem{
			Name:       t.Name,
			Artist:     artist,
			Album:      t.Album.Name,
			URL:        t.ExternalURLs.Spotify,
			ImageURL:   imageURL,
			Language:   detectLanguage(t.Name, artist),
			Popularity: t.Popularity,
		})
	}
	return items
}

// detectLanguage labels a track "hindi" when its name or artist contains
// Devanagari script, otherwise "english".
func detectLanguage(name, artist string) string {
	if containsDevanagari(name) || containsDevanagari(artist) {
		return "hindi"
	}
	return "english"
}

func containsDevanagari(s string) bool {
	for _, r := range s {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
