// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package tmdb implements the TMDB API client used for movie and web series
// discovery. All calls go through a circuit breaker so a failing upstream
// degrades to the static fallback catalogs instead of stalling requests.
package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/moodifyme/moodify/internal/catalog"
	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/metrics"
	"github.com/moodifyme/moodify/internal/models"
)

// Kind selects between the movie and TV catalogs.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// ErrNotConfigured is returned when no TMDB API key is configured.
var ErrNotConfigured = fmt.Errorf("tmdb api key is not configured")

// Client is the TMDB API surface the recommendation engine depends on.
type Client interface {
	// Discover returns one page of genre-filtered results plus the total
	// page count reported by TMDB.
	Discover(ctx context.Context, kind Kind, genreID, page int) ([]models.ScreenItem, int, error)

	// Popular returns the first page of the popular listing.
	Popular(ctx context.Context, kind Kind) ([]models.ScreenItem, error)

	// Enabled reports whether the client has credentials to make calls.
	Enabled() bool
}

// HTTPClient is the production TMDB client.
type HTTPClient struct {
	cfg        config.TMDBConfig
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[interface{}]
	logger     zerolog.Logger
}

// NewClient creates a TMDB client with circuit breaker protection.
func NewClient(cfg config.TMDBConfig) *HTTPClient {
	return &HTTPClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         catalog.NewBreaker("tmdb-api"),
		logger:     logging.WithComponent("tmdb"),
	}
}

// Enabled reports whether a TMDB API key is configured.
func (c *HTTPClient) Enabled() bool {
	return c.cfg.Enabled()
}

// discoverPage is the wire shape of the discover and popular endpoints.
type discoverPage struct {
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Results    []wireItem `json:"results"`
}

type wireItem struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// Discover fetches one page of genre-filtered results.
func (c *HTTPClient) Discover(ctx context.Context, kind Kind, genreID, page int) ([]models.ScreenItem, int, error) {
	if !c.Enabled() {
		return nil, 0, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("page", strconv.Itoa(page))

	result, err := c.fetchPage(ctx, "discover", fmt.Sprintf("/discover/%s", kind), params)
	if err != nil {
		return nil, 0, err
	}

	return c.mapItems(kind, result.Results), result.TotalPages, nil
}

// Popular fetches the first page of the popular listing.
func (c *HTTPClient) Popular(ctx context.Context, kind Kind) ([]models.ScreenItem, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("page", "1")

	result, err := c.fetchPage(ctx, "popular", fmt.Sprintf("/%s/popular", kind), params)
	if err != nil {
		return nil, err
	}

	return c.mapItems(kind, result.Results), nil
}

// fetchPage performs one TMDB GET wrapped in the circuit breaker.
func (c *HTTPClient) fetchPage(ctx context.Context, operation, path string, params url.Values) (*discoverPage, error) {
	return catalog.CastResult[discoverPage](c.cb.Execute(func() (interface{}, error) {
		start := time.Now()
		page, err := c.doGet(ctx, path, params)
		metrics.RecordProviderRequest("tmdb", operation, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return page, nil
	}))
}

func (c *HTTPClient) doGet(ctx context.Context, path string, params url.Values) (*discoverPage, error) {
	params.Set("api_key", c.cfg.APIKey)
	params.Set("language", "en-US")
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", "false")

	reqURL := fmt.Sprintf("%s%s?%s", c.cfg.APIBaseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, catalog.StatusError("tmdb", resp)
	}

	var page discoverPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return &page, nil
}

// mapItems converts wire items to ScreenItems, skipping entries without an
// ID or a poster image.
func (c *HTTPClient) mapItems(kind Kind, items []wireItem) []models.ScreenItem {
	mapped := make([]models.ScreenItem, 0, len(items))
	for _, item := range items {
		if item.ID == 0 || item.PosterPath == "" {
			continue
		}

		title := item.Title
		if title == "" {
			title = item.Name
		}
		if title == "" {
			continue
		}

		date := item.ReleaseDate
		if date == "" {
			date = item.FirstAirDate
		}
		year := ""
		if len(date) >= 4 {
			year = date[:4]
		}

		mapped = append(mapped, models.ScreenItem{
			Title:       title,
			Year:        year,
			Description: item.Overview,
			PosterURL:   c.cfg.ImageBase + item.PosterPath,
			ExternalURL: fmt.Sprintf("https://www.themoviedb.org/%s/%d", kind, item.ID),
			TrailerURL:  trailerSearchURL(title, year),
			Rating:      item.VoteAverage,
		})
	}
	return mapped
}

// trailerSearchURL builds a YouTube search link for an item's trailer.
func trailerSearchURL(title, year string) string {
	query := url.QueryEscape(fmt.Sprintf("%s %s trailer", title, year))
	return "https://www.youtube.com/results?search_query=" + query
}
