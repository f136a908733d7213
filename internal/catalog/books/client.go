// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package books implements the Google Books volumes client. The API key is
// optional; without one the public quota applies.
package books

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

	"github.com/moodifyme/moodify/internal/catalog"
	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/metrics"
	"github.com/moodifyme/moodify/internal/models"
)

// Client is the Google Books surface the recommendation engine depends on.
type Client interface {
	// Search returns volumes matching a free-text query.
	Search(ctx context.Context, query string, limit int) ([]models.BookItem, error)
}

// HTTPClient is the production Google Books client.
type HTTPClient struct {
	cfg        config.BooksConfig
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[interface{}]
	logger     zerolog.Logger
}

// NewClient creates a Google Books client with circuit breaker protection.
func NewClient(cfg config.BooksConfig) *HTTPClient {
	return &HTTPClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cb:         catalog.NewBreaker("books-api"),
		logger:     logging.WithComponent("books"),
	}
}

// volumesResponse is the wire shape of the volumes endpoint.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Description   string   `json:"description"`
			AverageRating float64  `json:"averageRating"`
			PreviewLink   string   `json:"previewLink"`
			InfoLink      string   `json:"infoLink"`
			ImageLinks    struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Search returns volumes matching a free-text query. Volumes without a
// thumbnail image are skipped.
func (c *HTTPClient) Search(ctx context.Context, query string, limit int) ([]models.BookItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	if c.cfg.APIKey != "" {
		params.Set("key", c.cfg.APIKey)
	}

	result, err := catalog.CastResult[volumesResponse](c.cb.Execute(func() (interface{}, error) {
		start := time.Now()
		out, err := c.doGet(ctx, params)
		metrics.RecordProviderRequest("books", "search", time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return out, nil
	}))
	if err != nil {
		return nil, err
	}

	items := make([]models.BookItem, 0, len(result.Items))
	for _, v := range result.Items {
		info := v.VolumeInfo
		if info.Title == "" || info.ImageLinks.Thumbnail == "" {
			continue
		}

		externalURL := info.PreviewLink
		if externalURL == "" {
			externalURL = info.InfoLink
		}

		items = append(items, models.BookItem{
			Title:       info.Title,
			Author:      strings.Join(info.Authors, ", "),
			Description: info.Description,
			PosterURL:   info.ImageLinks.Thumbnail,
			ExternalURL: externalURL,
			Rating:      info.AverageRating,
		})
	}

	return items, nil
}

func (c *HTTPClient) doGet(ctx context.Context, params url.Values) (*volumesResponse, error) {
	reqURL := fmt.Sprintf("%s/volumes?%s", c.cfg.APIBaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("books request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, catalog.StatusError("books", resp)
	}

	var out volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode books response: %w", err)
	}

	return &out, nil
}
