// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package models defines the wire types shared by the HTTP API and the
// recommendation engine.
package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "emotion is required"
//	  },
//	  "metadata": {"timestamp": "2026-08-31T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common error codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - AUTHENTICATION_ERROR: invalid or missing credentials
//   - USER_EXISTS: registration with a taken username
//   - PROVIDER_ERROR: upstream provider failure
//   - NOT_FOUND: resource doesn't exist
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ProviderStatus reports which upstream providers have credentials configured.
type ProviderStatus struct {
	Spotify bool `json:"spotify"`
	TMDB    bool `json:"tmdb"`
	Books   bool `json:"books"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string         `json:"status"`
	Version   string         `json:"version"`
	Uptime    float64        `json:"uptime"`
	Providers ProviderStatus `json:"providers"`
}
