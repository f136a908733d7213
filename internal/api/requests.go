// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxRequestBodySize bounds JSON request bodies.
const maxRequestBodySize = 1 << 20 // 1 MB

// TextEmotionRequest is the body for POST /api/v1/text_emotion.
type TextEmotionRequest struct {
	Text   string `json:"text" validate:"required"`
	UserID string `json:"user_id,omitempty"`
}

// EmotionRequest is the body for endpoints that take an explicit emotion.
type EmotionRequest struct {
	Emotion string `json:"emotion" validate:"required"`
	UserID  string `json:"user_id,omitempty"`
}

// RegisterRequest is the body for POST /api/v1/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest is the body for POST /api/v1/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// decodeJSON reads a bounded request body into dst. Unknown fields are
// tolerated; clients evolve faster than the server.
func decodeJSON(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("empty request body")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
