// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/moodifyme/moodify/internal/auth"
	"github.com/moodifyme/moodify/internal/catalog/tmdb"
	"github.com/moodifyme/moodify/internal/emotion"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/metrics"
	"github.com/moodifyme/moodify/internal/models"
	"github.com/moodifyme/moodify/internal/recommend"
	"github.com/moodifyme/moodify/internal/store"
	"github.com/moodifyme/moodify/internal/validation"
)

// maxImageSize bounds uploaded face images.
const maxImageSize = 10 << 20 // 10 MB

// defaultHistoryLimit caps history responses unless the client asks for less.
const defaultHistoryLimit = 50

// RecommendEngine is the recommendation surface the handlers depend on.
// Satisfied by *recommend.Engine.
type RecommendEngine interface {
	Music(ctx context.Context, e recommend.Emotion) ([]models.MusicItem, error)
	Movies(ctx context.Context, e recommend.Emotion) []models.ScreenItem
	Series(ctx context.Context, e recommend.Emotion) []models.ScreenItem
	Books(ctx context.Context, e recommend.Emotion) ([]models.BookItem, error)
	All(ctx context.Context, e recommend.Emotion) models.Recommendations
}

// AuthService is the account surface the handlers depend on.
// Satisfied by *auth.Service.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*store.User, error)
	Login(ctx context.Context, username, password string) (string, *store.User, error)
}

// MoodRecorder persists and reads per-user mood history.
// Satisfied by *store.MoodStore.
type MoodRecorder interface {
	Save(ctx context.Context, entry store.MoodEntry) error
	History(ctx context.Context, userID string, limit int) ([]store.MoodEntry, error)
}

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler implements all HTTP endpoints.
type Handler struct {
	engine    RecommendEngine
	auth      AuthService
	text      emotion.TextClassifier
	face      emotion.FaceClassifier
	moods     MoodRecorder
	tmdb      tmdb.Client
	providers models.ProviderStatus
	startTime time.Time
	logger    zerolog.Logger
}

// NewHandler wires the endpoint handlers to their dependencies.
func NewHandler(engine RecommendEngine, authSvc AuthService, text emotion.TextClassifier, face emotion.FaceClassifier, moods MoodRecorder, tmdbClient tmdb.Client, providers models.ProviderStatus) *Handler {
	return &Handler{
		engine:    engine,
		auth:      authSvc,
		text:      text,
		face:      face,
		moods:     moods,
		tmdb:      tmdbClient,
		providers: providers,
		startTime: time.Now(),
		logger:    logging.WithComponent("api"),
	}
}

// EmotionResponse is the payload for emotion-input endpoints.
type EmotionResponse struct {
	Emotion         string      `json:"emotion"`
	Recommendations interface{} `json:"recommendations"`
}

// TextEmotion classifies free text and returns music recommendations.
// POST /api/v1/text_emotion
func (h *Handler) TextEmotion(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TextEmotionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	label, err := h.text.Classify(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, emotion.ErrEmptyText) {
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "text must not be empty")
			return
		}
		logging.CtxErr(r.Context(), err).Msg("text classification failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "emotion classification failed")
		return
	}

	h.recordMood(r.Context(), req.UserID, label, "text")

	respondSuccess(w, start, EmotionResponse{
		Emotion:         string(label),
		Recommendations: h.musicOrEmpty(r.Context(), label),
	})
}

// FacialEmotion classifies an uploaded face image and returns music
// recommendations. Requires authentication.
// POST /api/v1/facial_emotion
func (h *Handler) FacialEmotion(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "failed to read uploaded file")
		return
	}

	label, err := h.face.Classify(r.Context(), image)
	if err != nil {
		if errors.Is(err, emotion.ErrInvalidImage) {
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "uploaded file is not an image")
			return
		}
		logging.CtxErr(r.Context(), err).Msg("facial classification failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "emotion detection failed")
		return
	}

	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		h.recordMood(r.Context(), claims.UserID, label, "facial")
	}

	respondSuccess(w, start, EmotionResponse{
		Emotion:         string(label),
		Recommendations: h.musicOrEmpty(r.Context(), label),
	})
}

// MusicRecommendation returns tracks for an explicit emotion.
// POST /api/v1/music_recommendation
func (h *Handler) MusicRecommendation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EmotionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	label := recommend.Normalize(req.Emotion)

	respondSuccess(w, start, EmotionResponse{
		Emotion:         string(label),
		Recommendations: h.musicOrEmpty(r.Context(), label),
	})
}

// Recommendations returns the combined payload for an explicit emotion.
// Provider failures degrade their own media type; the endpoint always
// answers 200 once the request validates.
// POST /api/v1/recommendations
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EmotionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	label := recommend.Normalize(req.Emotion)
	h.recordMood(r.Context(), req.UserID, label, "explicit")

	respondSuccess(w, start, EmotionResponse{
		Emotion:         string(label),
		Recommendations: h.engine.All(r.Context(), label),
	})
}

// TestTMDB verifies TMDB connectivity by fetching a small popular sample.
// GET /api/v1/test_tmdb_api
func (h *Handler) TestTMDB(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.tmdb.Enabled() {
		respondError(w, http.StatusInternalServerError, ErrCodeProvider, "TMDB API key is not configured")
		return
	}

	items, err := h.tmdb.Popular(r.Context(), tmdb.KindMovie)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("tmdb connectivity check failed")
		respondError(w, http.StatusInternalServerError, ErrCodeProvider, "TMDB request failed")
		return
	}

	if len(items) > 5 {
		items = items[:5]
	}

	respondSuccess(w, start, map[string]interface{}{
		"provider": "tmdb",
		"sample":   items,
	})
}

// Health reports service liveness, version, uptime, and which providers
// have credentials configured.
// GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, time.Now(), models.HealthStatus{
		Status:    "healthy",
		Version:   Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Providers: h.providers,
	})
}

// Register creates an account.
// POST /api/v1/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			respondError(w, http.StatusBadRequest, ErrCodeUserExists, "username is already taken")
			return
		}
		logging.CtxErr(r.Context(), err).Msg("registration failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "registration failed")
		return
	}

	respondJSON(w, http.StatusCreated, &models.APIResponse{
		Status: "success",
		Data: map[string]string{
			"id":       user.ID,
			"username": user.Username,
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// Login verifies credentials and returns a session token.
// POST /api/v1/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if ve := validation.ValidateStruct(&req); ve != nil {
		respondValidationError(w, ve)
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, ErrCodeAuthentication, "invalid username or password")
			return
		}
		logging.CtxErr(r.Context(), err).Msg("login failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "login failed")
		return
	}

	respondSuccess(w, start, map[string]interface{}{
		"token": token,
		"user": map[string]string{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// History returns the authenticated user's mood history, newest first.
// GET /api/v1/history
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrCodeAuthentication, "authentication required")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "limit must be a positive integer")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	entries, err := h.moods.History(r.Context(), claims.UserID, limit)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("history lookup failed")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "failed to load mood history")
		return
	}

	if entries == nil {
		entries = []store.MoodEntry{}
	}
	respondSuccess(w, start, map[string]interface{}{"history": entries})
}

// musicOrEmpty fetches music recommendations, degrading to an empty list on
// provider failure so emotion endpoints still answer.
func (h *Handler) musicOrEmpty(ctx context.Context, label recommend.Emotion) []models.MusicItem {
	items, err := h.engine.Music(ctx, label)
	if err != nil {
		logging.CtxErr(ctx, err).Str("emotion", string(label)).Msg("music recommendations unavailable")
		return []models.MusicItem{}
	}
	return items
}

// recordMood saves a history entry when a user is known. Storage failures
// are logged but never fail the request.
func (h *Handler) recordMood(ctx context.Context, userID string, label recommend.Emotion, source string) {
	if userID == "" {
		return
	}

	err := h.moods.Save(ctx, store.MoodEntry{
		UserID:  userID,
		Emotion: string(label),
		Source:  source,
	})
	if err != nil {
		metrics.RecordMoodHistoryWrite("error")
		logging.CtxErr(ctx, err).Str("user_id", userID).Msg("failed to save mood history")
		return
	}
	metrics.RecordMoodHistoryWrite("success")
}
