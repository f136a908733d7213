// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/moodifyme/moodify/internal/auth"
	"github.com/moodifyme/moodify/internal/catalog/tmdb"
	"github.com/moodifyme/moodify/internal/emotion"
	"github.com/moodifyme/moodify/internal/models"
	"github.com/moodifyme/moodify/internal/recommend"
	"github.com/moodifyme/moodify/internal/store"
)

type fakeEngine struct {
	music    func(e recommend.Emotion) ([]models.MusicItem, error)
	all      func(e recommend.Emotion) models.Recommendations
	allCalls int
}

func (f *fakeEngine) Music(_ context.Context, e recommend.Emotion) ([]models.MusicItem, error) {
	if f.music == nil {
		return []models.MusicItem{{Name: "track"}}, nil
	}
	return f.music(e)
}

func (f *fakeEngine) Movies(context.Context, recommend.Emotion) []models.ScreenItem {
	return []models.ScreenItem{{Title: "movie"}}
}

func (f *fakeEngine) Series(context.Context, recommend.Emotion) []models.ScreenItem {
	return []models.ScreenItem{{Title: "series"}}
}

func (f *fakeEngine) Books(context.Context, recommend.Emotion) ([]models.BookItem, error) {
	return []models.BookItem{{Title: "book"}}, nil
}

func (f *fakeEngine) All(_ context.Context, e recommend.Emotion) models.Recommendations {
	f.allCalls++
	if f.all == nil {
		return models.Recommendations{
			Music:     []models.MusicItem{{Name: "track"}},
			Movies:    []models.ScreenItem{{Title: "movie"}},
			WebSeries: []models.ScreenItem{{Title: "series"}},
			Books:     []models.BookItem{{Title: "book"}},
		}
	}
	return f.all(e)
}

type fakeAuthService struct {
	registerErr error
	loginErr    error
}

func (f *fakeAuthService) Register(_ context.Context, username, _ string) (*store.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &store.User{ID: "u1", Username: username}, nil
}

func (f *fakeAuthService) Login(_ context.Context, username, _ string) (string, *store.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "signed-token", &store.User{ID: "u1", Username: username}, nil
}

type fakeMoodRecorder struct {
	saved   []store.MoodEntry
	saveErr error
	entries []store.MoodEntry
}

func (f *fakeMoodRecorder) Save(_ context.Context, entry store.MoodEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, entry)
	return nil
}

func (f *fakeMoodRecorder) History(_ context.Context, _ string, limit int) ([]store.MoodEntry, error) {
	if limit > 0 && len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

type fakeTMDBClient struct {
	enabled bool
	popular func() ([]models.ScreenItem, error)
}

func (f *fakeTMDBClient) Discover(context.Context, tmdb.Kind, int, int) ([]models.ScreenItem, int, error) {
	return nil, 0, nil
}

func (f *fakeTMDBClient) Popular(context.Context, tmdb.Kind) ([]models.ScreenItem, error) {
	return f.popular()
}

func (f *fakeTMDBClient) Enabled() bool { return f.enabled }

type testDeps struct {
	engine *fakeEngine
	auth   *fakeAuthService
	moods  *fakeMoodRecorder
	tmdb   *fakeTMDBClient
}

func newTestHandler(deps *testDeps) *Handler {
	if deps.engine == nil {
		deps.engine = &fakeEngine{}
	}
	if deps.auth == nil {
		deps.auth = &fakeAuthService{}
	}
	if deps.moods == nil {
		deps.moods = &fakeMoodRecorder{}
	}
	if deps.tmdb == nil {
		deps.tmdb = &fakeTMDBClient{}
	}

	return NewHandler(
		deps.engine,
		deps.auth,
		emotion.NewLexiconClassifier(),
		&emotion.StaticFaceClassifier{Emotion: "happy"},
		deps.moods,
		deps.tmdb,
		models.ProviderStatus{Spotify: true, TMDB: true, Books: true},
	)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return resp
}

func TestTextEmotion(t *testing.T) {
	deps := &testDeps{}
	h := newTestHandler(deps)

	rec := postJSON(t, h.TextEmotion, "/api/v1/text_emotion", TextEmotionRequest{
		Text:   "I am so happy today",
		UserID: "u1",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}

	data := resp.Data.(map[string]interface{})
	if data["emotion"] != "happy" {
		t.Errorf("emotion = %v, want happy", data["emotion"])
	}

	if len(deps.moods.saved) != 1 {
		t.Fatalf("saved %d mood entries, want 1", len(deps.moods.saved))
	}
	saved := deps.moods.saved[0]
	if saved.UserID != "u1" || saved.Emotion != "happy" || saved.Source != "text" {
		t.Errorf("saved entry = %+v", saved)
	}
}

func TestTextEmotionMissingText(t *testing.T) {
	h := newTestHandler(&testDeps{})

	rec := postJSON(t, h.TextEmotion, "/api/v1/text_emotion", map[string]string{"user_id": "u1"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error == nil || resp.Error.Code != ErrCodeValidation {
		t.Errorf("error = %+v, want %s", resp.Error, ErrCodeValidation)
	}
}

func TestTextEmotionAnonymousSkipsHistory(t *testing.T) {
	deps := &testDeps{}
	h := newTestHandler(deps)

	rec := postJSON(t, h.TextEmotion, "/api/v1/text_emotion", TextEmotionRequest{Text: "feeling sad"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(deps.moods.saved) != 0 {
		t.Errorf("saved %d entries for anonymous request, want 0", len(deps.moods.saved))
	}
}

func TestTextEmotionDegradesOnMusicFailure(t *testing.T) {
	deps := &testDeps{
		engine: &fakeEngine{
			music: func(recommend.Emotion) ([]models.MusicItem, error) {
				return nil, errors.New("spotify down")
			},
		},
	}
	h := newTestHandler(deps)

	rec := postJSON(t, h.TextEmotion, "/api/v1/text_emotion", TextEmotionRequest{Text: "happy"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite provider failure", rec.Code)
	}

	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	recs, ok := data["recommendations"].([]interface{})
	if !ok || len(recs) != 0 {
		t.Errorf("recommendations = %v, want empty list", data["recommendations"])
	}
}

func TestTextEmotionSaveFailureDoesNotFailRequest(t *testing.T) {
	deps := &testDeps{
		moods: &fakeMoodRecorder{saveErr: errors.New("disk full")},
	}
	h := newTestHandler(deps)

	rec := postJSON(t, h.TextEmotion, "/api/v1/text_emotion", TextEmotionRequest{
		Text:   "so happy",
		UserID: "u1",
	})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 despite save failure", rec.Code)
	}
}

func TestMusicRecommendation(t *testing.T) {
	h := newTestHandler(&testDeps{})

	rec := postJSON(t, h.MusicRecommendation, "/api/v1/music_recommendation", EmotionRequest{Emotion: "HAPPY"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	if data["emotion"] != "happy" {
		t.Errorf("emotion = %v, want normalized happy", data["emotion"])
	}
}

func TestMusicRecommendationMissingEmotion(t *testing.T) {
	h := newTestHandler(&testDeps{})

	rec := postJSON(t, h.MusicRecommendation, "/api/v1/music_recommendation", map[string]string{})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRecommendations(t *testing.T) {
	deps := &testDeps{}
	h := newTestHandler(deps)

	rec := postJSON(t, h.Recommendations, "/api/v1/recommendations", EmotionRequest{
		Emotion: "bored",
		UserID:  "u1",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if deps.engine.allCalls != 1 {
		t.Errorf("engine.All called %d times, want 1", deps.engine.allCalls)
	}

	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	recs := data["recommendations"].(map[string]interface{})
	for _, key := range []string{"music", "movies", "webseries", "stories"} {
		if _, ok := recs[key]; !ok {
			t.Errorf("recommendations missing %q", key)
		}
	}

	if len(deps.moods.saved) != 1 || deps.moods.saved[0].Source != "explicit" {
		t.Errorf("saved = %+v, want one explicit entry", deps.moods.saved)
	}
}

func TestRecommendationsWireShape(t *testing.T) {
	deps := &testDeps{
		engine: &fakeEngine{
			all: func(recommend.Emotion) models.Recommendations {
				return models.Recommendations{
					Music:     []models.MusicItem{{Name: "track", Popularity: 80}},
					Movies:    []models.ScreenItem{{Title: "movie", Rating: 8.1}},
					WebSeries: []models.ScreenItem{{Title: "series", Rating: 7.9}},
					Books:     []models.BookItem{{Title: "book", Author: "someone", Rating: 4.5}},
				}
			},
		},
	}
	h := newTestHandler(deps)

	rec := postJSON(t, h.Recommendations, "/api/v1/recommendations", EmotionRequest{Emotion: "happy"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data struct {
			Recommendations map[string][]map[string]interface{} `json:"recommendations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	recs := resp.Data.Recommendations

	if _, ok := recs["books"]; ok {
		t.Error(`book list serialized under "books", want "stories"`)
	}
	stories := recs["stories"]
	if len(stories) != 1 || stories[0]["title"] != "book" {
		t.Fatalf("stories = %+v, want the one book item", stories)
	}

	for key, items := range recs {
		if key == "music" {
			continue
		}
		for _, item := range items {
			if _, ok := item["rating"]; ok {
				t.Errorf("%s item %v exposes rating", key, item)
			}
		}
	}
	if _, ok := recs["music"][0]["popularity"]; ok {
		t.Errorf("music item %v exposes popularity", recs["music"][0])
	}
}

func TestRecommendationsAlwaysSucceedsOnDegradation(t *testing.T) {
	deps := &testDeps{
		engine: &fakeEngine{
			all: func(recommend.Emotion) models.Recommendations {
				return models.Recommendations{
					Music: []models.MusicItem{},
					Books: []models.BookItem{},
				}
			},
		},
	}
	h := newTestHandler(deps)

	rec := postJSON(t, h.Recommendations, "/api/v1/recommendations", EmotionRequest{Emotion: "happy"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestTestTMDBNotConfigured(t *testing.T) {
	h := newTestHandler(&testDeps{tmdb: &fakeTMDBClient{enabled: false}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test_tmdb_api", nil)
	rec := httptest.NewRecorder()
	h.TestTMDB(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error == nil || resp.Error.Code != ErrCodeProvider {
		t.Errorf("error = %+v, want %s", resp.Error, ErrCodeProvider)
	}
}

func TestTestTMDBUpstreamFailure(t *testing.T) {
	h := newTestHandler(&testDeps{tmdb: &fakeTMDBClient{
		enabled: true,
		popular: func() ([]models.ScreenItem, error) { return nil, errors.New("401 unauthorized") },
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test_tmdb_api", nil)
	rec := httptest.NewRecorder()
	h.TestTMDB(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestTestTMDBSampleCapped(t *testing.T) {
	items := make([]models.ScreenItem, 20)
	for i := range items {
		items[i] = models.ScreenItem{Title: "movie"}
	}

	h := newTestHandler(&testDeps{tmdb: &fakeTMDBClient{
		enabled: true,
		popular: func() ([]models.ScreenItem, error) { return items, nil },
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test_tmdb_api", nil)
	rec := httptest.NewRecorder()
	h.TestTMDB(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	if sample := data["sample"].([]interface{}); len(sample) != 5 {
		t.Errorf("sample has %d items, want 5", len(sample))
	}
}

func TestRegister(t *testing.T) {
	h := newTestHandler(&testDeps{})

	rec := postJSON(t, h.Register, "/api/v1/register", RegisterRequest{
		Username: "alice",
		Password: "sup3rsecret",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201\nbody: %s", rec.Code, rec.Body.String())
	}
	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	if data["username"] != "alice" {
		t.Errorf("username = %v, want alice", data["username"])
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := newTestHandler(&testDeps{auth: &fakeAuthService{registerErr: auth.ErrUserExists}})

	rec := postJSON(t, h.Register, "/api/v1/register", RegisterRequest{
		Username: "alice",
		Password: "sup3rsecret",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error == nil || resp.Error.Code != ErrCodeUserExists {
		t.Errorf("error = %+v, want %s", resp.Error, ErrCodeUserExists)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	h := newTestHandler(&testDeps{})

	rec := postJSON(t, h.Register, "/api/v1/register", RegisterRequest{
		Username: "alice",
		Password: "short",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	h := newTestHandler(&testDeps{})

	rec := postJSON(t, h.Login, "/api/v1/login", LoginRequest{
		Username: "alice",
		Password: "sup3rsecret",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := decodeEnvelope(t, rec).Data.(map[string]interface{})
	if data["token"] != "signed-token" {
		t.Errorf("token = %v, want signed-token", data["token"])
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newTestHandler(&testDeps{auth: &fakeAuthService{loginErr: auth.ErrInvalidCredentials}})

	rec := postJSON(t, h.Login, "/api/v1/login", LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error == nil || resp.Error.Code != ErrCodeAuthentication {
		t.Errorf("error = %+v, want %s", resp.Error, ErrCodeAuthentication)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&testDeps{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body %q does not report healthy", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), Version) {
		t.Errorf("body %q does not report version %s", rec.Body.String(), Version)
	}
	if !strings.Contains(rec.Body.String(), `"providers"`) {
		t.Errorf("body %q does not report provider flags", rec.Body.String())
	}
}
