// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package config defines the Moodify configuration structure and its layered
// loader. Configuration comes from three sources with clear precedence:
// environment variables > YAML config file > built-in defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Moodify service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Store     StoreConfig     `koanf:"store"`
	Spotify   SpotifyConfig   `koanf:"spotify"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Books     BooksConfig     `koanf:"books"`
	Recommend RecommendConfig `koanf:"recommend"`
	Emotion   EmotionConfig   `koanf:"emotion"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// SecurityConfig holds authentication and inbound protection settings.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// StoreConfig holds the embedded Badger store settings.
type StoreConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// SpotifyConfig holds Spotify Web API credentials and endpoints.
type SpotifyConfig struct {
	ClientID     string        `koanf:"client_id"`
	ClientSecret string        `koanf:"client_secret"`
	TokenURL     string        `koanf:"token_url"`
	APIBaseURL   string        `koanf:"api_base_url"`
	Timeout      time.Duration `koanf:"timeout"`
}

// Enabled reports whether Spotify credentials are configured.
func (c SpotifyConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// TMDBConfig holds TMDB API settings.
type TMDBConfig struct {
	APIKey     string        `koanf:"api_key"`
	APIBaseURL string        `koanf:"api_base_url"`
	ImageBase  string        `koanf:"image_base"`
	Timeout    time.Duration `koanf:"timeout"`
}

// Enabled reports whether a TMDB API key is configured.
func (c TMDBConfig) Enabled() bool {
	return c.APIKey != ""
}

// BooksConfig holds Google Books API settings. The API key is optional.
type BooksConfig struct {
	APIKey     string        `koanf:"api_key"`
	APIBaseURL string        `koanf:"api_base_url"`
	Timeout    time.Duration `koanf:"timeout"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// Seed for the engine's random source. 0 means seed from the clock.
	Seed int64 `koanf:"seed"`

	// RequestDelay is the fixed pause between consecutive calls to the same
	// upstream provider while aggregating candidates.
	RequestDelay time.Duration `koanf:"request_delay"`

	ScreenTarget   int `koanf:"screen_target"`
	MusicTarget    int `koanf:"music_target"`
	BookTarget     int `koanf:"book_target"`
	CombinedScreen int `koanf:"combined_screen"`
}

// EmotionConfig configures the emotion classifiers.
type EmotionConfig struct {
	// TextMode selects the text classifier: "lexicon" or "static".
	TextMode string `koanf:"text_mode"`

	// StaticEmotion is the label returned by the static classifiers.
	StaticEmotion string `koanf:"static_emotion"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would prevent the
// service from operating correctly. It is called once after loading.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(c.Security.JWTSecret))
	}

	if c.Security.BcryptCost < 10 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("security.bcrypt_cost must be between 10 and 31, got %d", c.Security.BcryptCost)
	}

	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required unless store.in_memory is set")
	}

	if c.Recommend.ScreenTarget < 1 {
		return fmt.Errorf("recommend.screen_target must be positive, got %d", c.Recommend.ScreenTarget)
	}
	if c.Recommend.MusicTarget < 1 {
		return fmt.Errorf("recommend.music_target must be positive, got %d", c.Recommend.MusicTarget)
	}
	if c.Recommend.BookTarget < 1 {
		return fmt.Errorf("recommend.book_target must be positive, got %d", c.Recommend.BookTarget)
	}
	if c.Recommend.RequestDelay < 0 {
		return fmt.Errorf("recommend.request_delay must not be negative")
	}

	switch c.Emotion.TextMode {
	case "lexicon", "static":
	default:
		return fmt.Errorf("emotion.text_mode must be lexicon or static, got %q", c.Emotion.TextMode)
	}

	return nil
}
