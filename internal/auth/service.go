// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package auth implements account registration, credential verification,
// and JWT session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/logging"
	"github.com/moodifyme/moodify/internal/metrics"
	"github.com/moodifyme/moodify/internal/store"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so responses don't reveal which usernames exist.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// ErrUserExists is returned when registering a taken username.
var ErrUserExists = store.ErrUserExists

// Service handles registration and login against the user store.
type Service struct {
	users      *store.UserStore
	jwt        *JWTManager
	bcryptCost int
	logger     zerolog.Logger
}

// NewService builds an auth service. The bcrypt cost comes from config and
// is validated there.
func NewService(users *store.UserStore, cfg config.SecurityConfig) (*Service, error) {
	jwtManager, err := NewJWTManager(cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		users:      users,
		jwt:        jwtManager,
		bcryptCost: cfg.BcryptCost,
		logger:     logging.WithComponent("auth"),
	}, nil
}

// Register creates an account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, username, password string) (*store.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		metrics.RecordAuthAttempt("register", "error")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			metrics.RecordAuthAttempt("register", "conflict")
			return nil, ErrUserExists
		}
		metrics.RecordAuthAttempt("register", "error")
		return nil, err
	}

	metrics.RecordAuthAttempt("register", "success")
	s.logger.Info().Str("username", username).Msg("user registered")
	return user, nil
}

// Login verifies credentials and returns a signed session token. Unknown
// usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, *store.User, error) {
	user, err := s.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			metrics.RecordAuthAttempt("login", "failure")
			return "", nil, ErrInvalidCredentials
		}
		metrics.RecordAuthAttempt("login", "error")
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.RecordAuthAttempt("login", "failure")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		metrics.RecordAuthAttempt("login", "error")
		return "", nil, err
	}

	metrics.RecordAuthAttempt("login", "success")
	s.logger.Info().Str("username", username).Msg("user logged in")
	return token, user, nil
}

// ValidateToken verifies a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.jwt.ValidateToken(tokenString)
}
