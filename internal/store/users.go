// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const userKeyPrefix = "user:"

var (
	// ErrUserExists is returned when registering a username that is taken.
	ErrUserExists = errors.New("store: user already exists")

	// ErrUserNotFound is returned when a username has no record.
	ErrUserNotFound = errors.New("store: user not found")
)

// User is a registered account. The password hash never leaves the store
// layer except to the auth service for comparison.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStore persists accounts keyed by username.
type UserStore struct {
	db *badger.DB
}

// NewUserStore creates a user store over an open database.
func NewUserStore(db *badger.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user with a generated ID. Usernames are unique;
// inserting a taken username returns ErrUserExists.
func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	user := &User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}

	key := []byte(userKeyPrefix + username)

	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return ErrUserExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check username: %w", err)
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get returns the user for a username, or ErrUserNotFound.
func (s *UserStore) Get(ctx context.Context, username string) (*User, error) {
	var user User

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userKeyPrefix + username))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
