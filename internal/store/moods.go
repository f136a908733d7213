// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const moodKeyPrefix = "mood:"

// MoodEntry is one recorded emotion for a user.
type MoodEntry struct {
	UserID     string    `json:"user_id"`
	Emotion    string    `json:"emotion"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// MoodStore persists per-user mood history. Keys embed an RFC 3339
// nanosecond timestamp so a prefix scan yields chronological order.
type MoodStore struct {
	db *badger.DB
}

// NewMoodStore creates a mood store over an open database.
func NewMoodStore(db *badger.DB) *MoodStore {
	return &MoodStore{db: db}
}

func moodKey(userID string, at time.Time) []byte {
	return []byte(moodKeyPrefix + userID + ":" + at.UTC().Format(time.RFC3339Nano))
}

// Save records an emotion for a user at the current time.
func (s *MoodStore) Save(ctx context.Context, entry MoodEntry) error {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal mood entry: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(moodKey(entry.UserID, entry.RecordedAt), data)
	})
	if err != nil {
		return fmt.Errorf("save mood entry: %w", err)
	}
	return nil
}

// History returns a user's recorded moods, newest first, up to limit.
// A limit of zero or less means no limit.
func (s *MoodStore) History(ctx context.Context, userID string, limit int) ([]MoodEntry, error) {
	var entries []MoodEntry

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(moodKeyPrefix + userID + ":")

		// Reverse iteration seeks to the last possible key under the prefix.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) >= limit {
				break
			}

			var entry MoodEntry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			})
			if err != nil {
				return fmt.Errorf("unmarshal mood entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
