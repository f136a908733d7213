// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package recommend

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Emotion
	}{
		{"lowercase passthrough", "happy", "happy"},
		{"uppercase", "HAPPY", "happy"},
		{"mixed case", "NoStAlGiC", "nostalgic"},
		{"surrounding whitespace", "  sad \n", "sad"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGenreTablesCoverSameEmotions(t *testing.T) {
	if len(musicGenres) != 20 {
		t.Errorf("musicGenres has %d entries, want 20", len(musicGenres))
	}

	for e := range musicGenres {
		if _, ok := movieGenreIDs[e]; !ok {
			t.Errorf("emotion %q missing from movieGenreIDs", e)
		}
		if _, ok := seriesGenreIDs[e]; !ok {
			t.Errorf("emotion %q missing from seriesGenreIDs", e)
		}
	}

	if len(movieGenreIDs) != len(musicGenres) {
		t.Errorf("movieGenreIDs has %d entries, want %d", len(movieGenreIDs), len(musicGenres))
	}
	if len(seriesGenreIDs) != len(musicGenres) {
		t.Errorf("seriesGenreIDs has %d entries, want %d", len(seriesGenreIDs), len(musicGenres))
	}
}

func TestGenreTablesHaveThreeEntriesEach(t *testing.T) {
	for e, genres := range musicGenres {
		if len(genres) != 3 {
			t.Errorf("musicGenres[%q] has %d seeds, want 3", e, len(genres))
		}
	}
	for e, ids := range movieGenreIDs {
		if len(ids) != 3 {
			t.Errorf("movieGenreIDs[%q] has %d IDs, want 3", e, len(ids))
		}
	}
	for e, ids := range seriesGenreIDs {
		if len(ids) != 3 {
			t.Errorf("seriesGenreIDs[%q] has %d IDs, want 3", e, len(ids))
		}
	}
}

func TestKnownEmotionLookups(t *testing.T) {
	if got := MusicGenres("happy"); got[0] != "pop" || got[1] != "happy" || got[2] != "dance" {
		t.Errorf("MusicGenres(happy) = %v", got)
	}
	if got := MovieGenres("angry"); got[0] != 28 || got[1] != 53 || got[2] != 27 {
		t.Errorf("MovieGenres(angry) = %v", got)
	}
	if got := SeriesGenres("bored"); got[0] != 10759 || got[1] != 10765 || got[2] != 10764 {
		t.Errorf("SeriesGenres(bored) = %v", got)
	}
}

func TestUnknownEmotionFallbacks(t *testing.T) {
	if got := MusicGenres("melancholy"); len(got) != 1 || got[0] != "pop" {
		t.Errorf("MusicGenres fallback = %v, want [pop]", got)
	}
	if got := MovieGenres("melancholy"); len(got) != 3 || got[0] != 35 || got[1] != 18 || got[2] != 28 {
		t.Errorf("MovieGenres fallback = %v, want [35 18 28]", got)
	}
	if got := SeriesGenres("melancholy"); len(got) != 3 || got[0] != 35 || got[1] != 18 || got[2] != 10759 {
		t.Errorf("SeriesGenres fallback = %v, want [35 18 10759]", got)
	}
}

func TestKnownEmotions(t *testing.T) {
	emotions := KnownEmotions()
	if len(emotions) != 20 {
		t.Fatalf("KnownEmotions returned %d labels, want 20", len(emotions))
	}

	seen := make(map[Emotion]bool)
	for _, e := range emotions {
		if seen[e] {
			t.Errorf("duplicate emotion %q", e)
		}
		seen[e] = true
	}
	if !seen["happy"] || !seen["playful"] {
		t.Errorf("expected happy and playful in %v", emotions)
	}
}
