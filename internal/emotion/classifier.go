// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

// Package emotion turns user input into a canonical emotion label. Text is
// classified either by a keyword lexicon or by a fixed configured label;
// facial input is validated and classified by the configured face backend.
package emotion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/moodifyme/moodify/internal/config"
	"github.com/moodifyme/moodify/internal/recommend"
)

var (
	// ErrEmptyText is returned when no classifiable text was provided.
	ErrEmptyText = errors.New("emotion: empty text")

	// ErrInvalidImage is returned when the payload is not a decodable image.
	ErrInvalidImage = errors.New("emotion: payload is not an image")
)

// TextClassifier maps free text to an emotion label.
type TextClassifier interface {
	Classify(ctx context.Context, text string) (recommend.Emotion, error)
}

// FaceClassifier maps a captured face image to an emotion label.
type FaceClassifier interface {
	Classify(ctx context.Context, image []byte) (recommend.Emotion, error)
}

// NewFromConfig builds the text and face classifiers selected by config.
func NewFromConfig(cfg config.EmotionConfig) (TextClassifier, FaceClassifier, error) {
	static := recommend.Normalize(cfg.StaticEmotion)
	if static == "" {
		static = "happy"
	}

	face := &StaticFaceClassifier{Emotion: static}

	switch cfg.TextMode {
	case "lexicon":
		return NewLexiconClassifier(), face, nil
	case "static":
		return &StaticClassifier{Emotion: static}, face, nil
	default:
		return nil, nil, fmt.Errorf("emotion: unknown text mode %q", cfg.TextMode)
	}
}

// StaticClassifier always answers with a fixed emotion. Useful for demos
// and for deployments without a classification backend.
type StaticClassifier struct {
	Emotion recommend.Emotion
}

func (c *StaticClassifier) Classify(_ context.Context, text string) (recommend.Emotion, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return c.Emotion, nil
}

// StaticFaceClassifier validates that the payload is an image and answers
// with a fixed emotion.
type StaticFaceClassifier struct {
	Emotion recommend.Emotion
}

func (c *StaticFaceClassifier) Classify(_ context.Context, image []byte) (recommend.Emotion, error) {
	if len(image) == 0 {
		return "", ErrInvalidImage
	}
	if !strings.HasPrefix(http.DetectContentType(image), "image/") {
		return "", ErrInvalidImage
	}
	return c.Emotion, nil
}

// LexiconClassifier scores text against a keyword lexicon. The emotion with
// the most keyword hits wins; ties go to the emotion seen earliest in the
// text. Text with no hits classifies as neutral.
type LexiconClassifier struct {
	lexicon map[string]recommend.Emotion
}

// NewLexiconClassifier builds a classifier over the built-in lexicon.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{lexicon: defaultLexicon}
}

func (c *LexiconClassifier) Classify(_ context.Context, text string) (recommend.Emotion, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	counts := make(map[recommend.Emotion]int)
	firstSeen := make(map[recommend.Emotion]int)

	for i, token := range tokenize(text) {
		e, ok := c.lexicon[token]
		if !ok {
			continue
		}
		counts[e]++
		if _, seen := firstSeen[e]; !seen {
			firstSeen[e] = i
		}
	}

	if len(counts) == 0 {
		return "neutral", nil
	}

	var best recommend.Emotion
	for e, n := range counts {
		if best == "" {
			best = e
			continue
		}
		if n > counts[best] || (n == counts[best] && firstSeen[e] < firstSeen[best]) {
			best = e
		}
	}

	return best, nil
}

// tokenize lower-cases the text and splits it on anything that is not a
// letter, so punctuation and digits never leak into lexicon lookups.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// defaultLexicon maps mood keywords to canonical emotions. Keywords are
// matched as whole lower-case tokens.
var defaultLexicon = map[string]recommend.Emotion{
	// happy
	"happy": "happy", "joy": "happy", "joyful": "happy", "glad": "happy",
	"great": "happy", "wonderful": "happy", "cheerful": "happy", "delighted": "happy",

	// sad
	"sad": "sad", "unhappy": "sad", "down": "sad", "depressed": "sad",
	"heartbroken": "sad", "miserable": "sad", "crying": "sad", "tearful": "sad",

	// angry
	"angry": "angry", "mad": "angry", "furious": "angry", "rage": "angry",
	"annoyed": "angry", "irritated": "angry", "livid": "angry",

	// relaxed
	"relaxed": "relaxed", "calm": "relaxed", "peaceful": "relaxed",
	"chill": "relaxed", "serene": "relaxed", "mellow": "relaxed",

	// energetic
	"energetic": "energetic", "pumped": "energetic", "hyper": "energetic",
	"active": "energetic", "energized": "energetic",

	// nostalgic
	"nostalgic": "nostalgic", "memories": "nostalgic", "reminiscing": "nostalgic",
	"nostalgia": "nostalgic", "throwback": "nostalgic",

	// anxious
	"anxious": "anxious", "nervous": "anxious", "worried": "anxious",
	"stressed": "anxious", "uneasy": "anxious", "panic": "anxious",

	// hopeful
	"hopeful": "hopeful", "optimistic": "hopeful", "hope": "hopeful",
	"encouraged": "hopeful",

	// proud
	"proud": "proud", "accomplished": "proud", "achieved": "proud",
	"triumphant": "proud",

	// lonely
	"lonely": "lonely", "alone": "lonely", "isolated": "lonely",
	"loneliness": "lonely", "abandoned": "lonely",

	// amused
	"amused": "amused", "funny": "amused", "hilarious": "amused",
	"laughing": "amused", "giggling": "amused",

	// frustrated
	"frustrated": "frustrated", "stuck": "frustrated", "fedup": "frustrated",
	"exasperated": "frustrated",

	// romantic
	"romantic": "romantic", "love": "romantic", "crush": "romantic",
	"smitten": "romantic", "adore": "romantic",

	// surprised
	"surprised": "surprised", "shocked": "surprised", "astonished": "surprised",
	"stunned": "surprised", "amazed": "surprised",

	// confused
	"confused": "confused", "puzzled": "confused", "lost": "confused",
	"baffled": "confused", "bewildered": "confused",

	// excited
	"excited": "excited", "thrilled": "excited", "stoked": "excited",
	"eager": "excited", "ecstatic": "excited",

	// shy
	"shy": "shy", "timid": "shy", "bashful": "shy", "awkward": "shy",

	// bored
	"bored": "bored", "boring": "bored", "boredom": "bored", "dull": "bored",

	// playful
	"playful": "playful", "silly": "playful", "goofy": "playful",
	"mischievous": "playful",

	// neutral
	"fine": "neutral", "okay": "neutral", "meh": "neutral", "whatever": "neutral",
}
