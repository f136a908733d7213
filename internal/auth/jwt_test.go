// Moodify - Mood-Based Media Recommendations
// Copyright 2026 Moodify Authors
// SPDX-License-Identifier: Apache-2.0
// https://github.com/moodifyme/moodify

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/moodifyme/moodify/internal/config"
)

func newTestJWTManager(t *testing.T, timeout time.Duration) *JWTManager {
	t.Helper()

	m, err := NewJWTManager(config.SecurityConfig{
		JWTSecret:      "test-secret-at-least-32-characters-long",
		SessionTimeout: timeout,
	})
	if err != nil {
		t.Fatalf("NewJWTManager returned error: %v", err)
	}
	return m
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newTestJWTManager(t, time.Hour)

	token, err := m.GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Username != "alice" {
		t.Errorf("claims = %+v, want user-123/alice", claims)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := newTestJWTManager(t, -time.Minute)

	token, err := m.GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	m := newTestJWTManager(t, time.Hour)

	token, err := m.GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + "forgedsignature"

	if _, err := m.ValidateToken(tampered); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := newTestJWTManager(t, time.Hour)

	other, err := NewJWTManager(config.SecurityConfig{
		JWTSecret:      "a-completely-different-32-char-secret!!",
		SessionTimeout: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager returned error: %v", err)
	}

	token, err := other.GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestValidateTokenRejectsUnsignedAlgorithm(t *testing.T) {
	m := newTestJWTManager(t, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:   "user-123",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing none-algorithm token: %v", err)
	}

	if _, err := m.ValidateToken(token); err == nil {
		t.Fatal("expected error for none-algorithm token")
	}
}
