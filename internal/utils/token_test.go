package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" || hash == "s3cret" {
		t.Fatalf("unexpected hash %q", hash)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatal("VerifyPassword should accept the original password")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("VerifyPassword should reject a wrong password")
	}
}

func TestAccessTokenSignAndParse(t *testing.T) {
	at, err := NewAccessToken("test-secret", 42, "ADMIN", 15)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse failed: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if got := claims["role"]; got != "ADMIN" {
		t.Fatalf("role = %v, want ADMIN", got)
	}
	if got := claims["sub"].(float64); uint64(got) != 42 {
		t.Fatalf("sub = %v, want 42", got)
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right-secret", 1, "STAFF", 15)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && tok.Valid {
		t.Fatal("token should not validate under a different secret")
	}
}

func TestRefreshTokenHashIsStable(t *testing.T) {
	rt, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken failed: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Fatalf("raw length = %d, want 96", len(rt.Raw))
	}
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Fatal("hashing the same raw token must be deterministic")
	}
	if len(h1) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(h1))
	}
	if h1 == rt.Raw[:64] {
		t.Fatal("hash must differ from the raw token")
	}
}
