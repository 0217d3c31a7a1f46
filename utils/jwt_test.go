package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	email, err := ExtractEmailFromToken(token)
	if err != nil {
		t.Fatalf("ExtractEmailFromToken failed: %v", err)
	}
	if email != "a@x.com" {
		t.Errorf("email claim = %q, want %q", email, "a@x.com")
	}
}

func TestRejectsTokenSignedWithDifferentSecret(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "a@x.com",
		"iat":   time.Now().Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	if _, err := ExtractEmailFromToken(forged); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestRejectsMalformedToken(t *testing.T) {
	if _, err := ExtractEmailFromToken("not.a.token"); err == nil {
		t.Fatal("malformed token was accepted")
	}
}

func TestRejectsTokenWithoutEmailClaim(t *testing.T) {
	claims := jwt.MapClaims{"iat": time.Now().Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := ExtractEmailFromToken(token); err == nil {
		t.Fatal("token without email claim was accepted")
	}
}
