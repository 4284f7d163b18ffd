package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/careerconnect/backend/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Email: "alice@example.com",
		Role:  models.RoleStudent,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "careerconnect.test",
	})

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if expiresIn != 3600 {
		t.Fatalf("expected 3600s expiry, got %d", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims returned error: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "alice@example.com" || claims.Role != "student" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Issuer != "careerconnect.test" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "careerconnect.test",
	})

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := verifier.ValidateAndExtractClaims(token); err == nil {
		t.Fatalf("expected validation failure for wrong secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", token)
	}

	// A bare token without the prefix is accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("unexpected result %q, %v", token, err)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for empty header, got %v", err)
	}
}
