package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var testSecret = []byte("test-secret")

func TestVerifyToken_RoundTrip(t *testing.T) {
	viewer := Viewer{
		UserID: "user-123",
		Roles:  []Role{RoleAdmin},
	}

	token, err := MintToken(viewer, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	claims, err := VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}

	if claims.Viewer.UserID != "user-123" {
		t.Errorf("Expected user id user-123, got %s", claims.Viewer.UserID)
	}
	if !claims.Viewer.IsAdmin() {
		t.Error("Expected admin role to survive round trip")
	}
}

func TestVerifyToken_WrongKey(t *testing.T) {
	token, err := MintToken(Viewer{UserID: "user-123"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	_, err = VerifyToken(token, []byte("different-secret"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := MintToken(Viewer{UserID: "user-123"}, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	_, err = VerifyToken(token, testSecret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("not-a-jwt", testSecret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_MissingSubject(t *testing.T) {
	tok, err := jwt.NewBuilder().
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour)).
		Build()
	if err != nil {
		t.Fatalf("Failed to build token: %v", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	_, err = VerifyToken(string(signed), testSecret)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for missing sub, got %v", err)
	}
}

func TestVerifyToken_ProfileClaims(t *testing.T) {
	tok, err := jwt.NewBuilder().
		Subject("user-456").
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour)).
		Claim("name", "Ada").
		Claim("picture", "https://cdn.example/ada.png").
		Build()
	if err != nil {
		t.Fatalf("Failed to build token: %v", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	claims, err := VerifyToken(string(signed), testSecret)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}

	if claims.DisplayName == nil || *claims.DisplayName != "Ada" {
		t.Errorf("Expected display name Ada, got %v", claims.DisplayName)
	}
	if claims.AvatarURL == nil || *claims.AvatarURL != "https://cdn.example/ada.png" {
		t.Errorf("Expected avatar URL to be extracted, got %v", claims.AvatarURL)
	}
}
