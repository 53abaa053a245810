package auth

import (
	"errors"
	"foodgram/internal/entity"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewManagerAndTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	user := &entity.DbUser{ID: 42, Email: "user@example.com", Username: "chef"}
	token, expiresAt, err := mgr.GenerateToken(user)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, claims.UserID)
	}
	if claims.Username != user.Username {
		t.Fatalf("expected username %s, got %s", user.Username, claims.Username)
	}
	if claims.Subject != "42" {
		t.Fatalf("expected subject 42, got %s", claims.Subject)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestParseTokenRejections(t *testing.T) {
	mgr, err := NewManager("test-secret", "foodgram", time.Minute)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	user := &entity.DbUser{ID: 7, Username: "cook"}

	other, _ := NewManager("other-secret", "foodgram", time.Minute)
	foreign, _, err := other.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := mgr.ParseToken(foreign); err == nil {
		t.Error("expected signature mismatch to fail")
	}

	otherIssuer, _ := NewManager("test-secret", "someone-else", time.Minute)
	wrongIssuer, _, _ := otherIssuer.GenerateToken(user)
	if _, err := mgr.ParseToken(wrongIssuer); !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected invalid issuer, got %v", err)
	}

	issued, _, _ := mgr.GenerateToken(user)
	mgr.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := mgr.ParseToken(issued); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired token, got %v", err)
	}

	if _, err := mgr.ParseToken("not-a-token"); err == nil {
		t.Error("expected malformed token to fail")
	}
}

func TestGenerateTokenRequiresUser(t *testing.T) {
	mgr, _ := NewManager("test-secret", "", 0)
	if _, _, err := mgr.GenerateToken(&entity.DbUser{}); err == nil {
		t.Fatal("expected error for user without id")
	}
}
