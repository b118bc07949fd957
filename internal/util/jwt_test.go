package util

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("secret", "issuer", 42, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ParseToken("secret", token, TokenTypeAccess)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAccess)
	}
}

func TestRefreshTokenHasJTI(t *testing.T) {
	token, jti, err := GenerateRefreshToken("secret", "issuer", 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if jti == "" {
		t.Fatal("jti is empty")
	}

	claims, err := ParseToken("secret", token, TokenTypeRefresh)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.ID != jti {
		t.Errorf("claims.ID = %q, want %q", claims.ID, jti)
	}
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateAccessToken("secret", "issuer", 42, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ParseToken("secret", token, TokenTypeRefresh); err == nil {
		t.Error("ParseToken() accepted an access token as refresh")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("secret", "issuer", 42, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ParseToken("other-secret", token, TokenTypeAccess); err == nil {
		t.Error("ParseToken() accepted a token signed with another secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("secret", "issuer", 42, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ParseToken("secret", token, TokenTypeAccess); err == nil {
		t.Error("ParseToken() accepted an expired token")
	}
}
