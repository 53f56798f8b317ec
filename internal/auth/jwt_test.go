package auth

import (
	"testing"

	"multibranch-backend/internal/fixtures"
)

const testSecret = "test-secret-that-is-at-least-32-chars"

func TestTokenRoundTrip(t *testing.T) {
	u := fixtures.Users()[1]
	token, err := GenerateToken(testSecret, &u)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != u.Role {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if _, err := ParseToken("another-secret-that-is-32-chars-long", token); err == nil {
		t.Fatalf("token must not verify with another secret")
	}
}
