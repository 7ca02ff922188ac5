package utils

import (
	"strings"
	"testing"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	in := SessionClaims{SessionID: "abc-123", UserID: 42, Role: "admin"}
	token, err := NewSessionToken("secret", in)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	out, err := ParseSessionToken("secret", token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if out != in {
		t.Errorf("claims = %+v, want %+v", out, in)
	}
}

func TestSessionTokenHasNoExpiry(t *testing.T) {
	token, err := NewSessionToken("secret", SessionClaims{SessionID: "s", UserID: 1, Role: "user"})
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	// The payload is the middle segment; an exp claim would appear
	// there in clear base64-decoded JSON.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	if _, err := ParseSessionToken("secret", token); err != nil {
		t.Fatalf("token without exp must still parse: %v", err)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken("secret", SessionClaims{SessionID: "s", UserID: 1, Role: "user"})
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("other", token); err != ErrInvalidToken {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseSessionToken("secret", raw); err != ErrInvalidToken {
			t.Errorf("ParseSessionToken(%q): err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestParseSessionTokenMissingSessionID(t *testing.T) {
	token, err := NewSessionToken("secret", SessionClaims{UserID: 1, Role: "user"})
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if _, err := ParseSessionToken("secret", token); err != ErrInvalidToken {
		t.Errorf("token without sid: err = %v, want ErrInvalidToken", err)
	}
}
