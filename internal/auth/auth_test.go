package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasscodeAuthenticator(t *testing.T) {
	hash, err := HashPasscode("matcha")
	if err != nil {
		t.Fatalf("HashPasscode failed: %v", err)
	}

	a := NewPasscodeAuthenticator(hash)
	if !a.Enabled() {
		t.Fatal("Expected authenticator to be enabled")
	}

	tests := []struct {
		name     string
		passcode string
		wantErr  error
	}{
		{name: "correct", passcode: "matcha"},
		{name: "wrong", passcode: "hojicha", wantErr: ErrInvalidCredentials},
		{name: "empty", passcode: "", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authenticate(context.Background(), tt.passcode)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authenticate(%q) = %v, want %v", tt.passcode, err, tt.wantErr)
			}
		})
	}
}

func TestPasscodeAuthenticator_Disabled(t *testing.T) {
	a := NewPasscodeAuthenticator("")
	if a.Enabled() {
		t.Error("Expected authenticator to be disabled")
	}
	if err := a.Authenticate(context.Background(), "anything"); !errors.Is(err, ErrAuthDisabled) {
		t.Errorf("Expected ErrAuthDisabled, got %v", err)
	}
}

func TestHashPasscode_Weak(t *testing.T) {
	if _, err := HashPasscode("abc"); !errors.Is(err, ErrWeakPasscode) {
		t.Errorf("Expected ErrWeakPasscode, got %v", err)
	}
	a := NewPasscodeAuthenticator("")
	if err := a.ValidateCredential("abcd"); err != nil {
		t.Errorf("ValidateCredential failed: %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, expires, err := m.Generate("Alice")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if time.Until(expires) < 59*time.Minute {
		t.Errorf("Unexpected expiry %v", expires)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Member != "Alice" || claims.Subject != "Alice" {
		t.Errorf("Unexpected claims %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		old, _, _ := expired.Generate("Bob")
		if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Member: "Mallory"})
		s, _ := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if _, err := m.Validate(s); err == nil {
			t.Error("Expected unsigned token to be rejected")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate(strings.Repeat("x", 20)); err == nil {
			t.Error("Expected error")
		}
	})
}
