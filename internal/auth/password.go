package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid passcode")
	ErrWeakPasscode       = errors.New("passcode must be at least 4 characters")
	ErrAuthDisabled       = errors.New("no passcode configured")
)

// minPasscodeLen is short on purpose: the passcode is shared among friends.
const minPasscodeLen = 4

// PasscodeAuthenticator checks a shared trip passcode against a bcrypt hash.
type PasscodeAuthenticator struct {
	hash []byte
}

// NewPasscodeAuthenticator creates an authenticator for the given bcrypt hash.
// An empty hash disables authentication.
func NewPasscodeAuthenticator(hash string) *PasscodeAuthenticator {
	return &PasscodeAuthenticator{hash: []byte(hash)}
}

// Enabled reports whether a passcode hash is configured.
func (a *PasscodeAuthenticator) Enabled() bool {
	return len(a.hash) > 0
}

// ValidateCredential checks if the passcode meets minimum requirements.
func (a *PasscodeAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < minPasscodeLen {
		return ErrWeakPasscode
	}
	return nil
}

// Authenticate compares the passcode with the configured hash.
func (a *PasscodeAuthenticator) Authenticate(ctx context.Context, credential string) error {
	if !a.Enabled() {
		return ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPasscode returns the bcrypt hash to put in TRIP_PASSCODE_HASH.
func HashPasscode(passcode string) (string, error) {
	if len(passcode) < minPasscodeLen {
		return "", ErrWeakPasscode
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hashed), nil
}
