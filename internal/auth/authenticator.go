package auth

import "context"

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping the shared trip passcode for another
// method without changing the service layer code.
type Authenticator interface {
	// Enabled reports whether authentication is required at all.
	// A trip without a configured passcode is open to everyone.
	Enabled() bool

	// Authenticate verifies the credential.
	Authenticate(ctx context.Context, credential string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
