// Package remote holds the error taxonomy and HTTP plumbing shared by every
// component that talks to an external spreadsheet endpoint.
package remote

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrNotConfigured means the endpoint URL is empty. It is a supported
	// state, not a failure.
	ErrNotConfigured = errors.New("endpoint not configured")

	// ErrEmptyResult means the source answered but had fewer than two usable rows.
	ErrEmptyResult = errors.New("no data")
)

// NetworkError is a transport failure or a non-2xx response. Callers may retry.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	host := e.URL
	if u, err := url.Parse(e.URL); err == nil && u.Host != "" {
		host = u.Host
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed: status %d", host, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", host, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// LogicError is an explicit error status returned by the remote API.
// Message is shown to users verbatim.
type LogicError struct {
	Message string
}

func (e *LogicError) Error() string {
	return e.Message
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsLogic reports whether err is a LogicError.
func IsLogic(err error) bool {
	var le *LogicError
	return errors.As(err, &le)
}
