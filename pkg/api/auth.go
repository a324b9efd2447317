package api

type LoginRequest struct {
	Passcode string `json:"passcode"`

	// Name is the member logging in. Optional; recorded in the token.
	Name string `json:"name,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`

	// ExpiresAt is a Unix timestamp in seconds.
	ExpiresAt int64 `json:"expiresAt"`
}
