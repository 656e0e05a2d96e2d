package model

// TokenPair is the credential pair issued by login and refresh.
// Both tokens are opaque signed strings; the client never verifies
// signatures, it only decodes the access token payload to read expiry.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// RefreshRequest holds the body sent to the refresh endpoint.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
