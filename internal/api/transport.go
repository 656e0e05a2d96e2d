package api

import (
	"net/http"
	"strings"

	"github.com/me/vita/internal/token"
)

// publicPaths are reachable without a valid access token. They must never
// receive a bearer header and must never trigger a refresh; attaching one
// to the refresh call itself would loop forever.
var publicPaths = []string{
	"/auth/login",
	"/auth/register",
	"/auth/refresh",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}

// authTransport attaches bearer credentials to outgoing API calls and
// performs at most one transparent refresh per request.
//
// For a single request the refresh completes fully, with the new pair
// persisted, before the request is dispatched; a stale token is never
// sent once expiry has been detected.
type authTransport struct {
	client *Client
	base   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Requests outside the API pass through unmodified.
	if !strings.HasPrefix(req.URL.String(), t.client.baseURL) {
		return t.base.RoundTrip(req)
	}

	if isPublicPath(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	tok := t.client.store.AccessToken()
	if tok == "" {
		// Expected during transitional states; the server answers 401.
		return t.base.RoundTrip(req)
	}

	if token.IsExpired(tok) {
		pair, err := t.client.refreshTokens(req.Context())
		if err != nil {
			// The refresh error replaces the original request's
			// outcome; the caller decides how to re-authenticate.
			return nil, err
		}
		tok = pair.AccessToken
	}

	return t.base.RoundTrip(withBearer(req, tok))
}

// withBearer clones the request with an Authorization header. The
// original request is never mutated, per the RoundTripper contract.
func withBearer(req *http.Request, tok string) *http.Request {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+tok)
	return cloned
}
