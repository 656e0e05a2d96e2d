package ui

import (
	"net/http"
	"net/url"
)

// AuthGuard protects pages that require a signed-in user. Access is
// granted when the session holds a profile or a non-expired access
// token is stored; otherwise the browser is redirected to the login
// page with the requested path preserved in return_to.
func (ui *UI) AuthGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ui.client.Session().IsAuthenticated() || ui.client.HasValidToken() {
			next.ServeHTTP(w, r)
			return
		}

		target := "/login"
		if path := r.URL.Path; path != "" && path != "/" {
			target += "?return_to=" + url.QueryEscape(path)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}

// GuestGuard keeps signed-in users away from the login and register
// pages, sending them to the dashboard instead.
func (ui *UI) GuestGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ui.client.Session().IsAuthenticated() || ui.client.HasValidToken() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// returnTarget validates a return_to value. Only absolute paths within
// the site are honored so the redirect cannot leave the application.
func returnTarget(raw string) string {
	if raw == "" || raw[0] != '/' {
		return "/"
	}
	if len(raw) > 1 && raw[1] == '/' {
		return "/"
	}
	return raw
}
