package main

import (
	"crypto/subtle"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookieName = "admin_session"
	sessionDuration   = 24 * time.Hour
	loginPath         = "/admin/login"
)

// authorizer gates the admin namespace with a single shared session marker.
// There is exactly one administrator, so there is no per-user identity: the
// marker from config is issued on login and compared for equality afterwards.
type authorizer struct {
	username     string
	passwordHash []byte
	marker       string
	secure       bool
}

func newAuthorizer(cfg *Config) (*authorizer, error) {
	// The plaintext from config is hashed once here and never kept around.
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &authorizer{
		username:     cfg.Admin.Username,
		passwordHash: hash,
		marker:       cfg.Session.Secret,
		secure:       cfg.Session.Secure,
	}, nil
}

// login reports whether the submitted pair matches the configured one.
func (a *authorizer) login(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

func (a *authorizer) issueSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    a.marker,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(sessionDuration.Seconds()),
	})
}

// clearSession instructs the client to discard the marker. There is no
// server-side state to revoke.
func (a *authorizer) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

func (a *authorizer) isAuthorized(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(a.marker)) == 1
}

// require protects admin routes. Failing the check redirects to the login
// page rather than returning an error status.
func (a *authorizer) require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.isAuthorized(r) {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
