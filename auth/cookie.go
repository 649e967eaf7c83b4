package auth

import (
	"net/http"
	"time"
)

const AuthCookieName = "auth_token"

// SetAuthCookie issues the session cookie carrying the signed token.
// HttpOnly and SameSite=Strict keep the token out of reach of scripts
// and cross-site requests.
func SetAuthCookie(w http.ResponseWriter, token string, secure bool) {
	cookie := http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenLifetime),
		MaxAge:   int(TokenLifetime / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	}
	http.SetCookie(w, &cookie)
}

// ClearAuthCookie replaces the session cookie with an immediately-expired one.
func ClearAuthCookie(w http.ResponseWriter, secure bool) {
	cookie := http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	}
	http.SetCookie(w, &cookie)
}
