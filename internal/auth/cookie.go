package auth

import (
	"net/http"
	"os"
)

// SessionCookieName is the cookie carrying the session token. Clients that
// cannot use cookies send the same token as a Bearer header instead.
const SessionCookieName = "token"

// Read per call so .env loading has happened by the time sessions are issued.
func cookieDomain() string {
	return os.Getenv("DOMAIN")
}

func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   int(SessionDuration.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   cookieDomain(),
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}
