package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
)

var cookieStore *sessions.CookieStore

const sessionName = "storefront_session"

// InitSessionStore configure le cookie de session qui mire le token bearer,
// pour que le navigateur n'ait pas à le garder lui-même
func InitSessionStore(secret string) {
	cookieStore = sessions.NewCookieStore([]byte(secret))
	cookieStore.MaxAge(86400 * 30)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

func tokenFromCookie(r *http.Request) string {
	if cookieStore == nil {
		return ""
	}
	sess, err := cookieStore.Get(r, sessionName)
	if err != nil {
		return ""
	}
	token, _ := sess.Values["token"].(string)
	return token
}

// SetTokenCookie mire le token distant dans le cookie de session
func SetTokenCookie(w http.ResponseWriter, r *http.Request, token string) error {
	if cookieStore == nil {
		return nil
	}
	sess, _ := cookieStore.Get(r, sessionName)
	sess.Values["token"] = token
	return sess.Save(r, w)
}

// ClearTokenCookie efface le cookie au logout
func ClearTokenCookie(w http.ResponseWriter, r *http.Request) error {
	if cookieStore == nil {
		return nil
	}
	sess, _ := cookieStore.Get(r, sessionName)
	delete(sess.Values, "token")
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
