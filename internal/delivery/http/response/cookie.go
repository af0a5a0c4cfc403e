package response

import (
	"net/http"
	"strings"

	"blog/config"

	"github.com/labstack/echo/v4"
)

// SetSessionCookie writes the signed session value.
func SetSessionCookie(c echo.Context, cfg *config.CookieConfig, value string) {
	cookie := newSessionCookie(cfg, value)
	if cfg.MaxAge > 0 {
		cookie.MaxAge = int(cfg.MaxAge.Seconds())
	}

	c.SetCookie(cookie)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context, cfg *config.CookieConfig) {
	cookie := newSessionCookie(cfg, "")
	cookie.MaxAge = -1

	c.SetCookie(cookie)
}

func newSessionCookie(cfg *config.CookieConfig, value string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: parseSameSite(cfg.SameSite),
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
