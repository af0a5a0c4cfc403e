package middleware

import (
	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session cookie into the current user.
// A missing or forged cookie leaves the request anonymous.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cfg.Cookie.Name,
	}
}

// Resolve stores the resolved user on the echo.Context for handlers and templates.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var value string
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			value = cookie.Value
		}

		if user := m.sessions.ResolveSession(c.Request().Context(), value); user != nil {
			deliverycontext.SetCurrentUser(c, user)
		}

		return next(c)
	}
}
