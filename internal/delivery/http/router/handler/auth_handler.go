package handler

import (
	"net/http"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/delivery/http/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SignUpPage is the data for signup.html. Passwords are never echoed back.
type SignUpPage struct {
	Username string
	Email    string
	Errors   map[string]string
}

// LoginPage is the data for login.html.
type LoginPage struct {
	Username string
	Errors   map[string]string
}

// WelcomePage is the data for welcome.html.
type WelcomePage struct {
	Username string
}

type signUpForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Verify   string `form:"verify"`
	Email    string `form:"email"`
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AuthHandler holds dependencies for signup, login and session handlers.
type AuthHandler struct {
	sessions usecase.SessionUsecase
	cookie   *config.CookieConfig
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		cookie:   cfg.Cookie,
	}
}

// SignUpForm renders an empty signup form.
func (h *AuthHandler) SignUpForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", SignUpPage{})
}

// SignUp creates the account, sets the session cookie and redirects to the welcome page.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var form signUpForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}

	output, err := h.sessions.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Username: form.Username,
		Password: form.Password,
		Verify:   form.Verify,
		Email:    form.Email,
	})
	if err != nil {
		var errs domainerrors.ValidationErrors
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}

		page := SignUpPage{
			Username: form.Username,
			Email:    form.Email,
			Errors:   errs.Messages(),
		}
		if errs.HasKind(domainerrors.FieldUsername, domainerrors.KindConflict) {
			page.Username = ""
		}

		return c.Render(errs.HTTPCode(), "signup.html", page)
	}

	response.SetSessionCookie(c, h.cookie, output.Cookie)

	return c.Redirect(http.StatusFound, "/welcome")
}

// LoginForm renders an empty login form.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", LoginPage{})
}

// Login checks the credentials, sets the session cookie and redirects to the welcome page.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}

	output, err := h.sessions.Login(c.Request().Context(), &usecase.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		var errs domainerrors.ValidationErrors
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}

		return c.Render(errs.HTTPCode(), "login.html", LoginPage{
			Username: form.Username,
			Errors:   errs.Messages(),
		})
	}

	response.SetSessionCookie(c, h.cookie, output.Cookie)

	return c.Redirect(http.StatusFound, "/welcome")
}

// Logout drops the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	response.ClearSessionCookie(c, h.cookie)

	return c.Redirect(http.StatusFound, "/signup")
}

// Welcome greets the signed-in user; anonymous visitors are sent to signup.
func (h *AuthHandler) Welcome(c echo.Context) error {
	user := deliverycontext.GetCurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusFound, "/signup")
	}

	return c.Render(http.StatusOK, "welcome.html", WelcomePage{Username: user.Username})
}
