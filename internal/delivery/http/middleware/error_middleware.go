package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const errorTemplate = "error.html"

// ErrorPage is the data handed to error.html.
type ErrorPage struct {
	Code    int
	Message string
}

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler and renders the error page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	page := m.resolve(err, c)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(page.Code)

		return
	}

	if renderErr := c.Render(page.Code, errorTemplate, page); renderErr != nil {
		m.logger.Error("Failed to render error page", slog.Any("error", renderErr))
		_ = c.String(page.Code, page.Message)
	}
}

func (m *ErrorMiddleware) resolve(err error, c echo.Context) ErrorPage {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Unknown routes render the generic not-found page
	if errors.Is(err, echo.ErrNotFound) {
		err = domainerrors.ErrNotFound
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		return ErrorPage{Code: appErr.HTTPCode(), Message: appErr.Message()}
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Code < http.StatusInternalServerError && httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		return ErrorPage{Code: httpErr.Code, Message: message}
	}

	// Default to internal error; details stay in the log
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	return ErrorPage{Code: http.StatusInternalServerError, Message: domainerrors.ErrInternalError.Message()}
}
