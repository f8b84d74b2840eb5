package middleware

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	domainerrors "lexsite/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errorBody mirrors the response envelope for the error path.
type errorBody struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *errorInfo `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Taxonomy errors carry their own status and user message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if wantsHTMLError(c) {
			c.HTML(appErr.HTTPCode(), errorPage(appErr.HTTPCode(), appErr.Message()))

			return
		}

		c.JSON(appErr.HTTPCode(), errorBody{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &errorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		if wantsHTMLError(c) {
			c.HTML(httpErr.Code, errorPage(httpErr.Code, message))

			return
		}
		c.JSON(httpErr.Code, errorBody{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &errorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Anything unclassified is logged in full and surfaces as an opaque 500.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	if wantsHTMLError(c) {
		c.HTML(http.StatusInternalServerError,
			errorPage(http.StatusInternalServerError, domainerrors.ErrInternalError.Message()))

		return
	}

	c.JSON(http.StatusInternalServerError, errorBody{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: domainerrors.ErrInternalError.Message(),
		Error: &errorInfo{
			Code: domainerrors.ErrInternalError.ErrorCode(),
		},
	})
}

// wantsHTMLError reports whether the request targets the browser-facing page
// surface. Those requests get an HTML error page; everything under /api/ and
// the rest of the routes keep the JSON envelope.
func wantsHTMLError(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/site/")
}

func errorPage(code int, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="zh-CN">
<head><meta charset="utf-8"><title>%d</title></head>
<body><h1>%d</h1><p>%s</p></body>
</html>`, code, code, html.EscapeString(message))
}
