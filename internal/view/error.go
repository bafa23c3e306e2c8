package view

import (
	"errors"
	"net/http"

	"blog/internal/access"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler 以 error.html 呈現錯誤；非預期錯誤一律回 500 且不外露內容
func HTTPErrorHandler(identity func(echo.Context) *access.Identity) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		} else {
			c.Logger().Errorf("unhandled error: %v", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.Render(code, "error.html", ErrorPage{
				Page:    NewPage(c, identity(c)),
				Code:    code,
				Message: msg,
			})
		}
		if err != nil {
			c.Logger().Errorf("render error page: %v", err)
			_ = c.String(code, msg)
		}
	}
}
