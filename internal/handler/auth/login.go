package auth

import (
	"errors"
	"net/http"

	"blog/internal/api"
	"blog/internal/database"
	"blog/internal/middleware"
	"blog/internal/service"
	"blog/internal/store"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

// LoginPage 顯示登入表單
// @Summary     Login form
// @Tags        auth
// @Produce     html
// @Success     200 {string} string "login.html"
// @Router      /login [get]
func LoginPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderAuth(c, http.StatusOK, "login.html", view.AuthPage{})
	}
}

// LoginHandler 使用 Email/Password 驗證並開始 session
// @Summary     Log in
// @Description 驗證成功後設定 session cookie 並導回首頁
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Param       csrf     formData string true "CSRF token"
// @Success     303 "redirect to /"
// @Failure     400 {string} string "login.html"
// @Failure     401 {string} string "login.html"
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return renderAuth(c, http.StatusBadRequest, "login.html", view.AuthPage{Error: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return renderAuth(c, http.StatusBadRequest, "login.html", view.AuthPage{Email: req.Email, Error: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByEmail(ctx, db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return renderAuth(c, http.StatusUnauthorized, "login.html", view.AuthPage{Email: req.Email, Error: UnknownEmailMessage})
		}
		if err != nil {
			c.Logger().Errorf("get user by email: %v", err)
			return echo.ErrInternalServerError
		}

		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			if errors.Is(err, service.ErrInvalidPassword) {
				return renderAuth(c, http.StatusUnauthorized, "login.html", view.AuthPage{Email: req.Email, Error: WrongPasswordMessage})
			}
			c.Logger().Errorf("authenticate user: %v", err)
			return echo.ErrInternalServerError
		}

		token, err := sessions.Start(ctx, *user)
		if err != nil {
			c.Logger().Errorf("start session: %v", err)
			return echo.ErrInternalServerError
		}
		setSessionCookie(c, token, sessions.TTL())
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

// LogoutHandler 結束目前 session
// @Summary     Log out
// @Tags        auth
// @Success     302 "redirect to /"
// @Router      /logout [get]
func LogoutHandler(sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := sessions.End(c.Request().Context(), cookie.Value); err != nil {
				c.Logger().Errorf("end session: %v", err)
			}
		}
		clearSessionCookie(c)
		return c.Redirect(http.StatusFound, "/")
	}
}
