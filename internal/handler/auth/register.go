package auth

import (
	"errors"
	"net/http"

	"blog/internal/api"
	"blog/internal/database"
	"blog/internal/model"
	"blog/internal/store"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

// RegisterPage 顯示註冊表單
// @Summary     Registration form
// @Tags        auth
// @Produce     html
// @Success     200 {string} string "register.html"
// @Router      /register [get]
func RegisterPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderAuth(c, http.StatusOK, "register.html", view.AuthPage{})
	}
}

// RegisterHandler 建立帳號並直接登入
// @Summary     Register a new user
// @Description 建立使用者後開始 session 並導回首頁；email 已註冊時帶提示導向登入頁
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     html
// @Param       email    formData string true "使用者 Email"
// @Param       password formData string true "使用者密碼"
// @Param       name     formData string true "使用者名稱"
// @Param       csrf     formData string true "CSRF token"
// @Success     303 "redirect to /"
// @Failure     400 {string} string "register.html"
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB, sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return renderAuth(c, http.StatusBadRequest, "register.html", view.AuthPage{Error: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return renderAuth(c, http.StatusBadRequest, "register.html", view.AuthPage{
				Email: req.Email,
				Name:  req.Name,
				Error: err.Error(),
			})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("hash password: %v", err)
			return echo.ErrInternalServerError
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: hash,
		})
		if errors.Is(err, store.ErrConflict) {
			view.SetFlash(c, AlreadyRegisteredMessage)
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		if err != nil {
			c.Logger().Errorf("create user: %v", err)
			return echo.ErrInternalServerError
		}

		token, err := sessions.Start(c.Request().Context(), *user)
		if err != nil {
			c.Logger().Errorf("start session: %v", err)
			return echo.ErrInternalServerError
		}
		setSessionCookie(c, token, sessions.TTL())
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
