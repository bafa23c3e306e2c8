package middleware

import (
	"context"
	"net/http"

	"blog/internal/access"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName 存放 session token 的 cookie
	SessionCookieName = "session"
	// ContextIdentityKey echo context 中目前身分的 key
	ContextIdentityKey = "identity"
)

// CommentLoginMessage 匿名使用者嘗試留言時的提示
const CommentLoginMessage = "Log in or you register a new account to comment"

// SessionResolver 將 session token 解析為身分，匿名時回傳 nil
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*access.Identity, error)
}

// LoadSession 每個請求解析一次 session cookie，結果放入 context
// 只有 Resolve 回傳 (nil, nil) 才視為匿名；儲存層失敗時整個請求回 500
func LoadSession(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			id, err := resolver.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				c.Logger().Errorf("resolve session: %v", err)
				return echo.ErrInternalServerError
			}
			if id != nil {
				c.Set(ContextIdentityKey, id)
			}
			return next(c)
		}
	}
}

// CurrentIdentity 回傳目前登入者，匿名時為 nil
func CurrentIdentity(c echo.Context) *access.Identity {
	id, _ := c.Get(ContextIdentityKey).(*access.Identity)
	return id
}

// RequireAuth 匿名使用者帶提示訊息導向登入頁
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := access.RequireAuthenticated(CurrentIdentity(c)); err != nil {
			view.SetFlash(c, CommentLoginMessage)
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// RequireAdmin 非管理員（含匿名）一律 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := access.RequireAdmin(CurrentIdentity(c)); err != nil {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return next(c)
	}
}
