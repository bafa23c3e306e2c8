package auth

import (
	"context"
	"time"

	"blog/internal/middleware"
	"blog/internal/model"
	"blog/internal/service"
	"blog/internal/store"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

// 顯示給使用者的訊息
const (
	AlreadyRegisteredMessage = "log in with your email because you are already registered"
	UnknownEmailMessage      = "Your email does not exist, please try again."
	WrongPasswordMessage     = "Password incorrect, Please try again"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
)

// Sessions 為登入流程所需的 session 操作，由 *service.SessionManager 實作
type Sessions interface {
	Start(ctx context.Context, user model.User) (string, error)
	End(ctx context.Context, token string) error
	TTL() time.Duration
}

func setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(view.NewCookie(c, middleware.SessionCookieName, token, int(ttl.Seconds())))
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(view.NewCookie(c, middleware.SessionCookieName, "", -1))
}

func renderAuth(c echo.Context, code int, name string, page view.AuthPage) error {
	page.Page = view.NewPage(c, middleware.CurrentIdentity(c))
	return c.Render(code, name, page)
}
