// File: internal/router/router.go
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blog/internal/cache"
	"blog/internal/database"
	"blog/internal/handler"
	"blog/internal/handler/auth"
	"blog/internal/handler/pages"
	"blog/internal/handler/posts"
	"blog/internal/middleware"
	"blog/internal/view"
)

// Sessions 為路由需要的 session 操作，由 *service.SessionManager 實作
type Sessions interface {
	middleware.SessionResolver
	auth.Sessions
}

// Setup 註冊所有路由與中介層；secureCookies 為 true 時 cookie 只走 HTTPS
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, sessions Sessions, secureCookies bool) {
	e.Use(view.SecureCookies(secureCookies))
	// 非 GET 請求必須帶表單欄位 csrf，與 _csrf cookie 相符
	e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:" + view.CSRFField,
		ContextKey:     view.CSRFField,
		CookieName:     view.CSRFCookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secureCookies,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	e.Use(middleware.LoadSession(sessions))

	// 健康檢查與 API 文件
	e.GET("/healthz", handler.PingHandler(db, cch))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 文章與留言
	e.GET("/", posts.IndexHandler(db))
	e.GET("/post/:id", posts.ShowPostHandler(db))
	e.POST("/post/:id", posts.CommentHandler(db), middleware.RequireAuth)

	// 註冊、登入、登出
	e.GET("/register", auth.RegisterPage())
	e.POST("/register", auth.RegisterHandler(db, sessions))
	e.GET("/login", auth.LoginPage())
	e.POST("/login", auth.LoginHandler(db, sessions))
	e.GET("/logout", auth.LogoutHandler(sessions))

	// 管理員專屬文章維護；不用 Group，避免 catch-all 路由把 404 變成 403
	e.GET("/new-post", posts.NewPostPage(), middleware.RequireAdmin)
	e.POST("/new-post", posts.CreatePostHandler(db), middleware.RequireAdmin)
	e.GET("/edit-post/:id", posts.EditPostPage(db), middleware.RequireAdmin)
	e.POST("/edit-post/:id", posts.UpdatePostHandler(db), middleware.RequireAdmin)
	e.GET("/delete/:id", posts.DeletePostHandler(db), middleware.RequireAdmin)

	// 靜態頁面
	e.GET("/about", pages.AboutHandler())
	e.GET("/contact", pages.ContactHandler())
}
