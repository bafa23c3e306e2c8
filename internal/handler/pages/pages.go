// Package pages 提供 about 與 contact 靜態頁面
package pages

import (
	"net/http"

	"blog/internal/middleware"
	"blog/internal/view"

	"github.com/labstack/echo/v4"
)

// AboutHandler 關於頁
// @Summary     About page
// @Tags        pages
// @Produce     html
// @Success     200 {string} string "about.html"
// @Router      /about [get]
func AboutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "about.html", view.NewPage(c, middleware.CurrentIdentity(c)))
	}
}

// ContactHandler 聯絡頁
// @Summary     Contact page
// @Tags        pages
// @Produce     html
// @Success     200 {string} string "contact.html"
// @Router      /contact [get]
func ContactHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "contact.html", view.NewPage(c, middleware.CurrentIdentity(c)))
	}
}
