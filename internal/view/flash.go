package view

import (
	"encoding/base64"

	"github.com/labstack/echo/v4"
)

// FlashCookieName 暫存一次性提示訊息的 cookie
const FlashCookieName = "flash"

// SetFlash 設定下一次畫面要顯示的訊息
func SetFlash(c echo.Context, msg string) {
	c.SetCookie(NewCookie(c, FlashCookieName, base64.RawURLEncoding.EncodeToString([]byte(msg)), 0))
}

// PopFlash 讀出訊息後立即讓 cookie 失效，同一訊息只會顯示一次
func PopFlash(c echo.Context) string {
	cookie, err := c.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(NewCookie(c, FlashCookieName, "", -1))
	msg, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(msg)
}
