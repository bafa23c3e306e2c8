package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// ContextSecureCookiesKey 標記本次請求寫出的 cookie 是否帶 Secure
	ContextSecureCookiesKey = "secure_cookies"

	// CSRFField 表單隱藏欄位名稱，同時是 echo context 中 csrf token 的 key
	CSRFField = "csrf"
	// CSRFCookieName 存放 csrf token 的 cookie
	CSRFCookieName = "_csrf"
)

// SecureCookies 中介層；部署在 TLS 之後時設為 true
func SecureCookies(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextSecureCookiesKey, secure)
			return next(c)
		}
	}
}

// NewCookie 建立站內共用屬性的 cookie，maxAge < 0 表示刪除
func NewCookie(c echo.Context, name, value string, maxAge int) *http.Cookie {
	secure, _ := c.Get(ContextSecureCookiesKey).(bool)
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(CSRFField).(string)
	return token
}
