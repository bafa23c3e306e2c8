package view

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"blog/internal/access"
	"blog/internal/api"
	"blog/internal/model"

	"github.com/labstack/echo/v4"
)

var timeNow = time.Now

// Page 每個畫面共用的資料：目前身分、提示訊息、年份與表單用的 csrf token
type Page struct {
	Identity *access.Identity
	Flash    string
	Year     int
	CSRF     string
}

// NewPage 組出共用資料，並消耗掉尚未顯示的 flash
func NewPage(c echo.Context, id *access.Identity) Page {
	return Page{
		Identity: id,
		Flash:    PopFlash(c),
		Year:     timeNow().Year(),
		CSRF:     csrfToken(c),
	}
}

func (p Page) LoggedIn() bool {
	return access.StateOf(p.Identity) != access.StateAnonymous
}

func (p Page) IsAdmin() bool {
	return access.StateOf(p.Identity) == access.StateAdmin
}

type IndexPage struct {
	Page
	Posts []model.Post
}

type PostPage struct {
	Page
	Post     model.Post
	Comments []model.Comment
	Form     api.CommentRequest
	Error    string
}

// PostFormPage 新增與編輯文章共用
type PostFormPage struct {
	Page
	Heading string
	Action  string
	Form    api.PostRequest
	Error   string
}

// AuthPage 註冊與登入共用；不回填密碼
type AuthPage struct {
	Page
	Email string
	Name  string
	Error string
}

type ErrorPage struct {
	Page
	Code    int
	Message string
}

// GravatarURL 依 email 回傳頭像網址
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("http://www.gravatar.com/avatar/%s?s=500&r=g&d=retro", hex.EncodeToString(sum[:]))
}
