package posts

import (
	"net/http"
	"strconv"
	"time"

	"blog/internal/access"
	"blog/internal/middleware"
	"blog/internal/store"

	"github.com/labstack/echo/v4"
)

// DuplicateTitleMessage 文章標題重複時顯示於表單
const DuplicateTitleMessage = "a post with this title already exists"

var (
	timeNow            = time.Now
	listPosts          = store.ListPosts
	getPost            = store.GetPost
	createPost         = store.CreatePost
	updatePost         = store.UpdatePost
	deletePost         = store.DeletePost
	createComment      = store.CreateComment
	listCommentsByPost = store.ListCommentsByPost
)

var errPostNotFound = echo.NewHTTPError(http.StatusNotFound, "post not found")

// postID 解析路徑上的文章 id，格式錯誤視為不存在
func postID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errPostNotFound
	}
	return id, nil
}

// adminIdentity 回傳目前的管理員身分，非管理員（含匿名）回 403
func adminIdentity(c echo.Context) (*access.Identity, error) {
	me := middleware.CurrentIdentity(c)
	if err := access.RequireAdmin(me); err != nil {
		return nil, echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return me, nil
}
